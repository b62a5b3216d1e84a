// Package report renders the generated feedback into a Word document.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/fumiama/go-docx"
)

// MIMEType is the content type served with the downloadable document.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const teacherNote = "Please review and edit the above feedback as needed before sharing with the student."

// Build produces the four-section feedback document in memory: title,
// project details, the verbatim feedback body, and the fixed teacher note.
// The timestamp is whatever the session recorded at first generation; a zero
// value renders as N/A. Nothing is written to disk.
func Build(feedbackText string, studentName string, fileLabel string, generatedAt time.Time) (*bytes.Buffer, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Project Feedback: " + studentName).Size("36").Bold()

	addHeading(doc, "Project Details")
	doc.AddParagraph().AddText("Student: " + studentName)
	doc.AddParagraph().AddText("File: " + fileLabel)
	doc.AddParagraph().AddText("Generated: " + formatTimestamp(generatedAt))

	addHeading(doc, "AI-Generated Feedback")
	// Word renders \n inside a run as plain text, so each feedback line
	// becomes its own paragraph
	for _, line := range strings.Split(feedbackText, "\n") {
		doc.AddParagraph().AddText(line)
	}

	addHeading(doc, "Teacher Notes")
	doc.AddParagraph().AddText(teacherNote)

	buf := new(bytes.Buffer)
	if _, err := doc.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("writing feedback document: %w", err)
	}
	return buf, nil
}

func addHeading(doc *docx.Docx, text string) {
	doc.AddParagraph().AddText(text).Size("28").Bold()
}

func formatTimestamp(generatedAt time.Time) string {
	if generatedAt.IsZero() {
		return "N/A"
	}
	return generatedAt.Format(config.ReportTimestampLayout)
}
