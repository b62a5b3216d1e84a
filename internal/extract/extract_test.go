package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestGetDocType(t *testing.T) {
	tests := []struct {
		fileName string
		expected DocType
	}{
		{"report.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"essay.docx", DOCX},
		{"Slides.PPTX", PPTX},
		{"notes.txt", TEXT},
		{"legacy.rtf", TEXT},
		{"image.png", ERR},
		{"archive.zip", ERR},
		{"noextension", ERR},
	}

	for _, tt := range tests {
		if got := GetDocType(tt.fileName); got != tt.expected {
			t.Errorf("GetDocType(%s) = %v; want %v", tt.fileName, got, tt.expected)
		}
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract("photo.png", []byte{0x89, 0x50, 0x4e, 0x47})
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("error %q does not name the unsupported format", err)
	}
}

func TestExtract_CorruptInputs(t *testing.T) {
	garbage := []byte("this is not an office document")

	for _, name := range []string{"broken.pdf", "broken.docx", "broken.pptx"} {
		if _, err := Extract(name, garbage); err == nil {
			t.Errorf("Extract(%s) on garbage bytes: expected error, got none", name)
		}
	}
}

// buildZip assembles an in-memory archive from part name -> content.
func buildZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func docxBody(paragraphs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func TestExtractDOCX_Paragraphs(t *testing.T) {
	data := buildZip(t, map[string]string{
		"word/document.xml": docxBody("A", "B"),
	})

	got, err := Extract("essay.docx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "A\nB\n" {
		t.Errorf("got %q, want %q", got, "A\nB\n")
	}
}

func TestExtractDOCX_IgnoresTables(t *testing.T) {
	body := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Intro</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell text</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:r><w:t>Outro</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildZip(t, map[string]string{"word/document.xml": body})

	got, err := Extract("essay.docx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "Intro\nOutro\n" {
		t.Errorf("got %q, want %q", got, "Intro\nOutro\n")
	}
	if strings.Contains(got, "cell text") {
		t.Error("table content leaked into the extraction")
	}
}

func TestExtractDOCX_SplitRuns(t *testing.T) {
	// a single paragraph split across several runs must come out as one line
	body := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildZip(t, map[string]string{"word/document.xml": body})

	got, err := Extract("essay.docx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "Hello world\n" {
		t.Errorf("got %q, want %q", got, "Hello world\n")
	}
}

func slideXML(shapes ...string) string {
	return `<?xml version="1.0"?><p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><p:cSld><p:spTree>` +
		strings.Join(shapes, "") +
		`</p:spTree></p:cSld></p:sld>`
}

func textShape(lines ...string) string {
	var b strings.Builder
	b.WriteString(`<p:sp><p:txBody>`)
	for _, line := range lines {
		b.WriteString(`<a:p><a:r><a:t>` + line + `</a:t></a:r></a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

const pictureShape = `<p:pic><p:blipFill><a:blip/></p:blipFill></p:pic>`

func TestExtractPPTX_SkipsTextlessShapes(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML(textShape("X"), pictureShape),
	})

	got, err := Extract("deck.pptx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "X\n" {
		t.Errorf("got %q, want %q", got, "X\n")
	}
}

func TestExtractPPTX_SlideOrder(t *testing.T) {
	// numeric order, not lexicographic: slide10 must come after slide2
	data := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml": slideXML(textShape("ten")),
		"ppt/slides/slide1.xml":  slideXML(textShape("one")),
		"ppt/slides/slide2.xml":  slideXML(textShape("two")),
	})

	got, err := Extract("deck.pptx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "one\ntwo\nten\n" {
		t.Errorf("got %q, want %q", got, "one\ntwo\nten\n")
	}
}

func TestExtractPPTX_MultiParagraphShape(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML(textShape("Title", "Subtitle")),
	})

	got, err := Extract("deck.pptx", data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "Title\nSubtitle\n" {
		t.Errorf("got %q, want %q", got, "Title\nSubtitle\n")
	}
}

// buildMinimalPDF writes an uncompressed single-page PDF showing the given
// text, with a correctly computed cross-reference table.
func buildMinimalPDF(text string) []byte {
	var buf bytes.Buffer
	offsets := make([]int, 0, 6)

	write := func(s string) { buf.WriteString(s) }
	object := func(body string) {
		offsets = append(offsets, buf.Len())
		write(body)
	}

	write("%PDF-1.4\n")
	object("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	object("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	object("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	object("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	object(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))

	xrefStart := buf.Len()
	write("xref\n0 6\n")
	write("0000000000 65535 f \n")
	for _, off := range offsets {
		write(fmt.Sprintf("%010d 00000 n \n", off))
	}
	write(fmt.Sprintf("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefStart))
	return buf.Bytes()
}

func TestExtractPDF_SinglePage(t *testing.T) {
	got, err := Extract("hello.pdf", buildMinimalPDF("Hello"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "Hello\n" {
		t.Errorf("got %q, want %q", got, "Hello\n")
	}
}
