package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// The OOXML container formats are plain zip archives holding XML parts, so
// both readers below unpack the archive and walk the relevant part with a
// streaming decoder instead of pulling in a full office suite.

func readZipPart(data []byte, name string) ([]byte, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zipReader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("missing archive part %q", name)
}

// extractDOCX concatenates every body paragraph's text in document order,
// one trailing newline per paragraph. Tables are skipped; headers, footers
// and images live in archive parts that are never opened.
func extractDOCX(data []byte) (string, error) {
	part, err := readZipPart(data, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}

	decoder := xml.NewDecoder(bytes.NewReader(part))
	var out strings.Builder
	var paragraph strings.Builder
	inParagraph := false
	inText := false
	tableDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed docx document part: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					paragraph.Reset()
				}
			case "t":
				if inParagraph {
					inText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if inParagraph {
					out.WriteString(paragraph.String())
					out.WriteString("\n")
					inParagraph = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	return out.String(), nil
}

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPPTX walks every slide in deck order and appends the text of each
// shape that carries a text body, one trailing newline per shape. Shapes
// without text (pictures, connectors) are silently skipped.
func extractPPTX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pptx: %w", err)
	}

	type slidePart struct {
		number int
		file   *zip.File
	}
	var slides []slidePart
	for _, f := range zipReader.File {
		m := slidePartPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slidePart{number: n, file: f})
	}
	// slide10.xml must not sort before slide2.xml
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var out strings.Builder
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open slide %d: %w", s.number, err)
		}
		part, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read slide %d: %w", s.number, err)
		}
		if err := slideShapeText(part, &out); err != nil {
			return "", fmt.Errorf("slide %d: %w", s.number, err)
		}
	}
	return out.String(), nil
}

func slideShapeText(part []byte, out *strings.Builder) error {
	decoder := xml.NewDecoder(bytes.NewReader(part))
	var shape strings.Builder
	inBody := false
	inText := false
	paragraphCount := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed slide part: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "txBody":
				inBody = true
				shape.Reset()
				paragraphCount = 0
			case "p":
				if inBody {
					if paragraphCount > 0 {
						shape.WriteString("\n")
					}
					paragraphCount++
				}
			case "t":
				if inBody {
					inText = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "txBody":
				if inBody {
					out.WriteString(shape.String())
					out.WriteString("\n")
					inBody = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				shape.Write(t)
			}
		}
	}
	return nil
}
