package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avasari/GraderAPI/pkg/logger_i"
)

type DocType string

var (
	PDF  DocType = "PDF"
	DOCX DocType = "DOCX"
	PPTX DocType = "PPTX"
	TEXT DocType = "TEXT"
	ERR  DocType = "ERROR"
)

var logger = logger_i.NewLogger("Text Extraction")

func GetDocType(fileName string) DocType {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".pptx":
		return PPTX
	case ".txt", ".rtf", ".odt":
		return TEXT
	default:
		return ERR
	}
}

// Extract returns the textual content of an uploaded blob, dispatched on the
// file name's extension. Unsupported extensions fail without any parser being
// invoked. Parser failures are returned as errors and never escape as panics.
func Extract(fileName string, data []byte) (string, error) {
	docType := GetDocType(fileName)
	logger.Debug("extracting file", "name", fileName, "type", docType, "size", len(data))

	switch docType {
	case PDF:
		return extractPDF(data)
	case DOCX:
		return extractDOCX(data)
	case PPTX:
		return extractPPTX(data)
	case TEXT:
		return extractPlain(data)
	default:
		return "", fmt.Errorf("unsupported file format: %q", strings.ToLower(filepath.Ext(fileName)))
	}
}
