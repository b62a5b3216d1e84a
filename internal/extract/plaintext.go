package extract

import (
	"fmt"
	"strings"

	"github.com/lu4p/cat"
)

// extractPlain reads the formats cat covers: txt, rtf and odt. The browser
// form only offers the three office types, but the endpoint accepts these
// too.
func extractPlain(data []byte) (string, error) {
	text, err := cat.FromBytes(data)
	if err != nil {
		logger.Error("failed extracting plain document content", "error", err)
		return "", fmt.Errorf("failed to extract document text: %w", err)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
