package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/dslipak/pdf"
)

// extractPDF concatenates the text of every page in document order, one
// trailing newline per page. A failure on any page aborts the whole file;
// there is no partial result.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		// the pdf library panics on some malformed cross-reference tables
		if r := recover(); r != nil {
			logger.Error("pdf parser panic", "cause", r)
			text = ""
			err = fmt.Errorf("failed to parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, pageErr := guardedPageText(page)
		if pageErr != nil {
			return "", fmt.Errorf("failed reading pdf page %d: %w", i, pageErr)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func guardedPageText(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{err: fmt.Errorf("page parser panic: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		logger.Error("guardedPageText", "timeout", config.PageExtractTimeout)
		return "", errors.New("page extraction timed out")
	}
}
