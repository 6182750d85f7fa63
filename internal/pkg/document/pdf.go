package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfExtractor struct{}

func (pdfExtractor) Extract(path string) string {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return fmt.Sprintf("[Error reading PDF: %v]", err)
	}
	defer f.Close()
	r, err := reader.GetPlainText()
	if err != nil {
		return fmt.Sprintf("[Error reading PDF: %v]", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Sprintf("[Error reading PDF: %v]", err)
	}
	return strings.TrimSpace(string(data))
}
