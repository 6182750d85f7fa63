package document

import (
	"fmt"
	"os"

	"github.com/ecodeclub/mailtriage/internal/pkg/htmlx"
)

type htmlExtractor struct{}

func (htmlExtractor) Extract(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading HTML file: %v]", err)
	}
	return htmlx.CleanToText(string(data))
}
