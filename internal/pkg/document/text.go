package document

import (
	"fmt"
	"os"
	"strings"
)

type textExtractor struct{}

func (textExtractor) Extract(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading TXT file: %v]", err)
	}
	return strings.TrimSpace(string(data))
}
