package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extractor 从一种附件格式里提取纯文本。
// 提取失败不向上冒泡错误，而是返回带方括号的占位文本，
// 单个附件坏了不应该让整封邮件处理失败。
type Extractor interface {
	Extract(path string) string
}

// Registry 按扩展名分发到具体的 Extractor
type Registry struct {
	extractors map[string]Extractor
}

func NewRegistry() *Registry {
	return &Registry{
		extractors: map[string]Extractor{
			".txt":  textExtractor{},
			".pdf":  pdfExtractor{},
			".docx": docxExtractor{},
			".html": htmlExtractor{},
			".htm":  htmlExtractor{},
		},
	}
}

// Register 注册或者覆盖某个扩展名的提取器
func (r *Registry) Register(ext string, e Extractor) {
	r.extractors[strings.ToLower(ext)] = e
}

func (r *Registry) Extract(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.extractors[ext]
	if !ok {
		// 图片类附件需要 OCR，这里没有纯 Go 的实现，一并走占位
		return fmt.Sprintf("[Unsupported file type: %s]", ext)
	}
	return e.Extract(path)
}
