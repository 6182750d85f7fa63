package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type docxExtractor struct{}

// Extract 解压 docx 取 word/document.xml，把 <w:t> 里的文本按段落拼出来。
// go-docx 面向的是模板占位符替换，没有提供抽取正文的接口，
// 所以这里直接读 OOXML。
func (docxExtractor) Extract(path string) string {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Sprintf("[Error reading DOCX file: %v]", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Sprintf("[Error reading DOCX file: %v]", err)
		}
		defer rc.Close()
		text, err := documentXMLToText(rc)
		if err != nil {
			return fmt.Sprintf("[Error reading DOCX file: %v]", err)
		}
		return text
	}
	return "[Error reading DOCX file: word/document.xml not found]"
}

func documentXMLToText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	// 只在 w:t 内部收集字符数据
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
