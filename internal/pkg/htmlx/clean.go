package htmlx

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceExpr = regexp.MustCompile(`\s+`)

// CleanToText 把 HTML 正文还原成纯文本。
// 邮件正文里经常只有 text/html 部分，分类之前要先把标签、样式去掉，
// 再把连续空白压成单个空格。
func CleanToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// 解析失败就退化成正则剥离
		return CollapseWhitespace(stripTags(html))
	}
	// script/style 的内容不属于正文
	doc.Find("script,style").Remove()
	return CollapseWhitespace(doc.Text())
}

// CollapseWhitespace 压缩连续空白字符并去掉首尾空白
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(spaceExpr.ReplaceAllString(text, " "))
}

var tagExpr = regexp.MustCompile(`<[^>]*>`)

func stripTags(content string) string {
	return tagExpr.ReplaceAllString(content, "")
}
