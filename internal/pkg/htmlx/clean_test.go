package htmlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanToText(t *testing.T) {
	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "普通段落",
			html: "<html><body><p>账户无法登录</p><p>请尽快处理</p></body></html>",
			want: "账户无法登录 请尽快处理",
		},
		{
			name: "忽略style和script",
			html: "<style>p{color:red}</style><p>refund   my   card</p><script>alert(1)</script>",
			want: "refund my card",
		},
		{
			name: "纯文本原样返回",
			html: "hello world",
			want: "hello world",
		},
		{
			name: "多余空白被压缩",
			html: "<div>line1\n\n\t line2</div>",
			want: "line1 line2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanToText(tc.html))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n b\t\tc "))
}
