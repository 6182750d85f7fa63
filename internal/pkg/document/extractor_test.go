package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Extract_Txt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("  请帮我冻结卡片\n"), 0o644))

	reg := NewRegistry()
	assert.Equal(t, "请帮我冻结卡片", reg.Extract(path))
}

func TestRegistry_Extract_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "body.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>failed   transaction</p>"), 0o644))

	reg := NewRegistry()
	assert.Equal(t, "failed transaction", reg.Extract(path))
}

func TestRegistry_Extract_Unsupported(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, "[Unsupported file type: .png]", reg.Extract("/tmp/pic.png"))
}

func TestRegistry_Extract_Docx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appeal.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>第一段</w:t></w:r></w:p>
<w:p><w:r><w:t>second paragraph</w:t></w:r></w:p>
</w:body>
</w:document>`)

	reg := NewRegistry()
	assert.Equal(t, "第一段\nsecond paragraph", reg.Extract(path))
}

func TestRegistry_Extract_BrokenFile(t *testing.T) {
	reg := NewRegistry()
	got := reg.Extract(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Contains(t, got, "[Error reading TXT file:")
}

func writeDocx(t *testing.T, path string, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}
