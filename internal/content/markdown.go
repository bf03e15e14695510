package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is safe for concurrent use once built. Without WithUnsafe, raw HTML in the
// source is replaced by a "raw HTML omitted" comment.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown converts markdown prose to HTML.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
