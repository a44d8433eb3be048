package sanitizer

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// markdown renders CommonMark without raw HTML passthrough.
var markdown = goldmark.New()

// StripMarkdown renders s as Markdown and returns its text content.
// Raw HTML embedded in the Markdown is dropped. Returns s unchanged if
// rendering fails.
func StripMarkdown(s string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return s
	}
	return StripTags(buf.String())
}
