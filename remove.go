package slugify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// remover is the compiled form of the RemoveChars, RemoveList and
// RemovePattern options. A remover without a pattern matches nothing.
type remover struct {
	pattern *regexp.Regexp
}

func newCharClassRemover(chars string) *remover {
	if chars == "" {
		return &remover{}
	}
	return &remover{pattern: regexp.MustCompile("[" + quoteClass(chars) + "]")}
}

func (r *remover) replace(s, replacement string) string {
	if r.pattern == nil {
		return s
	}
	return r.pattern.ReplaceAllLiteralString(s, replacement)
}

// quoteClass escapes chars for use inside a bracket expression.
// Every ASCII character that is not a letter or digit is escaped,
// which RE2 always reads as the literal character.
func quoteClass(chars string) string {
	var b strings.Builder
	b.Grow(len(chars) * 2)
	for _, r := range chars {
		if r < utf8.RuneSelf && !isASCIIAlnum(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
