package slugify

import (
	"encoding/base64"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/slugify/pkg/sanitizer"
)

// emptySeed is encoded in place of an empty input when fallback is on.
const emptySeed = "empty"

// combiningDiacritics is the Combining Diacritical Marks block (U+0300–U+036F).
// Marks outside of it, such as Devanagari vowel signs, survive
// decomposition and are left to the cleanup pass.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Transform converts text into a slug using charMap for single code point
// substitutions. A nil charMap substitutes nothing.
//
// It fails only with ErrMalformedInput, before doing any other work.
func Transform(text string, charMap CharMap, opts ...Option) (string, error) {
	var o Options
	o.apply(opts)
	return convert(text, &o, charMap)
}

func convert(text string, o *Options, charMap CharMap) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrMalformedInput
	}

	s := o.resolve()

	var slug string
	if text != "" {
		slug = s.run(text, charMap)
	}

	// The encoded form goes through the same passes once more, never
	// through fallback again.
	if slug == "" && s.fallback {
		seed := text
		if seed == "" {
			seed = emptySeed
		}
		slug = s.run(base64.StdEncoding.EncodeToString([]byte(seed)), charMap)
	}

	if s.lower {
		slug = cases.Lower(language.Und).String(slug)
	}
	return slug, nil
}

// run applies every pass except fallback and casing.
func (s *settings) run(text string, charMap CharMap) string {
	switch {
	case s.stripMD:
		text = sanitizer.StripMarkdown(text)
	case s.stripHTML:
		text = sanitizer.StripTags(text)
	}

	result := s.substitute(text, charMap)
	result = stripMarks(result)

	if s.remove != nil {
		result = s.remove.replace(result, s.replacement)
	} else {
		result = replaceRunes(result, s.replacement, func(r rune) bool {
			return !isWordRune(r) && !isSpace(r) && !strings.ContainsRune(s.replacement, r)
		})
	}

	result = foldSpaces(result, s.replacement)

	if s.collapse {
		result = collapseRuns(result, s.replacement)
	}

	if s.strict {
		result = strings.Map(func(r rune) rune {
			if isASCIIAlnum(r) || strings.ContainsRune(s.replacement, r) {
				return r
			}
			return -1
		}, result)
	}

	if s.trim {
		result = trimRuns(result, s.replacement)
	}

	return result
}

// substitute scans text by code point. At each position the multi-character
// map is tried from the longest key length down, then the single-character
// map; unmatched code points are copied as they are.
func (s *settings) substitute(text string, charMap CharMap) string {
	src := []rune(text)
	lengths := keyLengths(s.multi)

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(src); {
		if token, n := matchMulti(s.multi, lengths, src[i:]); n > 0 {
			s.writeToken(&b, token)
			i += n
			continue
		}

		if token := charMap[string(src[i])]; token != "" {
			s.writeToken(&b, token)
		} else {
			b.WriteRune(src[i])
		}
		i++
	}

	return b.String()
}

func (s *settings) writeToken(b *strings.Builder, token string) {
	if s.words.isWordToken(token) {
		b.WriteByte(' ')
		b.WriteString(token)
		b.WriteByte(' ')
		return
	}
	b.WriteString(token)
}

// keyLengths returns the distinct key lengths of m, in code points, longest first.
func keyLengths(m MultiCharMap) []int {
	if len(m) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, 4)
	lengths := make([]int, 0, 4)
	for key := range m {
		n := utf8.RuneCountInString(key)
		if n == 0 {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			lengths = append(lengths, n)
		}
	}
	slices.Sort(lengths)
	slices.Reverse(lengths)
	return lengths
}

// matchMulti returns the token of the longest key that prefixes src and the
// key's length in code points. Keys mapped to an empty token never match.
func matchMulti(m MultiCharMap, lengths []int, src []rune) (string, int) {
	for _, n := range lengths {
		if n > len(src) {
			continue
		}
		if token := m[string(src[:n])]; token != "" {
			return token, n
		}
	}
	return "", 0
}

// stripMarks decomposes s canonically and drops combining diacritics.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// replaceRunes substitutes replacement for every rune matching drop.
func replaceRunes(s, replacement string, drop func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if drop(r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldSpaces replaces each whitespace run with a single replacement.
func foldSpaces(s, replacement string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteString(replacement)
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// collapseRuns replaces each run of consecutive replacements with one.
func collapseRuns(s, replacement string) string {
	if replacement == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], replacement) {
			b.WriteString(replacement)
			for strings.HasPrefix(s[i:], replacement) {
				i += len(replacement)
			}
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// trimRuns strips replacement runs anchored at either end of s.
func trimRuns(s, replacement string) string {
	if replacement == "" {
		return s
	}
	for strings.HasPrefix(s, replacement) {
		s = s[len(replacement):]
	}
	for strings.HasSuffix(s, replacement) {
		s = s[:len(s)-len(replacement)]
	}
	return s
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// isWordRune matches [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return isASCIIAlnum(r) || r == '_'
}

// isSpace matches the ECMAScript whitespace and line terminator set.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return 0x2000 <= r && r <= 0x200a
}
