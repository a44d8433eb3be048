package slugify

import (
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/slugify/internal/charmaps"
)

// CharMap maps a single code point to its replacement token.
type CharMap map[string]string

// MultiCharMap maps a sequence of one or more code points to its replacement token.
// When keys of different lengths match at the same position, the longest wins.
type MultiCharMap map[string]string

// Extend merges maps into a new CharMap. Later maps win on key conflicts.
// None of the arguments are modified.
func Extend(base CharMap, extensions ...CharMap) CharMap {
	merged := make(CharMap, len(base))
	maps.Copy(merged, base)
	for _, ext := range extensions {
		maps.Copy(merged, ext)
	}
	return merged
}

// ExtendMulti is Extend for multi-character maps.
func ExtendMulti(base MultiCharMap, extensions ...MultiCharMap) MultiCharMap {
	merged := make(MultiCharMap, len(base))
	maps.Copy(merged, base)
	for _, ext := range extensions {
		maps.Copy(merged, ext)
	}
	return merged
}

// BaseMap returns a copy of the built-in base map: common symbols spelled out
// as words and Latin letters that have no canonical decomposition.
func BaseMap() CharMap {
	return maps.Clone(baseMap())
}

// baseMap returns the shared base map. Callers must not modify it.
func baseMap() CharMap {
	return charmaps.Base().Chars
}

// WordSet is a set of replacement tokens that must stay separate words.
// Tokens are compared in lower case.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from the given tokens.
func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		ws[strings.ToLower(w)] = struct{}{}
	}
	return ws
}

var defaultWords = NewWordSet(
	"and", "at", "percent", "plus", "equals", "less", "greater",
	"euro", "pound", "dollar", "yen", "cent", "deg", "no",
	"section", "paragraph", "dagger", "double-dagger", "bullet",
	"c", "r", "tm", "exclamation", "question", "ellipsis",
	"first", "second", "third",
)

// DefaultWords returns a copy of the word set used when none is configured.
func DefaultWords() WordSet {
	return maps.Clone(defaultWords)
}

// isWordToken reports whether a mapped token must be padded with spaces
// so that it ends up as a token of its own.
func (ws WordSet) isWordToken(token string) bool {
	if _, ok := ws[strings.ToLower(token)]; ok {
		return true
	}
	return strings.Contains(token, "-") && utf8.RuneCountInString(token) > 3
}
