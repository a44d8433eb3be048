package slugify

import (
	"regexp"
	"strings"
)

// Options holds the per-call configuration. Fields are only set through
// Option functions; a field that was never set falls back to the preset
// of the selected Mode and then to the package default.
type Options struct {
	replacement *string
	lower       *bool
	strict      *bool
	trim        *bool
	collapse    *bool
	fallback    *bool
	stripHTML   *bool
	stripMD     *bool
	remove      *remover
	multi       MultiCharMap
	words       WordSet
	mode        Mode
}

// Option configures a single transformation.
type Option func(*Options)

// Replacement sets the string used for removed characters and between words.
// Defaults to "-".
func Replacement(s string) Option {
	return func(o *Options) {
		o.replacement = &s
	}
}

// Lower controls lower-casing of the result. Defaults to false.
func Lower(v bool) Option {
	return func(o *Options) {
		o.lower = &v
	}
}

// Strict drops everything except ASCII letters, digits and the replacement.
// Defaults to false.
func Strict(v bool) Option {
	return func(o *Options) {
		o.strict = &v
	}
}

// Trim strips replacement runs from both ends. Defaults to true.
func Trim(v bool) Option {
	return func(o *Options) {
		o.trim = &v
	}
}

// Collapse merges consecutive replacements into one. Defaults to true.
func Collapse(v bool) Option {
	return func(o *Options) {
		o.collapse = &v
	}
}

// Fallback makes an otherwise empty result fall back to the slug of the
// base64-encoded input. Defaults to false.
func Fallback(v bool) Option {
	return func(o *Options) {
		o.fallback = &v
	}
}

// StripHTML removes HTML tags and unescapes entities before mapping.
// Defaults to false.
func StripHTML(v bool) Option {
	return func(o *Options) {
		o.stripHTML = &v
	}
}

// StripMarkdown renders Markdown and keeps only its text before mapping,
// so "## Hello *World*" reads as "Hello World". It implies StripHTML.
// Defaults to false.
func StripMarkdown(v bool) Option {
	return func(o *Options) {
		o.stripMD = &v
	}
}

// WithMode applies a preset underneath the explicitly set options.
// Unknown modes are ignored.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.mode = m
	}
}

// WithMultiCharMap sets the multi-character map consulted before the CharMap.
// A nil map keeps the map configured underneath; an empty one clears it.
func WithMultiCharMap(m MultiCharMap) Option {
	return func(o *Options) {
		if m == nil {
			return
		}
		o.multi = m
	}
}

// Words replaces the set of tokens that are kept as separate words.
func Words(ws WordSet) Option {
	return func(o *Options) {
		o.words = ws
	}
}

// RemoveChars replaces every character of set with the replacement instead
// of running the default cleanup. An empty set leaves the default cleanup on.
func RemoveChars(set string) Option {
	return func(o *Options) {
		if set == "" {
			o.remove = nil
			return
		}
		o.remove = newCharClassRemover(set)
	}
}

// RemoveList is RemoveChars with the characters given one by one.
// An empty list disables the default cleanup without removing anything.
func RemoveList(chars ...string) Option {
	return func(o *Options) {
		o.remove = newCharClassRemover(strings.Join(chars, ""))
	}
}

// RemovePattern replaces every match of re with the replacement instead of
// running the default cleanup. A nil pattern leaves the default cleanup on.
func RemovePattern(re *regexp.Regexp) Option {
	return func(o *Options) {
		if re == nil {
			o.remove = nil
			return
		}
		o.remove = &remover{pattern: re}
	}
}

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// overlay returns base with every field set in o taking precedence.
func (o *Options) overlay(base Options) Options {
	merged := *o
	if merged.replacement == nil {
		merged.replacement = base.replacement
	}
	if merged.lower == nil {
		merged.lower = base.lower
	}
	if merged.strict == nil {
		merged.strict = base.strict
	}
	if merged.trim == nil {
		merged.trim = base.trim
	}
	if merged.collapse == nil {
		merged.collapse = base.collapse
	}
	if merged.fallback == nil {
		merged.fallback = base.fallback
	}
	if merged.stripHTML == nil {
		merged.stripHTML = base.stripHTML
	}
	if merged.stripMD == nil {
		merged.stripMD = base.stripMD
	}
	if merged.remove == nil {
		merged.remove = base.remove
	}
	if merged.multi == nil {
		merged.multi = base.multi
	}
	if merged.words == nil {
		merged.words = base.words
	}
	return merged
}

// settings is the effective configuration of one transformation.
type settings struct {
	remove      *remover
	multi       MultiCharMap
	words       WordSet
	replacement string
	lower       bool
	strict      bool
	trim        bool
	collapse    bool
	fallback    bool
	stripHTML   bool
	stripMD     bool
}

func (o *Options) resolve() settings {
	eff := *o
	if preset, ok := presets[o.mode]; ok {
		eff = o.overlay(preset)
	}

	s := settings{
		remove:      eff.remove,
		multi:       eff.multi,
		words:       eff.words,
		replacement: valueOr(eff.replacement, "-"),
		lower:       valueOr(eff.lower, false),
		strict:      valueOr(eff.strict, false),
		trim:        valueOr(eff.trim, true),
		collapse:    valueOr(eff.collapse, true),
		fallback:    valueOr(eff.fallback, false),
		stripHTML:   valueOr(eff.stripHTML, false),
		stripMD:     valueOr(eff.stripMD, false),
	}
	if s.words == nil {
		s.words = defaultWords
	}
	return s
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
