package slugify

import "fmt"

// Mode names a preset bundle of option defaults.
type Mode string

const (
	// ModePretty keeps the original case.
	ModePretty Mode = "pretty"
	// ModeRFC3986 lower-cases the result.
	ModeRFC3986 Mode = "rfc3986"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(name); m {
	case ModePretty, ModeRFC3986:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q, use %q or %q", ErrInvalidMode, name, ModePretty, ModeRFC3986)
}

// presets are applied underneath explicitly set options.
var presets = map[Mode]Options{
	ModePretty: {
		replacement: ptr("-"),
		lower:       ptr(false),
		strict:      ptr(false),
		trim:        ptr(true),
		collapse:    ptr(true),
		fallback:    ptr(false),
	},
	ModeRFC3986: {
		replacement: ptr("-"),
		lower:       ptr(true),
		strict:      ptr(false),
		trim:        ptr(true),
		collapse:    ptr(true),
		fallback:    ptr(false),
	},
}

func ptr[T any](v T) *T {
	return &v
}
