package slugify

import "errors"

var (
	// ErrMalformedInput is returned when the input is not well-formed text:
	// a lone UTF-16 surrogate (encoded or not) or any other invalid UTF-8 sequence.
	ErrMalformedInput = errors.New("slugify: received a malformed string with lone surrogates or invalid UTF-8")

	// ErrInvalidMode is returned by ParseMode for names other than "pretty" and "rfc3986".
	ErrInvalidMode = errors.New("slugify: invalid mode")
)
