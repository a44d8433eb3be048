// Package slugify generates URL-safe slugs from arbitrary Unicode text.
//
// Text is run through a character map (symbols become words, letters without
// a decomposition become ASCII), canonical decomposition with diacritic
// removal, and a series of cleanup passes that replace, collapse and trim
// separators.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugify"
//
//	s, err := slugify.Slugify("Hello World")
//	// s == "Hello-World"
//
//	s, err = slugify.Slugify("Café & Restaurant", slugify.Lower(true))
//	// s == "cafe-and-restaurant"
//
// The only error is [ErrMalformedInput], returned for text that is not valid
// UTF-8 (lone surrogates included). Empty input and input that cleans up to
// nothing are not errors; they produce "" unless [Fallback] is enabled.
//
// # Options
//
// Replacement sets the separator and the substitute for removed characters:
//
//	slugify.Slugify("Hello World", slugify.Replacement("_"))
//	// "Hello_World"
//
// Lower, Strict, Trim and Collapse toggle the casing and cleanup passes:
//
//	slugify.Slugify("foo---bar", slugify.Collapse(false))
//	// "foo---bar"
//
//	slugify.Slugify("Hello-World!", slugify.Strict(true))
//	// "Hello-World"
//
// RemoveChars, RemoveList and RemovePattern replace the default cleanup
// with a character set or a regular expression:
//
//	slugify.Slugify("hello@world.com", slugify.RemoveChars("@."))
//	// "hello-at-world-com" ("@" is mapped to "at" before removal runs)
//
// Fallback makes the result non-empty by slugging the base64 form of the input:
//
//	slugify.Slugify("🎉", slugify.Fallback(true))
//	// "8J-plus-OiQ-equals-equals"
//
// StripHTML and StripMarkdown reduce markup to its text before mapping:
//
//	slugify.Slugify("## Getting *Started*", slugify.StripMarkdown(true), slugify.Lower(true))
//	// "getting-started"
//
// # Preset Modes
//
// A Mode fills in defaults underneath explicit options:
//
//	slugify.Slugify("Hello World", slugify.WithMode(slugify.ModeRFC3986))
//	// "hello-world"
//
//	slugify.Slugify("Hello World", slugify.WithMode(slugify.ModeRFC3986), slugify.Lower(false))
//	// "Hello-World"
//
// # Character Maps
//
// Extend merges maps without modifying them; later maps win:
//
//	german := slugify.New(slugify.Config{
//		Map:     slugify.Extend(slugify.BaseMap(), slugify.CharMap{"Ü": "Ue", "ü": "ue", "&": "und"}),
//		Options: []slugify.Option{slugify.Lower(true)},
//	})
//	s, err := german.Slugify("Über & Unter")
//	// "ueber-und-unter"
//
// A MultiCharMap is consulted first; among keys matching at the same position
// the longest one wins:
//
//	slugify.Slugify("abc", slugify.WithMultiCharMap(slugify.MultiCharMap{
//		"a": "s", "ab": "m", "abc": "l",
//	}))
//	// "l"
//
// Replacement tokens listed in the word set (see DefaultWords) or containing
// a hyphen and longer than three characters are kept as separate words.
//
// Ready-made locale tables live in the locale subpackage.
//
// # Known Simplification
//
// Only combining marks in U+0300–U+036F are removed after decomposition.
// Marks from other blocks, such as Devanagari vowel signs, are treated as
// ordinary non-word characters by the cleanup pass.
package slugify
