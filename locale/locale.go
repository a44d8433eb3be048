// Package locale exposes the character tables shipped with slugify.
//
// Each locale extends the base map with language specific spellings
// (German umlauts, French ligatures, Devanagari and Arabic letters,
// common Chinese characters) and may carry a multi-character map for
// conjuncts and compound words.
//
//	de, err := locale.New("de", slugify.Lower(true))
//	s, err := de.Slugify("Größe & Gewicht")
//	// "groesse-und-gewicht"
//
// Names accept BCP 47 tags; only the language subtag is used, so "de-AT"
// resolves to "de".
package locale

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/slugify"
	"github.com/dmitrymomot/slugify/internal/charmaps"
)

// ErrUnknownLocale is returned for names without a shipped table.
var ErrUnknownLocale = errors.New("locale: unknown locale")

// Table is a locale's character maps.
type Table struct {
	Chars       slugify.CharMap
	Multi       slugify.MultiCharMap
	Name        string
	Description string
}

// Names returns the shipped locale names in sorted order.
func Names() []string {
	return slices.DeleteFunc(charmaps.Names(), func(name string) bool {
		return name == charmaps.BaseName
	})
}

// Lookup returns a copy of the named locale's table.
func Lookup(name string) (Table, error) {
	key, ok := canonical(name)
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}

	t, err := charmaps.Get(key)
	if err != nil {
		if errors.Is(err, charmaps.ErrNotFound) {
			return Table{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
		}
		return Table{}, err
	}

	return fromCharmap(t), nil
}

// Parse decodes a custom table from YAML:
//
//	name: pirate
//	chars:
//	  "&": "an'"
//	multi:
//	  "you": "ye"
//
// Keys under chars must be single code points.
func Parse(data []byte) (Table, error) {
	t, err := charmaps.Parse(data)
	if err != nil {
		return Table{}, err
	}
	return fromCharmap(t), nil
}

// New returns a Slugifier for the named locale: the base map extended with
// the locale's characters, and the locale's multi-character map.
func New(name string, opts ...slugify.Option) (*slugify.Slugifier, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.Slugifier(opts...), nil
}

// Slugifier builds a Slugifier from t on top of the base map.
func (t Table) Slugifier(opts ...slugify.Option) *slugify.Slugifier {
	return slugify.New(t.Config(opts...))
}

// Config returns the Slugifier configuration for t, for callers that add
// a cache or other settings before calling slugify.New.
func (t Table) Config(opts ...slugify.Option) slugify.Config {
	return slugify.Config{
		Map:          slugify.Extend(slugify.BaseMap(), t.Chars),
		MultiCharMap: t.Multi,
		Options:      opts,
	}
}

func fromCharmap(t charmaps.Table) Table {
	return Table{
		Chars:       maps.Clone(t.Chars),
		Multi:       maps.Clone(t.Multi),
		Name:        t.Name,
		Description: t.Description,
	}
}

// canonical maps a user supplied name or language tag to a table name.
func canonical(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == charmaps.BaseName {
		return "", false
	}
	if tag, err := language.Parse(name); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			name = base.String()
		}
	}
	return name, true
}
