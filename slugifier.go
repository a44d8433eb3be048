package slugify

import (
	"context"

	"github.com/dmitrymomot/slugify/pkg/cache"
)

// Slugify converts text into a slug using the built-in base map.
//
// It returns ErrMalformedInput when text is not valid UTF-8.
func Slugify(text string, opts ...Option) (string, error) {
	return Transform(text, baseMap(), opts...)
}

// Config describes a reusable Slugifier.
type Config struct {
	// Map is the single-character map. Nil means the base map.
	Map CharMap

	// MultiCharMap is used unless the options name another one.
	MultiCharMap MultiCharMap

	// Options are the defaults for every call. Per-call options win field by field.
	Options []Option

	// Cache memoizes calls made without per-call options. Keys are
	// prefixed with a hash of the configuration, so slugifiers with
	// different maps or options can share one cache.
	Cache cache.Cache[string]
}

// Slugifier binds a character map, a multi-character map and default options.
// It is safe for concurrent use. The maps given in Config must not be
// modified afterwards.
type Slugifier struct {
	charMap   CharMap
	loader    *cache.Loader[string]
	namespace string
	defaults  Options
}

// New creates a Slugifier from cfg.
func New(cfg Config) *Slugifier {
	s := &Slugifier{
		charMap:  cfg.Map,
		defaults: Options{multi: cfg.MultiCharMap},
	}
	if s.charMap == nil {
		s.charMap = baseMap()
	}
	s.defaults.apply(cfg.Options)

	if cfg.Cache != nil {
		s.loader = cache.NewLoader(cfg.Cache, 0)
		s.namespace = fingerprint(s.defaults.resolve(), s.charMap)
	}
	return s
}

// CacheKey returns the key under which the slug of text is cached.
// It is empty when the Slugifier has no cache.
func (s *Slugifier) CacheKey(text string) string {
	if s.loader == nil {
		return ""
	}
	return s.namespace + ":" + text
}

// Slugify converts text with the bound configuration, overridden by opts.
func (s *Slugifier) Slugify(text string, opts ...Option) (string, error) {
	if len(opts) == 0 {
		if s.loader != nil {
			return s.loader.Load(context.Background(), s.CacheKey(text), func() (string, error) {
				return convert(text, &s.defaults, s.charMap)
			})
		}
		return convert(text, &s.defaults, s.charMap)
	}

	o := s.defaults
	o.apply(opts)
	return convert(text, &o, s.charMap)
}
