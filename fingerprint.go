package slugify

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes every setting and map entry that can change a slug.
// It depends only on content, so equal configurations in different
// processes agree on it.
func fingerprint(s settings, charMap CharMap) string {
	h := xxhash.New()

	fmt.Fprintf(h, "replacement=%q lower=%t strict=%t trim=%t collapse=%t fallback=%t html=%t markdown=%t\n",
		s.replacement, s.lower, s.strict, s.trim, s.collapse, s.fallback, s.stripHTML, s.stripMD)

	switch {
	case s.remove == nil:
		fmt.Fprint(h, "remove=default\n")
	case s.remove.pattern == nil:
		fmt.Fprint(h, "remove=none\n")
	default:
		fmt.Fprintf(h, "remove=%q\n", s.remove.pattern.String())
	}

	writeMap(h, "chars", charMap)
	writeMap(h, "multi", s.multi)

	fmt.Fprint(h, "words")
	for _, w := range slices.Sorted(maps.Keys(s.words)) {
		fmt.Fprintf(h, " %q", w)
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

func writeMap[M ~map[string]string](h *xxhash.Digest, name string, m M) {
	fmt.Fprintf(h, "%s %d\n", name, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(h, "%q=%q\n", k, m[k])
	}
}
