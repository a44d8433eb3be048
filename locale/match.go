package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/slugify/internal/charmaps"
)

// maxPreferencesLength bounds the input accepted by Match.
const maxPreferencesLength = 4096

type preference struct {
	name    string
	quality float64
}

// Match picks the shipped locale that best fits a preference list in
// Accept-Language form, for example "de-AT,fr;q=0.8,en;q=0.5".
// Entries with q=0, wildcards and languages without a table are skipped.
// Among equal qualities the earlier entry wins. The second result is false
// when nothing matches.
func Match(preferences string) (string, bool) {
	if len(preferences) > maxPreferencesLength {
		preferences = preferences[:maxPreferencesLength]
	}

	var prefs []preference
	for part := range strings.SplitSeq(preferences, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			v, err := strconv.ParseFloat(q, 64)
			if err != nil || v < 0 || v > 1 {
				continue
			}
			quality = v
		}
		if quality == 0 {
			continue
		}

		name, ok := canonical(tag)
		if !ok {
			continue
		}
		if _, err := charmaps.Get(name); err != nil {
			continue
		}
		prefs = append(prefs, preference{name: name, quality: quality})
	}

	if len(prefs) == 0 {
		return "", false
	}

	slices.SortStableFunc(prefs, func(a, b preference) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return prefs[0].name, true
}
