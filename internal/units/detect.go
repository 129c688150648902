package units

import (
	"sort"
	"strings"

	"docunits/internal/config"
)

// CategoryMatch is the result of unit-to-category detection. Known is
// false for units that appear in no category; Unit then echoes the input.
type CategoryMatch struct {
	Category string
	Unit     string
	Known    bool
}

// DetectCategory finds the conversion category a unit belongs to by
// scanning base and target keys of every category, comparing normalized
// forms case-insensitively. Categories are scanned in sorted name order so
// a unit spelled in two categories detects deterministically. An unknown
// unit is a result, not an error.
func (e *Engine) DetectCategory(unit string) CategoryMatch {
	needle := strings.ToLower(e.NormalizeWithAliases(unit))

	for _, name := range e.store.CategoryNames() {
		cat, _ := e.store.Category(name)

		bases := make([]string, 0, len(cat.Conversions))
		for base := range cat.Conversions {
			bases = append(bases, base)
		}
		sort.Strings(bases)

		for _, base := range bases {
			if strings.ToLower(Normalize(base)) == needle {
				return CategoryMatch{Category: name, Unit: base, Known: true}
			}
		}
		for _, base := range bases {
			targets := make([]string, 0, len(cat.Conversions[base]))
			for target := range cat.Conversions[base] {
				targets = append(targets, target)
			}
			sort.Strings(targets)
			for _, target := range targets {
				if config.IsOffsetKey(target) {
					continue
				}
				if strings.ToLower(Normalize(target)) == needle {
					return CategoryMatch{Category: name, Unit: target, Known: true}
				}
			}
		}
	}
	return CategoryMatch{Unit: unit}
}
