package tableconv

import (
	"sort"
	"strings"

	"docunits/internal/config"
)

// HeaderUnit is a unit extracted from a column header: the base label
// ("Moment" in "Moment (kgfcm)"), the unit spelling and the delimiter
// pair it was found in.
type HeaderUnit struct {
	Base  string
	Unit  string
	Open  string
	Close string
}

// concatPattern repairs moment units written without a separator, a
// spelling common in exported analysis tables. Longer spellings are
// listed first so "kgfcm" is never read as a shorter pattern's tail.
type concatPattern struct {
	joined    string
	canonical string
}

var concatPatterns = []concatPattern{
	{"tonfm", "tonf·m"},
	{"kgfcm", "kgf·cm"},
	{"lbfft", "lbf·ft"},
	{"lbfin", "lbf·in"},
	{"kipft", "kip·ft"},
	{"kipin", "kip·in"},
	{"kgfm", "kgf·m"},
	{"tonm", "ton·m"},
	{"knm", "kN·m"},
	{"mnm", "MN·m"},
	{"nm", "N·m"},
}

// repairConcatUnit replaces a separator-less moment spelling with its
// explicit-product form. Unmatched units pass through unchanged.
func repairConcatUnit(unit string) string {
	lower := strings.ToLower(unit)
	for _, p := range concatPatterns {
		if lower == p.joined {
			return p.canonical
		}
	}
	return unit
}

// ExtractHeaderUnit finds the unit embedded in a column header between a
// configured delimiter pair. The rightmost opening delimiter wins, so
// "Force (total) (kN)" extracts "kN". Headers with no delimited,
// non-empty unit report ok=false.
func ExtractHeaderUnit(store *config.Store, header string) (HeaderUnit, bool) {
	names := make([]string, 0, len(store.Delimiters()))
	for name := range store.Delimiters() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pair := store.Delimiters()[name]
		if len(pair) != 2 {
			continue
		}
		open, closing := pair[0], pair[1]
		start := strings.LastIndex(header, open)
		if start < 0 {
			continue
		}
		rest := header[start+len(open):]
		end := strings.Index(rest, closing)
		if end < 0 {
			continue
		}
		unit := strings.TrimSpace(rest[:end])
		if unit == "" {
			continue
		}
		return HeaderUnit{
			Base:  strings.TrimSpace(header[:start]),
			Unit:  repairConcatUnit(unit),
			Open:  open,
			Close: closing,
		}, true
	}
	return HeaderUnit{}, false
}

// Rewrite renders the header with a replacement unit, keeping the
// delimiter pair the original unit was written in.
func (h HeaderUnit) Rewrite(unit string) string {
	if h.Base == "" {
		return h.Open + unit + h.Close
	}
	return h.Base + " " + h.Open + unit + h.Close
}
