package units

import "strings"

// nonPrefixable lists units that must never be split into prefix + base:
// their leading characters collide with prefix symbols ("c" in cyc/min,
// "m" in percent would otherwise be stripped).
var nonPrefixable = map[string]struct{}{
	"°C":      {},
	"°F":      {},
	"K":       {},
	"Hz":      {},
	"1/sec":   {},
	"rad/sec": {},
	"cyc/min": {},
	"percent": {},
	"%":       {},
}

// SplitPrefix splits a unit into its SI prefix symbol and base unit.
// Multiples are scanned before submultiples, longest symbol first, and a
// match must leave a non-empty remainder. Matching is case-sensitive.
// Units with no prefix return ("", unit).
func (e *Engine) SplitPrefix(unit string) (symbol, base string) {
	if _, special := nonPrefixable[unit]; special {
		return "", unit
	}
	for _, group := range [][]string{e.store.MultipleSymbols(), e.store.SubmultipleSymbols()} {
		for _, sym := range group {
			if len(unit) > len(sym) && strings.HasPrefix(unit, sym) {
				return sym, unit[len(sym):]
			}
		}
	}
	return "", unit
}

// PrefixFactor returns the multiplicative factor of a prefix symbol. The
// empty symbol and unrecognized symbols both yield 1.0: prefix handling is
// a normalization, not an authoritative fact, so it fails open.
func (e *Engine) PrefixFactor(symbol string) float64 {
	if symbol == "" {
		return 1.0
	}
	if factor, ok := e.store.PrefixFactor(symbol); ok {
		return factor
	}
	return 1.0
}
