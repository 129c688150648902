// Package units implements the unit-of-measure conversion engine: it turns
// raw unit notations found in column headers, configuration and data files
// into normalized canonical forms and resolves numeric conversion factors
// between arbitrary unit pairs, including SI-prefixed and composite
// (product/quotient) units.
//
// # Architecture
//
// The engine is a pure computation over the immutable configuration tables
// in a config.Store:
//
//   - normalize.go: string canonicalization (superscripts, separators,
//     alias resolution)
//   - prefix.go: SI prefix extraction and factors
//   - composite.go: decomposition of compound units into division/product
//     of two simpler units
//   - resolver.go: the ordered resolution strategies and the public
//     Convert/Factor entry points
//   - sigfig.go: significant-figure rounding
//   - detect.go: unit-to-category detection
//   - targets.go: per-column target-unit selection
//
// # Resolution Order
//
// Convert walks fixed strategies, first success wins:
//
//  1. Identity: equal canonical strings return the value unchanged.
//  2. Direct or reverse lookup in the conversion graph (with affine
//     offsets for temperature-style pairs).
//  3. Prefix-adjusted base match: kN -> N is 1000 even when only N pairs
//     are configured.
//  4. Composite recursion: kN/m -> N/mm resolves numerator and
//     denominator independently and combines the factors.
//  5. Power units: m^2 -> ft^2 raises the base factor to the power.
//
// Alias and prefix lookups are fail-open (absence is a no-op); graph,
// composite and power resolution are fail-closed and return typed errors
// naming both unit strings. Successful top-level results are rounded to
// the engine's significant-figure setting; identity and intermediate
// recursive results are not.
//
// # Usage
//
//	store, err := config.LoadStore("config")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := units.NewEngine(store, slog.Default())
//
//	feet, err := engine.Convert(10, "m", "ft") // 32.808
//
// Batch conversion of a table column resolves the transform once:
//
//	conv, err := engine.ColumnConverter("kN/m", "N/mm")
//	for i, v := range column {
//	    column[i] = conv(v)
//	}
package units
