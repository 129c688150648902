package units

import (
	"math"
	"strconv"
)

// DefaultSigFigs is the significant-figure count applied to conversion
// results.
const DefaultSigFigs = 5

// RoundSig rounds a value to the given count of significant figures using
// logarithmic scaling, so it is stable across many orders of magnitude and
// symmetric for negative inputs. Zero is returned unchanged.
func RoundSig(value float64, figs int) float64 {
	if value == 0 || figs <= 0 {
		return value
	}
	magnitude := math.Floor(math.Log10(math.Abs(value)))
	factor := math.Pow(10, float64(figs-1)-magnitude)
	return math.Round(value*factor) / factor
}

// FormatWithPrecision renders a value with a fixed number of decimal
// places, the form converted table cells are written in.
func FormatWithPrecision(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}
