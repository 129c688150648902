package units

import "strings"

// CompositeOp tags the operation joining the two parts of a composite
// unit.
type CompositeOp int

const (
	// OpDivision is a quotient unit such as kN/m.
	OpDivision CompositeOp = iota + 1
	// OpProduct is a product unit such as kgf·cm.
	OpProduct
)

func (op CompositeOp) String() string {
	switch op {
	case OpDivision:
		return "division"
	case OpProduct:
		return "product"
	default:
		return "unknown"
	}
}

// Composite is a compound unit decomposed into two simpler units. Values
// are constructed per call and never persisted.
type Composite struct {
	Op    CompositeOp
	Left  string
	Right string
}

// compositeMatcher is one strategy for recognizing a composite spelling.
// Matchers are tried in a fixed order; the first match wins.
type compositeMatcher func(unit string) (Composite, bool)

var compositeMatchers = []compositeMatcher{
	matchDivision,
	matchExplicitProduct,
	matchConcatenation,
}

// ParseComposite decomposes a compound unit string. Units that match no
// strategy are treated as atomic by the caller.
func ParseComposite(unit string) (Composite, bool) {
	for _, match := range compositeMatchers {
		if c, ok := match(unit); ok {
			return c, true
		}
	}
	return Composite{}, false
}

// matchDivision recognizes exactly one slash with non-empty sides.
func matchDivision(unit string) (Composite, bool) {
	if strings.Count(unit, "/") != 1 {
		return Composite{}, false
	}
	parts := strings.SplitN(unit, "/", 2)
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return Composite{}, false
	}
	return Composite{Op: OpDivision, Left: left, Right: right}, true
}

// productSeparators are the explicit multiplication spellings.
var productSeparators = []string{"-", "·", "*"}

// matchExplicitProduct recognizes exactly one multiplication separator
// across all three spellings, with non-empty sides.
func matchExplicitProduct(unit string) (Composite, bool) {
	total := 0
	sep := ""
	for _, s := range productSeparators {
		n := strings.Count(unit, s)
		total += n
		if n == 1 {
			sep = s
		}
	}
	if total != 1 || sep == "" {
		return Composite{}, false
	}
	parts := strings.SplitN(unit, sep, 2)
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])
	if left == "" || right == "" {
		return Composite{}, false
	}
	return Composite{Op: OpProduct, Left: left, Right: right}, true
}

// Concatenation templates: force and length tokens that appear glued
// together in data exports ("kgfcm", "Nm"). The allow-list is fixed; the
// match is case-insensitive against the full string.
var (
	concatForceTokens  = []string{"kgf", "lbf", "tf", "N"}
	concatLengthTokens = []string{"mm", "cm", "ft", "in", "m"}
)

func matchConcatenation(unit string) (Composite, bool) {
	lower := strings.ToLower(unit)
	for _, force := range concatForceTokens {
		for _, length := range concatLengthTokens {
			if lower == strings.ToLower(force)+length {
				return Composite{Op: OpProduct, Left: force, Right: length}, true
			}
		}
	}
	return Composite{}, false
}
