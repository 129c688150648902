package units

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"docunits/internal/config"
)

// maxCompositeDepth bounds the recursion through composite and power
// resolution. Real unit spellings nest at most once.
const maxCompositeDepth = 4

// Engine resolves conversion factors against an immutable config.Store.
// It is safe for concurrent use: every method is a pure computation over
// the loaded tables.
type Engine struct {
	store   *config.Store
	logger  *slog.Logger
	sigFigs int
}

// NewEngine creates an engine over a loaded configuration store. A nil
// logger falls back to slog.Default(). Results are rounded to
// DefaultSigFigs significant figures.
func NewEngine(store *config.Store, logger *slog.Logger) *Engine {
	return NewEngineWithSigFigs(store, DefaultSigFigs, logger)
}

// NewEngineWithSigFigs creates an engine with an explicit significant-
// figure setting for top-level results.
func NewEngineWithSigFigs(store *config.Store, sigFigs int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if sigFigs <= 0 {
		sigFigs = DefaultSigFigs
	}
	return &Engine{store: store, logger: logger, sigFigs: sigFigs}
}

// Store exposes the engine's configuration store to collaborating
// components (header extraction, target selection).
func (e *Engine) Store() *config.Store {
	return e.store
}

// SigFigs returns the significant-figure setting applied to top-level
// results.
func (e *Engine) SigFigs() int {
	return e.sigFigs
}

// transform is a resolved conversion. Affine transforms model offset
// pairs (temperature); everything else is a plain factor.
type transform struct {
	factor  float64
	offset  float64
	affine  bool
	inverse bool
}

func (t transform) apply(v float64) float64 {
	if t.affine {
		if t.inverse {
			return v/t.factor - t.offset
		}
		return (v + t.offset) * t.factor
	}
	return v * t.factor
}

// Convert converts a value between two unit spellings. Both units pass
// through normalization and alias resolution first; equal canonical forms
// return the value unchanged with no rounding. Every other successful
// result is rounded to the engine's significant figures. Failures are
// typed: UnresolvedUnitError, IncompatibleCompositeError or
// MalformedComponentError.
func (e *Engine) Convert(value float64, fromUnit, toUnit string) (float64, error) {
	from := e.NormalizeWithAliases(fromUnit)
	to := e.NormalizeWithAliases(toUnit)
	if from == to {
		return value, nil
	}
	tr, err := e.resolve(from, to, 0)
	if err != nil {
		e.logger.Debug("conversion unresolved",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return 0, err
	}
	return RoundSig(tr.apply(value), e.sigFigs), nil
}

// Factor resolves the conversion factor between two units, rounded like a
// Convert result. For affine pairs it is the image of 1.0 and is not a
// reusable multiplier; batch callers should use ColumnConverter instead.
func (e *Engine) Factor(fromUnit, toUnit string) (float64, error) {
	return e.Convert(1.0, fromUnit, toUnit)
}

// ColumnConverter resolves the conversion between two units once and
// returns a function applying it per value, rounding each result. Batch
// conversion of a table column must use this so the per-call category scan
// runs once per column, not once per cell.
func (e *Engine) ColumnConverter(fromUnit, toUnit string) (func(float64) float64, error) {
	from := e.NormalizeWithAliases(fromUnit)
	to := e.NormalizeWithAliases(toUnit)
	if from == to {
		return func(v float64) float64 { return v }, nil
	}
	tr, err := e.resolve(from, to, 0)
	if err != nil {
		e.logger.Debug("column conversion unresolved",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return nil, err
	}
	figs := e.sigFigs
	return func(v float64) float64 {
		return RoundSig(tr.apply(v), figs)
	}, nil
}

// resolve walks the ordered strategies for two canonical unit strings.
// Identity is handled by the callers so that it bypasses rounding.
func (e *Engine) resolve(from, to string, depth int) (transform, error) {
	if depth > maxCompositeDepth {
		return transform{}, &UnresolvedUnitError{From: from, To: to}
	}

	if tr, ok := e.lookupGraph(from, to); ok {
		return tr, nil
	}
	if tr, ok := e.lookupPrefixed(from, to); ok {
		return tr, nil
	}
	tr, matched, err := e.resolveComposite(from, to, depth)
	if err != nil {
		return transform{}, err
	}
	if matched {
		return tr, nil
	}
	if tr, ok := e.resolvePower(from, to, depth); ok {
		return tr, nil
	}
	return transform{}, &UnresolvedUnitError{From: from, To: to}
}

// lookupGraph is the direct/reverse scan over the conversion graph. The
// scan is linear over categories in sorted name order; the first category
// defining the pair wins.
func (e *Engine) lookupGraph(from, to string) (transform, bool) {
	for _, name := range e.store.CategoryNames() {
		cat, _ := e.store.Category(name)

		if targets, ok := cat.Conversions[from]; ok {
			if factor, ok := targets[to]; ok {
				if offset, affine := targets[config.OffsetKeyPrefix+to]; affine {
					return transform{factor: factor, offset: offset, affine: true}, true
				}
				return transform{factor: factor}, true
			}
		}
		if sources, ok := cat.Conversions[to]; ok {
			if factor, ok := sources[from]; ok {
				if offset, affine := sources[config.OffsetKeyPrefix+from]; affine {
					return transform{factor: factor, offset: offset, affine: true, inverse: true}, true
				}
				return transform{factor: 1 / factor}, true
			}
		}
	}
	return transform{}, false
}

// lookupPrefixed strips SI prefixes from both sides. Equal base units
// convert by the prefix ratio alone; different base units must still
// connect through the graph, with the ratio applied on top. Affine base
// pairs are excluded: an offset does not scale with a prefix.
func (e *Engine) lookupPrefixed(from, to string) (transform, bool) {
	p1, b1 := e.SplitPrefix(from)
	p2, b2 := e.SplitPrefix(to)
	if p1 == "" && p2 == "" {
		return transform{}, false
	}
	ratio := e.PrefixFactor(p1) / e.PrefixFactor(p2)
	if b1 == b2 {
		return transform{factor: ratio}, true
	}
	if base, ok := e.lookupGraph(b1, b2); ok && !base.affine {
		return transform{factor: base.factor * ratio}, true
	}
	return transform{}, false
}

// resolveComposite handles units that decompose into the same composite
// variant. Component pairs resolve recursively with a reference value of
// 1.0; a division combines as numerator/denominator, a product by
// multiplication. Mismatched variants and failed components are typed,
// terminal failures. Pairs where neither or only one side parses fall
// through to the next strategy.
func (e *Engine) resolveComposite(from, to string, depth int) (transform, bool, error) {
	cf, okFrom := ParseComposite(from)
	ct, okTo := ParseComposite(to)
	if !okFrom || !okTo {
		return transform{}, false, nil
	}
	if cf.Op != ct.Op {
		return transform{}, false, &IncompatibleCompositeError{From: from, To: to}
	}

	left, err := e.componentFactor(cf.Left, ct.Left, depth)
	if err != nil {
		return transform{}, false, &MalformedComponentError{Component: cf.Left, Err: err}
	}
	right, err := e.componentFactor(cf.Right, ct.Right, depth)
	if err != nil {
		return transform{}, false, &MalformedComponentError{Component: cf.Right, Err: err}
	}

	switch cf.Op {
	case OpDivision:
		return transform{factor: left / right}, true, nil
	default:
		return transform{factor: left * right}, true, nil
	}
}

// componentFactor resolves one component pair to an unrounded scalar,
// using a reference value of 1.0.
func (e *Engine) componentFactor(fromPart, toPart string, depth int) (float64, error) {
	from := e.NormalizeWithAliases(fromPart)
	to := e.NormalizeWithAliases(toPart)
	if from == to {
		return 1.0, nil
	}
	tr, err := e.resolve(from, to, depth+1)
	if err != nil {
		return 0, err
	}
	return tr.apply(1.0), nil
}

var powerUnitRe = regexp.MustCompile(`^(.+)\^([0-9]+)$`)

// resolvePower handles base^n pairs with equal integer exponents: the
// base-unit factor raised to the n-th power.
func (e *Engine) resolvePower(from, to string, depth int) (transform, bool) {
	mf := powerUnitRe.FindStringSubmatch(from)
	mt := powerUnitRe.FindStringSubmatch(to)
	if mf == nil || mt == nil || mf[2] != mt[2] {
		return transform{}, false
	}
	n, err := strconv.Atoi(mf[2])
	if err != nil {
		return transform{}, false
	}
	base, err := e.componentFactor(mf[1], mt[1], depth)
	if err != nil {
		return transform{}, false
	}
	return transform{factor: math.Pow(base, float64(n))}, true
}
