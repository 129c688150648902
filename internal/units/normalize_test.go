package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docunits/internal/shared/testutil"
	"docunits/internal/units"
)

func newTestEngine(t *testing.T) (*units.Engine, *testutil.CaptureHandler) {
	t.Helper()
	store := testutil.NewTestStore(t)
	logger, handler := testutil.NewTestLogger(t)
	return units.NewEngine(store, logger), handler
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "   ", want: ""},
		{name: "plain unit", raw: "m", want: "m"},
		{name: "surrounding spaces", raw: "  kN  ", want: "kN"},
		{name: "superscript two", raw: "m²", want: "m^2"},
		{name: "superscript three", raw: "cm³", want: "cm^3"},
		{name: "superscript in quotient", raw: "m/s²", want: "m/s^2"},
		{name: "per word", raw: "kN per m", want: "kN/m"},
		{name: "per word mixed case", raw: "rad PER sec", want: "rad/sec"},
		{name: "spaces around slash", raw: "kg / m", want: "kg/m"},
		{name: "bare digit exponent", raw: "m2", want: "m^2"},
		{name: "bare digit exponent in quotient", raw: "kN/m2", want: "kN/m^2"},
		{name: "middle dot product", raw: "kgf·cm", want: "kgf-cm"},
		{name: "asterisk product", raw: "kgf*cm", want: "kgf-cm"},
		{name: "spaced product", raw: "kgf · cm", want: "kgf-cm"},
		{name: "implicit product", raw: "kN m", want: "kN-m"},
		{name: "implicit product with exponent", raw: "N m^2", want: "N-m^2"},
		{name: "caret preserved", raw: "ft^2", want: "ft^2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, units.Normalize(tt.raw))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	first := units.Normalize("kgf · cm²")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, units.Normalize("kgf · cm²"))
	}
}

func TestNormalizeWithAliases(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "exact alias", raw: "meter", want: "m"},
		{name: "case insensitive alias", raw: "METER", want: "m"},
		{name: "plural alias", raw: "Meters", want: "m"},
		{name: "temperature shorthand", raw: "C", want: "°C"},
		{name: "canonical passes through", raw: "kN", want: "kN"},
		{name: "unknown passes through", raw: "zzz", want: "zzz"},
		{name: "normalized before lookup", raw: "  meter  ", want: "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.NormalizeWithAliases(tt.raw))
		})
	}
}
