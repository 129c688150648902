package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"docunits/internal/config"
)

// FixtureConversion returns the conversion table used across tests: an
// engineering-flavored graph with lengths, forces, pressures, moments, an
// affine temperature pair and header delimiter pairs.
func FixtureConversion() config.ConversionDoc {
	return config.ConversionDoc{
		Categories: map[string]config.CategorySpec{
			"length": {
				Description: "linear dimensions",
				Conversions: map[string]map[string]float64{
					"m": {"ft": 3.28084, "mm": 1000, "cm": 100, "in": 39.3701},
				},
			},
			"force": {
				Conversions: map[string]map[string]float64{
					"N":  {"kgf": 0.101971621, "lbf": 0.224809},
					"kN": {"N": 1000},
				},
			},
			"pressure": {
				Conversions: map[string]map[string]float64{
					"Pa":  {"psi": 0.000145038, "bar": 1e-5},
					"MPa": {"kgf/cm^2": 10.1971621, "ksi": 0.145038},
				},
			},
			"temperature": {
				Conversions: map[string]map[string]float64{
					"°C": {
						"°F": 1.8, "offset_°F": 17.777777777777779,
						"K": 1.0, "offset_K": 273.15,
					},
				},
			},
			"moment": {
				Conversions: map[string]map[string]float64{
					"N-m": {"kgf-cm": 10.1971621, "lbf-ft": 0.737562},
				},
			},
			"frequency": {
				Conversions: map[string]map[string]float64{
					"Hz": {"1/sec": 1.0, "cyc/min": 60.0},
				},
			},
		},
		Delimiters: map[string][]string{
			"parentheses": {"(", ")"},
			"brackets":    {"[", "]"},
		},
	}
}

// FixturePrefix returns the SI prefix table used across tests.
func FixturePrefix() config.PrefixDoc {
	return config.PrefixDoc{
		Prefix: config.PrefixGroups{
			Multiples: map[string]config.PrefixEntry{
				"deca":  {Symbol: "da", Factor: 10},
				"hecto": {Symbol: "h", Factor: 100},
				"kilo":  {Symbol: "k", Factor: 1000},
				"mega":  {Symbol: "M", Factor: 1e6},
				"giga":  {Symbol: "G", Factor: 1e9},
				"tera":  {Symbol: "T", Factor: 1e12},
			},
			Submultiples: map[string]config.PrefixEntry{
				"deci":  {Symbol: "d", Factor: 0.1},
				"centi": {Symbol: "c", Factor: 0.01},
				"milli": {Symbol: "m", Factor: 0.001},
				"micro": {Symbol: "µ", Factor: 1e-6},
				"nano":  {Symbol: "n", Factor: 1e-9},
			},
		},
	}
}

// FixtureAliases returns the alias table used across tests.
func FixtureAliases() config.AliasDoc {
	return config.AliasDoc{
		UnitAliases: map[string]map[string]string{
			"length": {
				"meter": "m", "metre": "m", "meters": "m",
				"feet": "ft", "inch": "in",
			},
			"force": {
				"newton": "N", "KN": "kN",
			},
			"pressure": {
				"pascal": "Pa",
			},
			"temperature": {
				"C": "°C", "F": "°F",
				"celsius": "°C", "fahrenheit": "°F",
			},
		},
	}
}

// FixtureUnits returns the target-unit table used across tests. The
// subcategory "length" is deliberately defined in two categories so
// priority-based disambiguation is exercised.
func FixtureUnits() config.UnitsDoc {
	return config.UnitsDoc{
		Categories: map[string]map[string]config.CandidateSpec{
			"structure_dimensions": {
				"length": {Units: []string{"m", "ft"}, Precision: intPtr(2)},
				"height": {Units: []string{"m"}, Precision: intPtr(2)},
			},
			"section_dimensions": {
				"length": {Units: []string{"mm", "cm"}, Precision: intPtr(1)},
				"area":   {Units: []string{"cm^2"}, Precision: intPtr(2)},
			},
			"forces": {
				"force":  {Units: []string{"kN"}, Precision: intPtr(2)},
				"moment": {Units: []string{"N-m"}, Precision: intPtr(3)},
			},
			"stresses": {
				"stress": {Units: []string{"MPa"}, Precision: intPtr(1)},
			},
		},
		Selector: config.SelectorSpec{
			Priority: []string{"structure_dimensions", "forces", "stresses"},
		},
		ContextMappings: map[string]map[string][]string{
			"length":   {"auto": {"structure_dimensions", "length"}, "section": {"section_dimensions", "length"}},
			"force":    {"auto": {"forces", "force"}},
			"pressure": {"auto": {"stresses", "stress"}},
			"moment":   {"auto": {"forces", "moment"}},
		},
	}
}

// NewTestStore builds a Store from the fixture documents.
func NewTestStore(t *testing.T) *config.Store {
	t.Helper()
	store, err := config.NewStore(FixtureConversion(), FixturePrefix(), FixtureAliases(), FixtureUnits())
	require.NoError(t, err)
	return store
}

// WriteConfigDir writes the fixture documents as JSON files into a fresh
// temp directory and returns its path.
func WriteConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "conversion.json"), FixtureConversion())
	writeJSON(t, filepath.Join(dir, "prefix.json"), FixturePrefix())
	writeJSON(t, filepath.Join(dir, "aliases.json"), FixtureAliases())
	writeJSON(t, filepath.Join(dir, "units.json"), FixtureUnits())
	return dir
}

func writeJSON(t *testing.T, path string, doc any) {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func intPtr(v int) *int { return &v }
