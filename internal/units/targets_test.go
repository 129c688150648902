package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docunits/internal/config"
	"docunits/internal/shared/testutil"
	"docunits/internal/units"
)

func TestResolveTargets(t *testing.T) {
	engine, _ := newTestEngine(t)

	columns := map[string]units.ColumnMapping{
		"Span":   {Category: "structure_dimensions", Subcategory: "length"},
		"Web":    {Category: "section_dimensions", Subcategory: "length"},
		"Load":   {Category: "forces", Subcategory: "force"},
		"Owner":  {Category: "unknown", Subcategory: "length"},
		"Area":   {Category: "bogus", Subcategory: "area"},
		"NoSub":  {Category: "forces"},
		"Orphan": {Category: "unknown", Subcategory: "missing"},
	}

	res := engine.ResolveTargets(columns)

	require.Len(t, res.Targets, 5)
	assert.Equal(t, units.Target{Unit: "m", Precision: 2}, res.Targets["Span"])
	assert.Equal(t, units.Target{Unit: "mm", Precision: 1}, res.Targets["Web"])
	assert.Equal(t, units.Target{Unit: "kN", Precision: 2}, res.Targets["Load"])
	// Unknown categories fall back to the priority search over subcategories.
	assert.Equal(t, units.Target{Unit: "m", Precision: 2}, res.Targets["Owner"])
	assert.Equal(t, units.Target{Unit: "cm^2", Precision: 2}, res.Targets["Area"])

	require.Len(t, res.Skipped, 2)
	assert.Contains(t, res.Skipped["NoSub"], "no subcategory")
	assert.Contains(t, res.Skipped["Orphan"], "no category defines the subcategory")
}

func TestResolveTargets_PriorityDisambiguation(t *testing.T) {
	// The subcategory "length" exists in both structure_dimensions and
	// section_dimensions; the configured priority decides the owner.
	build := func(priority []string) *units.Engine {
		docs := testutil.FixtureUnits()
		docs.Selector.Priority = priority
		store, err := config.NewStore(testutil.FixtureConversion(), testutil.FixturePrefix(), testutil.FixtureAliases(), docs)
		require.NoError(t, err)
		return units.NewEngine(store, nil)
	}

	columns := map[string]units.ColumnMapping{
		"Length": {Category: "unknown", Subcategory: "length"},
	}

	structureFirst := build([]string{"structure_dimensions", "section_dimensions"})
	res := structureFirst.ResolveTargets(columns)
	assert.Equal(t, "m", res.Targets["Length"].Unit)

	sectionFirst := build([]string{"section_dimensions", "structure_dimensions"})
	res = sectionFirst.ResolveTargets(columns)
	assert.Equal(t, "mm", res.Targets["Length"].Unit)
}

func TestResolveTargets_DefaultPriority(t *testing.T) {
	docs := testutil.FixtureUnits()
	docs.Selector.Priority = nil
	store, err := config.NewStore(testutil.FixtureConversion(), testutil.FixturePrefix(), testutil.FixtureAliases(), docs)
	require.NoError(t, err)
	engine := units.NewEngine(store, nil)

	res := engine.ResolveTargets(map[string]units.ColumnMapping{
		"Length": {Subcategory: "length"},
	})
	// Without a configured list structure_dimensions still wins.
	assert.Equal(t, "m", res.Targets["Length"].Unit)
}

func TestTargetForUnit(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name    string
		unit    string
		context units.Context
		want    units.Target
		wantErr bool
	}{
		{name: "force to preferred", unit: "N", context: units.ContextAuto, want: units.Target{Unit: "kN", Precision: 2}},
		{name: "length auto is structure scale", unit: "mm", context: units.ContextAuto, want: units.Target{Unit: "m", Precision: 2}},
		{name: "length section context", unit: "mm", context: "section", want: units.Target{Unit: "mm", Precision: 1}},
		{name: "moment", unit: "kgf-cm", context: units.ContextAuto, want: units.Target{Unit: "N-m", Precision: 3}},
		{name: "pressure", unit: "psi", context: units.ContextAuto, want: units.Target{Unit: "MPa", Precision: 1}},
		{name: "alias source", unit: "meter", context: units.ContextAuto, want: units.Target{Unit: "m", Precision: 2}},
		{name: "unknown unit", unit: "zzz", context: units.ContextAuto, wantErr: true},
		{name: "category without mapping", unit: "Hz", context: units.ContextAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.TargetForUnit(tt.unit, tt.context)
			if tt.wantErr {
				require.Error(t, err)
				var noTarget *units.NoTargetError
				assert.ErrorAs(t, err, &noTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
