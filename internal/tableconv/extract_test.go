package tableconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docunits/internal/shared/testutil"
	"docunits/internal/tableconv"
)

func TestExtractHeaderUnit(t *testing.T) {
	store := testutil.NewTestStore(t)

	tests := []struct {
		name     string
		header   string
		wantBase string
		wantUnit string
		found    bool
	}{
		{name: "parentheses", header: "Span (m)", wantBase: "Span", wantUnit: "m", found: true},
		{name: "brackets", header: "Web [mm]", wantBase: "Web", wantUnit: "mm", found: true},
		{name: "rightmost pair wins", header: "Force (total) (kN)", wantBase: "Force (total)", wantUnit: "kN", found: true},
		{name: "inner whitespace trimmed", header: "Load ( kN )", wantBase: "Load", wantUnit: "kN", found: true},
		{name: "no base label", header: "(MPa)", wantBase: "", wantUnit: "MPa", found: true},
		{name: "concatenated moment repaired", header: "Moment (kgfcm)", wantBase: "Moment", wantUnit: "kgf·cm", found: true},
		{name: "knm repaired", header: "M (kNm)", wantBase: "M", wantUnit: "kN·m", found: true},
		{name: "nm repaired", header: "M (Nm)", wantBase: "M", wantUnit: "N·m", found: true},
		{name: "non-moment unit untouched", header: "Web (mm)", wantBase: "Web", wantUnit: "mm", found: true},
		{name: "no delimiters", header: "Notes"},
		{name: "empty unit", header: "Span ()"},
		{name: "unclosed delimiter", header: "Span (m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tableconv.ExtractHeaderUnit(store, tt.header)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantBase, got.Base)
				assert.Equal(t, tt.wantUnit, got.Unit)
			}
		})
	}
}

func TestHeaderUnit_Rewrite(t *testing.T) {
	store := testutil.NewTestStore(t)

	hu, ok := tableconv.ExtractHeaderUnit(store, "Moment (kgfcm)")
	assert.True(t, ok)
	assert.Equal(t, "Moment (N-m)", hu.Rewrite("N-m"))

	hu, ok = tableconv.ExtractHeaderUnit(store, "Web [mm]")
	assert.True(t, ok)
	assert.Equal(t, "Web [cm]", hu.Rewrite("cm"))

	hu, ok = tableconv.ExtractHeaderUnit(store, "(MPa)")
	assert.True(t, ok)
	assert.Equal(t, "(ksi)", hu.Rewrite("ksi"))
}
