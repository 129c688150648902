package tableconv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docunits/internal/units"
)

func writeWorkbook(t *testing.T, headers []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestConvertSheet(t *testing.T) {
	converter, _ := newTestConverter(t)

	path := writeWorkbook(t,
		[]string{"ID", "Force (N)", "Note"},
		[][]string{
			{"1", "1500", "ok"},
			{"2", "250", "-"},
		},
	)

	run, err := converter.ConvertSheet(path, "Sheet1", units.ContextAuto)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Force (N)": "kN"}, run.Converted)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Force (kN)", "Note"}, rows[0])
	assert.Equal(t, "1.50", rows[1][1])
	assert.Equal(t, "0.25", rows[2][1])
	assert.Equal(t, "ok", rows[1][2])
}

func TestConvertSheet_MissingFile(t *testing.T) {
	converter, _ := newTestConverter(t)

	_, err := converter.ConvertSheet(filepath.Join(t.TempDir(), "absent.xlsx"), "Sheet1", units.ContextAuto)
	assert.Error(t, err)
}

func TestConvertSheet_MissingSheet(t *testing.T) {
	converter, _ := newTestConverter(t)

	path := writeWorkbook(t, []string{"ID"}, nil)

	_, err := converter.ConvertSheet(path, "NoSuchSheet", units.ContextAuto)
	assert.Error(t, err)
}
