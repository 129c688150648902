package tableconv

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"docunits/internal/units"
)

// ConvertSheet reads one worksheet of an xlsx workbook, converts its
// unit-bearing columns and saves the workbook back to the same path. The
// first row is treated as the header row.
func (c *Converter) ConvertSheet(path, sheet string, ctx units.Context) (Run, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Run{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Run{Converted: map[string]string{}, Skipped: map[string]string{}}, nil
	}

	table := &Table{Headers: rows[0], Rows: rows[1:]}
	run := c.ConvertTable(table, ctx)

	if err := f.SetSheetRow(sheet, "A1", &table.Headers); err != nil {
		return run, fmt.Errorf("write header row: %w", err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return run, fmt.Errorf("cell name for row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return run, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Save(); err != nil {
		return run, fmt.Errorf("save workbook %s: %w", path, err)
	}
	c.logger.Info("worksheet converted",
		slog.String("run_id", run.ID),
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("columns", len(run.Converted)))
	return run, nil
}
