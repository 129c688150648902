package tableconv

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"docunits/internal/units"
)

// Table is tabular data with a header row and string cells, the shape
// worksheet readers hand back.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Run records the outcome of one table conversion: which columns were
// converted to which unit and which were left alone, with the reason.
type Run struct {
	ID        string
	Converted map[string]string
	Skipped   map[string]string
}

// Converter converts tables in place against a loaded engine.
type Converter struct {
	engine *units.Engine
	logger *slog.Logger
}

// NewConverter creates a table converter. A nil logger falls back to
// slog.Default().
func NewConverter(engine *units.Engine, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{engine: engine, logger: logger}
}

// ConvertTable converts every unit-bearing column of the table in place.
// For each column the unit is extracted from the header, a destination
// unit is selected for the given context and a single column converter is
// resolved; cells then convert one by one. Non-numeric cells and cells
// missing from short rows are left untouched. Columns without a header
// unit, without a selectable target or without a resolvable conversion
// are skipped and the reason recorded; the table itself never fails.
func (c *Converter) ConvertTable(table *Table, ctx units.Context) Run {
	run := Run{
		ID:        uuid.NewString(),
		Converted: make(map[string]string),
		Skipped:   make(map[string]string),
	}
	logger := c.logger.With(slog.String("run_id", run.ID))

	for col, header := range table.Headers {
		hu, ok := ExtractHeaderUnit(c.engine.Store(), header)
		if !ok {
			continue
		}

		target, err := c.engine.TargetForUnit(hu.Unit, ctx)
		if err != nil {
			run.Skipped[header] = err.Error()
			logger.Debug("column skipped",
				slog.String("header", header),
				slog.String("reason", err.Error()))
			continue
		}

		convert, err := c.engine.ColumnConverter(hu.Unit, target.Unit)
		if err != nil {
			run.Skipped[header] = err.Error()
			logger.Warn("column conversion unresolved",
				slog.String("header", header),
				slog.String("from", hu.Unit),
				slog.String("to", target.Unit),
				slog.String("error", err.Error()))
			continue
		}

		cells := 0
		for _, row := range table.Rows {
			if col >= len(row) {
				continue
			}
			value, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				continue
			}
			row[col] = units.FormatWithPrecision(convert(value), target.Precision)
			cells++
		}

		table.Headers[col] = hu.Rewrite(target.Unit)
		run.Converted[header] = target.Unit
		logger.Info("column converted",
			slog.String("header", header),
			slog.String("from", hu.Unit),
			slog.String("to", target.Unit),
			slog.Int("cells", cells))
	}
	return run
}
