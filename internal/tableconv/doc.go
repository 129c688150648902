// Package tableconv converts the unit-bearing columns of tabular data.
//
// A column header such as "Moment (kgfcm)" carries its unit inside a
// configured delimiter pair. The package extracts that unit, selects a
// destination unit through the engine's target tables, converts every
// numeric cell of the column and rewrites the header with the new unit.
//
// # Components
//
//   - extract.go: header unit extraction and concatenated-spelling repair
//   - table.go: in-memory table conversion with per-run bookkeeping
//   - sheet.go: xlsx worksheets read and written through excelize
//
// Each conversion run carries a generated run ID so the structured log
// lines of one table can be correlated.
package tableconv
