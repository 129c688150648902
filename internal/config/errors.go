package config

import "fmt"

// Table names used in MissingTableError.
const (
	TableConversion = "conversion"
	TablePrefix     = "prefix"
	TableAliases    = "aliases"
	TableUnits      = "units"
)

// MissingTableError reports a mandatory configuration table that is absent
// or empty. It is raised eagerly at load time, never mid-conversion.
type MissingTableError struct {
	Table  string
	Source string
}

func (e *MissingTableError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("configuration table %q is missing or empty", e.Table)
	}
	return fmt.Sprintf("configuration table %q is missing or empty (source %s)", e.Table, e.Source)
}
