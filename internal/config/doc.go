// Package config loads and caches the configuration documents that drive the
// unit conversion engine: the conversion table, the SI prefix table, the unit
// alias table and the target-unit (selector) table.
//
// # Documents
//
// Each table is a plain key/value document, accepted as JSON or YAML:
//
//	conversion.{json,yaml}  categories.<name>.conversions.<base>.<target> = factor
//	                        (optionally offset_<target> = offset for affine pairs)
//	                        unit_delimiters.<name> = [open, close]
//	prefix.{json,yaml}      prefix.multiples.<name>    = {symbol, factor}
//	                        prefix.submultiples.<name> = {symbol, factor}
//	aliases.{json,yaml}     unit_aliases.<category>.<alias> = canonical_unit
//	units.{json,yaml}       categories.<category>.<subcategory> = {units, precision}
//	                        selector.priority = [category, ...]
//	                        context_mappings.<conv_category>.<context> = [category, subcategory]
//
// The conversion, prefix and alias tables are mandatory; loading fails
// eagerly with a MissingTableError when one is absent or empty. The units
// table is optional: without it target-unit selection simply has no
// candidates.
//
// # Lifecycle
//
// Documents are parsed once into an immutable Store. The Cache keeps one
// Store per source directory, populates it under singleflight so concurrent
// first use parses only once, and exposes an explicit Reload instead of any
// process-wide mutable state. Callers hand the Store to the engine at
// construction; nothing in this package is a singleton.
//
// # Environment
//
// Runtime settings come from DOCUNITS_* environment variables (see
// Settings), validated on load.
package config
