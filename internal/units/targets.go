package units

// Context hints which target-unit mapping applies when a conversion
// category maps to several selector categories (structure-scale lengths vs
// section-scale lengths).
type Context string

// ContextAuto is the default context consulted when no hint is given.
const ContextAuto Context = "auto"

// ColumnMapping ties a column to a selector category and subcategory. An
// empty or unknown Category leaves the owning category to be found through
// the priority order.
type ColumnMapping struct {
	Category    string
	Subcategory string
}

// Target is a selected destination unit together with the decimal
// precision converted cells are formatted with.
type Target struct {
	Unit      string
	Precision int
}

// TargetResolution is the outcome of target selection over a set of
// columns. Columns that cannot be resolved are skipped with a recorded
// reason; selection never fails as a whole.
type TargetResolution struct {
	Targets map[string]Target
	Skipped map[string]string
}

// defaultPriority is the category precedence used when the configuration
// does not supply selector.priority. It mirrors the order the original
// tables were authored in.
var defaultPriority = []string{
	"structure_dimensions",
	"section_dimensions",
	"forces",
	"stresses",
}

// priorityOrder returns the configured or default priority list followed
// by every remaining units-table category in sorted order, so lookups are
// deterministic on every run.
func (e *Engine) priorityOrder() []string {
	priority := e.store.Units.Selector.Priority
	if len(priority) == 0 {
		priority = defaultPriority
	}
	seen := make(map[string]struct{}, len(priority))
	order := make([]string, 0, len(priority))
	for _, name := range priority {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	for _, name := range e.store.UnitCategoryNames() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	return order
}

// subcategoryOwner finds the highest-priority category defining a
// subcategory.
func (e *Engine) subcategoryOwner(subcategory string) (string, bool) {
	for _, name := range e.priorityOrder() {
		if _, ok := e.store.Candidates(name, subcategory); ok {
			return name, true
		}
	}
	return "", false
}

// ResolveTargets picks the destination unit for each column from the
// configured candidate lists. The first candidate of the owning
// category/subcategory wins, normalized through the alias table. A column
// whose category is unknown or has no candidates is left unconverted and
// the reason recorded; ResolveTargets never returns an error.
func (e *Engine) ResolveTargets(columns map[string]ColumnMapping) TargetResolution {
	res := TargetResolution{
		Targets: make(map[string]Target),
		Skipped: make(map[string]string),
	}
	for column, mapping := range columns {
		target, err := e.targetFor(mapping)
		if err != nil {
			res.Skipped[column] = err.Error()
			continue
		}
		res.Targets[column] = target
	}
	return res
}

// targetFor resolves one column mapping to a target unit.
func (e *Engine) targetFor(mapping ColumnMapping) (Target, error) {
	if mapping.Subcategory == "" {
		return Target{}, &NoTargetError{Unit: mapping.Category, Reason: "no subcategory mapped"}
	}

	category := mapping.Category
	if category == "" || category == "unknown" {
		owner, ok := e.subcategoryOwner(mapping.Subcategory)
		if !ok {
			return Target{}, &NoTargetError{Unit: mapping.Subcategory, Reason: "no category defines the subcategory"}
		}
		category = owner
	} else if _, ok := e.store.Units.Categories[category]; !ok {
		owner, ok := e.subcategoryOwner(mapping.Subcategory)
		if !ok {
			return Target{}, &NoTargetError{Unit: category, Reason: "category not configured"}
		}
		category = owner
	}

	spec, ok := e.store.Candidates(category, mapping.Subcategory)
	if !ok || len(spec.Units) == 0 {
		return Target{}, &NoTargetError{Unit: category + "/" + mapping.Subcategory, Reason: "no candidate units configured"}
	}
	return Target{
		Unit:      e.NormalizeWithAliases(spec.Units[0]),
		Precision: spec.DecimalPlaces(),
	}, nil
}

// TargetForUnit selects the destination unit for a raw source unit: the
// unit's conversion category is detected, mapped through the configured
// context mappings and resolved to the owning candidate list.
func (e *Engine) TargetForUnit(unit string, ctx Context) (Target, error) {
	match := e.DetectCategory(unit)
	if !match.Known {
		return Target{}, &NoTargetError{Unit: unit, Reason: "unit belongs to no configured category"}
	}
	category, subcategory, ok := e.store.ContextMapping(match.Category, string(ctx))
	if !ok {
		return Target{}, &NoTargetError{Unit: unit, Reason: "no context mapping for category " + match.Category}
	}
	return e.targetFor(ColumnMapping{Category: category, Subcategory: subcategory})
}
