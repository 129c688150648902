package units

import "fmt"

// UnresolvedUnitError reports that no category, prefix, composite or power
// path connects the two units. It is returned, never panicked, and is
// surfaced to end users as a "conversion not supported" message.
type UnresolvedUnitError struct {
	From string
	To   string
}

func (e *UnresolvedUnitError) Error() string {
	return fmt.Sprintf("conversion not supported from %q to %q", e.From, e.To)
}

// IncompatibleCompositeError reports that both units parse as composites
// but with different operation variants (division vs product).
type IncompatibleCompositeError struct {
	From string
	To   string
}

func (e *IncompatibleCompositeError) Error() string {
	return fmt.Sprintf("incompatible composite units %q and %q", e.From, e.To)
}

// MalformedComponentError reports a composite sub-part that failed to
// resolve recursively.
type MalformedComponentError struct {
	Component string
	Err       error
}

func (e *MalformedComponentError) Error() string {
	return fmt.Sprintf("composite component %q failed to resolve: %v", e.Component, e.Err)
}

func (e *MalformedComponentError) Unwrap() error {
	return e.Err
}

// NoTargetError reports that target-unit selection could not pick a
// destination unit for a source unit or column mapping. Batch conversion
// records it as a skip reason; it never aborts a batch.
type NoTargetError struct {
	Unit   string
	Reason string
}

func (e *NoTargetError) Error() string {
	return fmt.Sprintf("no target unit for %q: %s", e.Unit, e.Reason)
}
