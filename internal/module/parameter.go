package module

import "fmt"

// GradientTrackable is implemented by values that can be marked for
// gradient tracking by the autodiff layer.
//
// A Parameter enables tracking on every GradientTrackable value it wraps and
// hands its own name down to the value, so that graph diagnostics show
// "linear.weight" instead of an anonymous node.
type GradientTrackable interface {
	// SetRequiresGrad toggles gradient tracking for the value.
	SetRequiresGrad(requires bool)

	// SetName labels the value.
	SetName(name string)
}

// Parameter is a named, mutable cell holding a trainable value.
//
// It is designed to hold a gradient-tracked value (see GradientTrackable),
// but any value is accepted so that registries can be exercised with plain
// numbers in tests.
//
// Example:
//
//	p := module.NewParameter(scalar.New(0.5), "weight")
//	p.Update(scalar.New(0.7)) // tracking is re-enabled, name kept
type Parameter struct {
	value any
	name  string // Empty when the parameter is unnamed
}

// NewParameter wraps value in a new Parameter.
//
// If value implements GradientTrackable, tracking is enabled on it and, when
// name is not empty, the name is propagated to it.
func NewParameter(value any, name string) *Parameter {
	p := &Parameter{name: name}
	p.Update(value)
	return p
}

// Update replaces the wrapped value.
//
// The name is left unchanged; the tracking rule of NewParameter is applied to
// the new value.
func (p *Parameter) Update(value any) {
	p.value = value
	if tv, ok := value.(GradientTrackable); ok {
		tv.SetRequiresGrad(true)
		if p.name != "" {
			tv.SetName(p.name)
		}
	}
}

// Value returns the wrapped value.
func (p *Parameter) Value() any {
	return p.value
}

// Name returns the parameter name, or "" if the parameter is unnamed.
func (p *Parameter) Name() string {
	return p.name
}

// String formats the wrapped value.
func (p *Parameter) String() string {
	return fmt.Sprint(p.value)
}

// GoString formats the wrapped value with Go syntax.
func (p *Parameter) GoString() string {
	return fmt.Sprintf("%#v", p.value)
}
