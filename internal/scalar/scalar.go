// Package scalar provides Scalar, a single float64 value carrying the
// gradient-tracking flag and name that parameters propagate to their values.
//
// Scalar does no differentiation itself; it is the smallest value the
// module registry can mark as trainable.
package scalar

import "fmt"

// Scalar is a named float64 with a requires-grad flag.
//
// Example:
//
//	s := scalar.New(0.5)
//	p := module.NewParameter(s, "bias")
//	s.RequiresGrad() // true
//	s.Name()         // "bias"
type Scalar struct {
	value        float64
	name         string
	requiresGrad bool
}

// New creates an unnamed scalar that does not require gradients.
func New(v float64) *Scalar {
	return &Scalar{value: v}
}

// Value returns the scalar value.
func (s *Scalar) Value() float64 {
	return s.value
}

// SetValue replaces the scalar value.
func (s *Scalar) SetValue(v float64) {
	s.value = v
}

// Name returns the label of the scalar.
func (s *Scalar) Name() string {
	return s.name
}

// SetName labels the scalar.
func (s *Scalar) SetName(name string) {
	s.name = name
}

// RequiresGrad reports whether the scalar is tracked for gradients.
func (s *Scalar) RequiresGrad() bool {
	return s.requiresGrad
}

// SetRequiresGrad sets whether the scalar is tracked for gradients.
func (s *Scalar) SetRequiresGrad(requires bool) {
	s.requiresGrad = requires
}

// String returns e.g. "Scalar(0.5)".
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%g)", s.value)
}

// GoString includes the name and tracking flag.
func (s *Scalar) GoString() string {
	return fmt.Sprintf("Scalar{value: %g, name: %q, requiresGrad: %t}", s.value, s.name, s.requiresGrad)
}
