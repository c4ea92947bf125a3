// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/minitorch/internal/module"
)

// Module is the interface of every node in a module tree.
//
// Implementations embed Base and define Forward.
type Module = module.Module

// Base holds the parameters, children and plain fields of a module.
type Base = module.Base

// Parameter is a named, mutable container for a trainable value.
type Parameter = module.Parameter

// GradientTrackable is implemented by values a Parameter can mark for
// gradient tracking.
type GradientTrackable = module.GradientTrackable

// NamedParameter pairs a parameter with its dotted path.
type NamedParameter = module.NamedParameter

// NamedModule pairs a child module with its local name.
type NamedModule = module.NamedModule

var (
	// ErrNotImplemented is returned by Forward of modules that do not define it.
	ErrNotImplemented = module.ErrNotImplemented

	// ErrAttributeNotFound is returned by Base.Attr for unknown names.
	ErrAttributeNotFound = module.ErrAttributeNotFound
)

// NewBase creates an empty module in training mode.
func NewBase() *Base {
	return module.NewBase()
}

// NewParameter wraps value in a new parameter.
//
// GradientTrackable values get tracking enabled and, if name is not empty,
// are labelled with name.
func NewParameter(value any, name string) *Parameter {
	return module.NewParameter(value, name)
}

// Call invokes m.Forward with inputs.
func Call(m Module, inputs ...any) (any, error) {
	return module.Call(m, inputs...)
}

// Repr returns the nested text representation of m.
func Repr(m Module) string {
	return module.Repr(m)
}

// Walk visits m and its descendants in pre-order with their dotted paths.
func Walk(m Module, fn func(path string, m Module) error) error {
	return module.Walk(m, fn)
}

// ParameterMap returns the parameters of m keyed by dotted path.
func ParameterMap(m Module) map[string]*Parameter {
	return module.ParameterMap(m)
}
