// Package module implements the module/parameter registry of minitorch.
//
// Modules form a tree: every module owns named parameters and named child
// modules. The tree supports:
//   - Recursive parameter enumeration with dotted names ("encoder.weight")
//   - Train/eval mode propagation from any node down to its descendants
//   - A nested text representation for debugging
//
// Concrete modules embed Base and override Forward:
//
//	type Affine struct {
//	    module.Base
//	}
//
//	func NewAffine() *Affine {
//	    a := &Affine{}
//	    a.AddParameter("scale", scalar.New(1))
//	    a.AddParameter("shift", scalar.New(0))
//	    return a
//	}
//
//	func (a *Affine) Forward(inputs ...any) (any, error) { ... }
package module

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotImplemented is returned by Forward when a module does not override it.
	ErrNotImplemented = errors.New("forward not implemented")

	// ErrAttributeNotFound is returned by Attr when a name is neither a plain
	// field, a parameter nor a child module.
	ErrAttributeNotFound = errors.New("attribute not found")
)

// Module is a node in a module tree.
//
// Implementations embed Base, which provides the registry, and define Forward.
// The unexported core method can only be satisfied by embedding Base.
type Module interface {
	// Forward computes the output of the module for the given inputs.
	Forward(inputs ...any) (any, error)

	core() *Base
}

// NamedParameter pairs a parameter with its dotted path.
type NamedParameter struct {
	Name      string
	Parameter *Parameter
}

// NamedModule pairs a child module with its local name.
type NamedModule struct {
	Name   string
	Module Module
}

// Base holds the parameters, children and plain fields of a module.
//
// The zero value is an empty module in training mode.
//
// A name belongs to at most one storage class at a time: registering it as a
// parameter, a child or a plain field removes it from the other two.
type Base struct {
	params   registry[*Parameter]
	children registry[Module]
	fields   map[string]any
	eval     bool // Zero value means training mode
}

// NewBase creates an empty module in training mode.
//
// A bare Base is itself a Module whose Forward always fails; it is useful
// as a plain container.
func NewBase() *Base {
	return &Base{}
}

func (b *Base) core() *Base {
	return b
}

// Forward returns ErrNotImplemented. Embedding types override it.
func (b *Base) Forward(_ ...any) (any, error) {
	return nil, ErrNotImplemented
}

// Training reports whether the module is in training mode.
func (b *Base) Training() bool {
	return !b.eval
}

// Train puts this module and all its descendants into training mode.
func (b *Base) Train() {
	b.setMode(false)
}

// Eval puts this module and all its descendants into evaluation mode.
func (b *Base) Eval() {
	b.setMode(true)
}

// setMode sets the mode on b first, then on each child in order.
func (b *Base) setMode(eval bool) {
	b.eval = eval
	for _, name := range b.children.keys {
		b.children.items[name].core().setMode(eval)
	}
}

// Modules returns the direct child modules in registration order.
func (b *Base) Modules() []Module {
	mods := make([]Module, 0, b.children.size())
	for _, name := range b.children.keys {
		mods = append(mods, b.children.items[name])
	}
	return mods
}

// NamedChildren returns the direct child modules with their local names.
func (b *Base) NamedChildren() []NamedModule {
	named := make([]NamedModule, 0, b.children.size())
	for _, name := range b.children.keys {
		named = append(named, NamedModule{Name: name, Module: b.children.items[name]})
	}
	return named
}

// NamedParameters returns every parameter of this module and its descendants.
//
// Own parameters come first in registration order, followed by each child's
// parameters (recursively) in child registration order. A descendant's
// parameter is named by the chain of child names joined with ".", e.g.
// "encoder.proj.weight".
//
// If two paths flatten to the same name (a local parameter literally named
// "a.p" next to child "a" holding "p"), the later one in enumeration order
// wins and takes the position of the first.
func (b *Base) NamedParameters() []NamedParameter {
	var flat registry[*Parameter]
	b.collectParameters("", &flat)

	named := make([]NamedParameter, 0, flat.size())
	for _, name := range flat.keys {
		named = append(named, NamedParameter{Name: name, Parameter: flat.items[name]})
	}
	return named
}

func (b *Base) collectParameters(prefix string, flat *registry[*Parameter]) {
	for _, name := range b.params.keys {
		flat.set(prefix+name, b.params.items[name])
	}
	for _, name := range b.children.keys {
		b.children.items[name].core().collectParameters(prefix+name+".", flat)
	}
}

// Parameters returns the parameters of NamedParameters without their names.
func (b *Base) Parameters() []*Parameter {
	named := b.NamedParameters()
	params := make([]*Parameter, len(named))
	for i, np := range named {
		params[i] = np.Parameter
	}
	return params
}

// AddParameter wraps value in a new Parameter named name and registers it.
//
// An existing entry under name is replaced. Returns the new parameter.
func (b *Base) AddParameter(name string, value any) *Parameter {
	p := NewParameter(value, name)
	b.RegisterParameter(name, p)
	return p
}

// RegisterParameter stores p under name, replacing any parameter, child or
// plain field of the same name.
//
// Panics if p is nil.
func (b *Base) RegisterParameter(name string, p *Parameter) {
	if p == nil {
		panic(fmt.Sprintf("module.RegisterParameter: nil parameter %q", name))
	}
	b.children.remove(name)
	delete(b.fields, name)
	b.params.set(name, p)
}

// AddModule stores m as a child under name, replacing any parameter, child
// or plain field of the same name.
//
// Panics if m is nil.
func (b *Base) AddModule(name string, m Module) {
	if isNil(m) {
		panic(fmt.Sprintf("module.AddModule: nil module %q", name))
	}
	b.params.remove(name)
	delete(b.fields, name)
	b.children.set(name, m)
}

// Parameter returns the local parameter registered under name.
func (b *Base) Parameter(name string) (*Parameter, bool) {
	return b.params.get(name)
}

// Child returns the direct child registered under name.
func (b *Base) Child(name string) (Module, bool) {
	return b.children.get(name)
}

// SetAttr assigns value to name, routing it by type:
//   - *Parameter values are registered as parameters
//   - Module values are registered as children
//   - anything else, including nil parameters and modules, is stored as a
//     plain field
//
// Reassigning a name with a value of another kind moves it to the new
// storage class.
func (b *Base) SetAttr(name string, value any) {
	switch v := value.(type) {
	case *Parameter:
		if v != nil {
			b.RegisterParameter(name, v)
			return
		}
	case Module:
		if !isNil(v) {
			b.AddModule(name, v)
			return
		}
	}

	b.params.remove(name)
	b.children.remove(name)
	if b.fields == nil {
		b.fields = make(map[string]any)
	}
	b.fields[name] = value
}

// Attr looks name up as a plain field, then as a parameter, then as a child.
//
// Parameters and children are returned as *Parameter and Module, not
// unwrapped. Returns an error wrapping ErrAttributeNotFound if name is
// unknown.
func (b *Base) Attr(name string) (any, error) {
	if v, ok := b.fields[name]; ok {
		return v, nil
	}
	if p, ok := b.params.get(name); ok {
		return p, nil
	}
	if m, ok := b.children.get(name); ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
}

// DeleteAttr removes name from whichever storage class holds it.
func (b *Base) DeleteAttr(name string) {
	b.params.remove(name)
	b.children.remove(name)
	delete(b.fields, name)
}

// isNil reports whether m is nil or a nil pointer.
func isNil(m Module) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Call invokes m.Forward with inputs.
func Call(m Module, inputs ...any) (any, error) {
	return m.Forward(inputs...)
}
