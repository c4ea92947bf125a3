package nn

import (
	"fmt"
	"strconv"

	"github.com/born-ml/minitorch/internal/module"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. Modules are
// registered as children named by their position ("0", "1", ...), so their
// parameters enumerate as "0.weight_0_0", "2.bias_1" and so on.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8),
//	    nn.NewReLU(),
//	    nn.NewLinear(8, 1),
//	)
//
//	out, err := module.Call(model, []float64{0.5, -1})
type Sequential struct {
	module.Base

	next int // Index used to name the next added module
}

// NewSequential creates a new Sequential container.
//
// Parameters:
//   - modules: List of modules to chain together
//
// Returns a new Sequential container.
func NewSequential(modules ...module.Module) *Sequential {
	s := &Sequential{}
	for _, m := range modules {
		s.Add(m)
	}
	return s
}

// Forward applies all modules in sequence.
//
// An empty Sequential returns its inputs unchanged (a single input is
// returned as is).
func (s *Sequential) Forward(inputs ...any) (any, error) {
	modules := s.Modules()
	if len(modules) == 0 {
		if len(inputs) == 1 {
			return inputs[0], nil
		}
		return inputs, nil
	}

	output, err := modules[0].Forward(inputs...)
	if err != nil {
		return nil, fmt.Errorf("module 0: %w", err)
	}
	for i, m := range modules[1:] {
		output, err = m.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("module %d: %w", i+1, err)
		}
	}

	return output, nil
}

// Add appends a module to the sequence.
//
// This allows building models incrementally:
//
//	model := nn.NewSequential()
//	model.Add(nn.NewLinear(2, 8))
//	model.Add(nn.NewReLU())
//
// The module is named by the next unused index; names freed with
// DeleteAttr are not reused.
func (s *Sequential) Add(m module.Module) {
	name := strconv.Itoa(s.next)
	for s.taken(name) {
		s.next++
		name = strconv.Itoa(s.next)
	}
	s.next++
	s.AddModule(name, m)
}

func (s *Sequential) taken(name string) bool {
	_, err := s.Attr(name)
	return err == nil
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.NamedChildren())
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) module.Module {
	modules := s.Modules()
	if index < 0 || index >= len(modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return modules[index]
}
