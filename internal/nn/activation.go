package nn

import (
	"math"

	"github.com/born-ml/minitorch/internal/module"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU()
//	out, _ := module.Call(relu, []float64{-1, 2}) // [0 2]
type ReLU struct {
	module.Base
}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(inputs ...any) (any, error) {
	return elementwise("ReLU", inputs, func(x float64) float64 {
		return math.Max(0, x)
	})
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: f(x) = 1 / (1 + exp(-x))
type Sigmoid struct {
	module.Base
}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies sigmoid activation.
func (s *Sigmoid) Forward(inputs ...any) (any, error) {
	return elementwise("Sigmoid", inputs, func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	})
}

// Tanh is a hyperbolic tangent activation module.
type Tanh struct {
	module.Base
}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh activation.
func (t *Tanh) Forward(inputs ...any) (any, error) {
	return elementwise("Tanh", inputs, math.Tanh)
}

func elementwise(layer string, inputs []any, fn func(float64) float64) (any, error) {
	x, err := vectorInput(layer, inputs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out, nil
}
