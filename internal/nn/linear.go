package nn

import (
	"fmt"

	"github.com/born-ml/minitorch/internal/module"
	"github.com/born-ml/minitorch/internal/scalar"
)

// Linear implements a fully connected (dense) layer over scalars.
//
// Performs the transformation: y[j] = sum_i x[i] * w[i][j] + b[j]
//
// Each weight and bias is its own parameter, registered as "weight_i_j"
// and "bias_j". Weights use Xavier initialization, biases start at zero.
//
// Example:
//
//	layer := nn.NewLinear(2, 3)
//	out, err := module.Call(layer, []float64{1, 2}) // []float64 of length 3
type Linear struct {
	module.Base

	inFeatures  int
	outFeatures int
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//
// Returns a new Linear layer.
func NewLinear(inFeatures, outFeatures int) *Linear {
	l := &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}

	for i := range inFeatures {
		for j := range outFeatures {
			l.AddParameter(weightName(i, j), scalar.New(Xavier(inFeatures, outFeatures)))
		}
	}
	for j := range outFeatures {
		l.AddParameter(biasName(j), scalar.New(0))
	}

	return l
}

// Forward computes the output of the layer for a single []float64 input.
//
// Weights and biases are looked up by name on every call, so parameters
// re-registered on the layer take effect. A missing parameter is an error.
func (l *Linear) Forward(inputs ...any) (any, error) {
	x, err := vectorInput("Linear", inputs)
	if err != nil {
		return nil, err
	}
	if len(x) != l.inFeatures {
		return nil, fmt.Errorf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, len(x))
	}

	out := make([]float64, l.outFeatures)
	for j := range l.outFeatures {
		b, err := l.lookup(biasName(j))
		if err != nil {
			return nil, err
		}
		out[j] = b
		for i := range l.inFeatures {
			w, err := l.lookup(weightName(i, j))
			if err != nil {
				return nil, err
			}
			out[j] += x[i] * w
		}
	}

	return out, nil
}

// Weight returns the parameter connecting input i to output j, or nil if
// it is not registered.
func (l *Linear) Weight(i, j int) *module.Parameter {
	p, _ := l.Parameter(weightName(i, j))
	return p
}

// Bias returns the bias parameter of output j, or nil if it is not
// registered.
func (l *Linear) Bias(j int) *module.Parameter {
	p, _ := l.Parameter(biasName(j))
	return p
}

func (l *Linear) lookup(name string) (float64, error) {
	p, ok := l.Parameter(name)
	if !ok {
		return 0, fmt.Errorf("Linear.Forward: %w: parameter %q", module.ErrAttributeNotFound, name)
	}
	return valueOf(p)
}

func weightName(i, j int) string {
	return fmt.Sprintf("weight_%d_%d", i, j)
}

func biasName(j int) string {
	return fmt.Sprintf("bias_%d", j)
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// ExtraRepr describes the layer dimensions.
func (l *Linear) ExtraRepr() string {
	return fmt.Sprintf("in_features=%d, out_features=%d", l.inFeatures, l.outFeatures)
}

// vectorInput extracts the single []float64 argument of a Forward call.
func vectorInput(layer string, inputs []any) ([]float64, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%s.Forward: expected 1 input, got %d", layer, len(inputs))
	}
	x, ok := inputs[0].([]float64)
	if !ok {
		return nil, fmt.Errorf("%s.Forward: expected []float64 input, got %T", layer, inputs[0])
	}
	return x, nil
}

// valueOf reads a parameter holding a *scalar.Scalar or a float64.
func valueOf(p *module.Parameter) (float64, error) {
	switch v := p.Value().(type) {
	case *scalar.Scalar:
		return v.Value(), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("parameter %q: unsupported value type %T", p.Name(), v)
	}
}
