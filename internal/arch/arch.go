// Package arch reads architecture files: YAML documents describing a
// sequential stack of layers, and builds the corresponding module tree.
//
// Example file:
//
//	name: xor
//	layers:
//	  - type: linear
//	    in: 2
//	    out: 4
//	  - type: tanh
//	  - type: linear
//	    in: 4
//	    out: 1
//	  - type: sigmoid
package arch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/born-ml/minitorch/internal/logger"
	"github.com/born-ml/minitorch/internal/module"
	"github.com/born-ml/minitorch/internal/nn"
	"gopkg.in/yaml.v3"
)

// Layer types understood by Build.
const (
	TypeLinear     = "linear"
	TypeReLU       = "relu"
	TypeSigmoid    = "sigmoid"
	TypeTanh       = "tanh"
	TypeSequential = "sequential"
)

// ErrUnknownLayer is returned for layer types Build does not know.
var ErrUnknownLayer = errors.New("unknown layer type")

// Spec is a parsed architecture file.
type Spec struct {
	Name   string  `yaml:"name"`
	Layers []Layer `yaml:"layers"`
}

// Layer describes one module of the stack.
//
// In and Out are used by linear layers; Layers by nested sequential blocks.
type Layer struct {
	Type   string  `yaml:"type"`
	In     int     `yaml:"in,omitempty"`
	Out    int     `yaml:"out,omitempty"`
	Layers []Layer `yaml:"layers,omitempty"`
}

// Parse decodes an architecture document. Unknown keys are rejected.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to parse architecture: %w", err)
	}
	if len(spec.Layers) == 0 {
		return nil, errors.New("architecture has no layers")
	}
	return &spec, nil
}

// Load reads and parses the architecture file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read architecture: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Build constructs a Sequential holding one child per layer.
func (s *Spec) Build() (*nn.Sequential, error) {
	log := logger.WithPrefix("arch")
	log.Debug("building architecture", "name", s.Name, "layers", len(s.Layers))
	return buildSequential("", s.Layers)
}

func buildSequential(path string, layers []Layer) (*nn.Sequential, error) {
	seq := nn.NewSequential()
	for i, l := range layers {
		layerPath := fmt.Sprint(i)
		if path != "" {
			layerPath = path + "." + layerPath
		}
		m, err := buildLayer(layerPath, l)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", layerPath, err)
		}
		seq.Add(m)
	}
	return seq, nil
}

func buildLayer(path string, l Layer) (module.Module, error) {
	logger.WithPrefix("arch").Debug("building layer", "path", path, "layer", l.Type)

	switch strings.ToLower(l.Type) {
	case TypeLinear:
		if l.In <= 0 || l.Out <= 0 {
			return nil, fmt.Errorf("linear needs positive in and out, got in=%d out=%d", l.In, l.Out)
		}
		return nn.NewLinear(l.In, l.Out), nil
	case TypeReLU:
		return nn.NewReLU(), nil
	case TypeSigmoid:
		return nn.NewSigmoid(), nil
	case TypeTanh:
		return nn.NewTanh(), nil
	case TypeSequential:
		if len(l.Layers) == 0 {
			return nil, errors.New("sequential needs at least one layer")
		}
		return buildSequential(path, l.Layers)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, l.Type)
	}
}
