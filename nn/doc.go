// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the module tree and the layers built on it.
//
// # Overview
//
// This package contains:
//   - Base: Embeddable registry of parameters and child modules
//   - Parameter: Named, mutable container for a trainable value
//   - Layers: Linear, ReLU, Sigmoid, Tanh, Sequential
//   - Utilities: Call, Repr, Walk, ParameterMap
//
// # Custom Modules
//
// Embed Base, register parameters and children, and override Forward:
//
//	type Affine struct {
//	    nn.Base
//	    scale *nn.Parameter
//	}
//
//	func NewAffine() *Affine {
//	    a := &Affine{}
//	    a.scale = a.AddParameter("scale", scalar.New(1))
//	    return a
//	}
//
//	func (a *Affine) Forward(inputs ...any) (any, error) { ... }
//
// A module that does not override Forward fails with ErrNotImplemented.
//
// # Sequential Models
//
// Build models by composing layers:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8),
//	    nn.NewReLU(),
//	    nn.NewLinear(8, 1),
//	)
//
//	out, err := nn.Call(model, []float64{0.5, -1})
//
// # Parameter Management
//
// Parameters of the whole tree are named by their dotted path:
//
//	for _, np := range model.NamedParameters() {
//	    fmt.Println(np.Name, np.Parameter) // "0.weight_0_0 Scalar(0.31)"
//	}
//
// # Training Mode
//
// Train and Eval switch the module they are called on and every
// descendant:
//
//	model.Eval()
//	model.Module(0).(*nn.Linear).Training() // false
//
// # Printing
//
//	fmt.Println(nn.Repr(model))
//	// Sequential(
//	//   (0): Linear(in_features=2, out_features=8)
//	//   (1): ReLU()
//	//   (2): Linear(in_features=8, out_features=1)
//	// )
package nn
