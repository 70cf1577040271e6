// Copyright 2025 Gradia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of the
// autograd engine.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8, backend),
//	    nn.NewTanh(),
//	    nn.NewLinear(8, 1, backend),
//	)
//	out := model.Forward(input)
package nn

import (
	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/nn"
	"github.com/gradia-ml/gradia/tensor"
)

// Module is the base interface for all network components.
type Module = nn.Module

// Linear is a fully connected layer: y = x @ W + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with bias.
func NewLinear(in, out int, b tensor.Backend) *Linear {
	return nn.NewLinear(in, out, b)
}

// NewLinearNoBias creates a Linear layer without a bias term.
func NewLinearNoBias(in, out int, b tensor.Backend) *Linear {
	return nn.NewLinearNoBias(in, out, b)
}

// Activations.

// ReLU applies max(0, x) element-wise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies the logistic function element-wise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies the hyperbolic tangent element-wise.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return nn.NewTanh() }

// LogSoftmax applies log(softmax(x)) along a fixed axis.
type LogSoftmax = nn.LogSoftmax

// NewLogSoftmax creates a LogSoftmax over the given axis.
func NewLogSoftmax(dim int) *LogSoftmax { return nn.NewLogSoftmax(dim) }

// Sequential chains modules, feeding each output into the next input.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container over the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Loss functions.

// MSELoss computes mean((pred - target)^2) as a rank-0 Value.
func MSELoss(pred, target *autograd.Value) *autograd.Value {
	return nn.MSELoss(pred, target)
}

// CrossEntropyLoss computes categorical cross entropy between logits and
// one-hot targets, averaged over the batch.
func CrossEntropyLoss(logits, target *autograd.Value) *autograd.Value {
	return nn.CrossEntropyLoss(logits, target)
}

// SparseCrossEntropyLoss is CrossEntropyLoss with targets given as class
// indices, one per batch row.
func SparseCrossEntropyLoss(logits *autograd.Value, classes []int) (*autograd.Value, error) {
	return nn.SparseCrossEntropyLoss(logits, classes)
}

// Initializers.

// Xavier returns a Glorot-uniform initialized leaf Value.
func Xavier(fanIn, fanOut int, shape tensor.Shape, b tensor.Backend) *autograd.Value {
	return nn.Xavier(fanIn, fanOut, shape, b)
}

// HeNormal returns an N(0, sqrt(2/fanIn)) initialized leaf Value.
func HeNormal(fanIn int, shape tensor.Shape, b tensor.Backend) *autograd.Value {
	return nn.HeNormal(fanIn, shape, b)
}

// Randn returns a standard-normal initialized leaf Value.
func Randn(shape tensor.Shape, b tensor.Backend) *autograd.Value {
	return nn.Randn(shape, b)
}

// SeedInit fixes the random source used for subsequent initializations.
func SeedInit(seed uint64) { nn.SeedInit(seed) }
