// Copyright 2025 Gradia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based parameter optimizers.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
//
//	for range epochs {
//	    loss := step(model, batch)
//	    if err := loss.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/gradia-ml/gradia/internal/autograd"
	"github.com/gradia-ml/gradia/internal/optim"
)

// Optimizer updates registered parameters from their accumulated gradients.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures an SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer. Registration resolves each parameter's
// unset gradient requirement to trainable.
func NewSGD(params []*autograd.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam is the Adam optimizer (Kingma & Ba, 2014).
type Adam = optim.Adam

// AdamConfig configures an Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer. Registration resolves each parameter's
// unset gradient requirement to trainable.
func NewAdam(params []*autograd.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
