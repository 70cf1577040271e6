// Copyright 2025 Gradia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := autograd.Zeros(tensor.Shape{2, 3}, tensor.Float32, backend)
package cpu

import (
	internalcpu "github.com/gradia-ml/gradia/internal/backend/cpu"
	"github.com/gradia-ml/gradia/tensor"
)

// Backend is the CPU backend implementation. Matrix multiplication is
// backed by BLAS; everything else is plain Go.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend.
func New() *Backend {
	return internalcpu.New()
}
