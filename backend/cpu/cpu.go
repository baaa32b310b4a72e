// Copyright 2026 Graphene ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/graphene-ml/graphene/internal/backend/cpu"
	"github.com/graphene-ml/graphene/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations
// with chunked goroutine parallelism for large kernels.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/graphene-ml/graphene/backend/cpu"
//	    "github.com/graphene-ml/graphene/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend with parallelism disabled.
// Useful for deterministic profiling and debugging.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
