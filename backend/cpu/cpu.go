// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the native CPU backend.
package cpu

import (
	internalcpu "github.com/loom-ml/loom/internal/backend/cpu"
)

// Backend represents the native CPU backend implementation.
//
// Its element-wise kernels are built on a generic execution engine that
// iterates arbitrary-rank strided views, and are registered into the
// shared operation registry under the CPU device.
type Backend = internalcpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}

// RegisterDefaults registers the native implementation of every
// operation kind the CPU backend supports. Call it during program
// initialization, before any operation lookup. Repeated calls are
// no-ops.
func RegisterDefaults() {
	internalcpu.RegisterDefaults()
}
