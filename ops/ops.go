// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops exposes the abstract operation contracts and the
// process-wide (device, operation) registry.
//
// Each backend registers the operations it supports during its explicit
// initialization (e.g. cpu.RegisterDefaults); callers look concrete
// implementations up at call time and detect unsupported combinations
// uniformly through ErrNotImplemented. The registry is written only
// during initialization and read-only afterwards, so lookups are safe
// under concurrency once registration completes.
//
//	cpu.RegisterDefaults()
//	op, err := ops.Lookup[ops.CopyOp](tensor.CPU, ops.Copy)
//	if err != nil {
//	    // Copy is not implemented on this device.
//	}
//	err = op.Call(in, out)
package ops

import (
	"github.com/loom-ml/loom/internal/ops"
	"github.com/loom-ml/loom/tensor"
)

// Kind identifies an operation independent of the device executing it.
type Kind = ops.Kind

// Operation kinds implemented by the native backend.
const (
	Copy   = ops.Copy
	AsType = ops.AsType
	Fill   = ops.Fill
	Add    = ops.Add
)

// Abstract operation contracts; see the internal ops package for the
// per-operation semantics.
type (
	// CopyOp copies in into out element-for-element.
	CopyOp = ops.CopyOp
	// AsTypeOp converts in's elements to out's dtype.
	AsTypeOp = ops.AsTypeOp
	// FillOp sets every element of out to a scalar value.
	FillOp = ops.FillOp
	// AddOp computes out = a + b element-wise.
	AddOp = ops.AddOp
)

// ErrNotImplemented reports an operation kind with no implementation
// registered for the requested device.
var ErrNotImplemented = ops.ErrNotImplemented

// Register binds op as the implementation of kind on device.
// Duplicate registration for the same pair panics.
func Register(device tensor.Device, kind Kind, op any) {
	ops.Register(device, kind, op)
}

// Get returns the implementation of kind registered for device.
func Get(device tensor.Device, kind Kind) (any, error) {
	return ops.Get(device, kind)
}

// Lookup returns the implementation of kind for device asserted to the
// contract type T.
func Lookup[T any](device tensor.Device, kind Kind) (T, error) {
	return ops.Lookup[T](device, kind)
}
