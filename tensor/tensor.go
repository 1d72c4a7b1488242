// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Supported data types for tensors.
const (
	Bool    = tensor.Bool
	Int8    = tensor.Int8
	Int16   = tensor.Int16
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Float16 = tensor.Float16
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device represents the compute device a tensor is bound to.
type Device = tensor.Device

// Supported compute devices.
const (
	CPU    = tensor.CPU
	CUDA   = tensor.CUDA
	Vulkan = tensor.Vulkan
	Metal  = tensor.Metal
	WebGPU = tensor.WebGPU
)

// RawTensor is the low-level strided tensor representation.
//
// RawTensor provides:
//   - Shape, dtype and device metadata via Shape(), DType(), Device()
//   - Type-safe zero-copy data access via AsFloat32(), AsInt64(), etc.
//   - Zero-copy views via Transpose() and Expand()
//   - Reference counting via Clone(), Release(), IsUnique()
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// DTypeVisitor receives the static element type matching a runtime
// DataType tag; see VisitDType.
type DTypeVisitor = tensor.DTypeVisitor

// VisitDType resolves a runtime dtype tag to its static element type by
// dispatching to the matching method of v. Panics on a tag outside the
// closed enumeration.
func VisitDType(dt DataType, v DTypeVisitor) {
	tensor.VisitDType(dt, v)
}

// CheckDevicesCompatible verifies that all arrays involved in one
// operation share a compute device.
func CheckDevicesCompatible(arrays ...*RawTensor) error {
	return tensor.CheckDevicesCompatible(arrays...)
}

// Sentinel errors surfaced by operation implementations.
var (
	ErrDeviceMismatch = tensor.ErrDeviceMismatch
	ErrDTypeMismatch  = tensor.ErrDTypeMismatch
)
