// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the core array types for the Loom ML framework.
//
// # Overview
//
// A RawTensor is a strided view over a shared, reference-counted buffer:
// shape, strides, dtype and device describe where each logical element
// lives without owning any computation. Views created by Transpose and
// Expand address the same memory with permuted or zero strides, so
// element-wise kernels iterate them without copying.
//
// # Supported Data Types
//
// The DataType enumeration is closed:
//   - bool
//   - int8, int16, int32, int64, uint8
//   - float16 (github.com/x448/float16 storage), float32, float64
//
// Every tag maps to exactly one static Go type. VisitDType resolves a
// runtime tag to its static type and is the dispatch primitive kernels
// build on; a tag outside the enumeration is a programming defect and
// panics.
//
// # Devices
//
// Arrays are bound to a compute device. CheckDevicesCompatible verifies
// that all operands of an operation share one before any element is
// touched, so a failing operation never leaves partial output.
//
// # Basic Usage
//
//	import (
//	    "github.com/loom-ml/loom/backend/cpu"
//	    "github.com/loom-ml/loom/ops"
//	    "github.com/loom-ml/loom/tensor"
//	)
//
//	func main() {
//	    cpu.RegisterDefaults()
//
//	    x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	    out, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU)
//
//	    astype, _ := ops.Lookup[ops.AsTypeOp](tensor.CPU, ops.AsType)
//	    _ = astype.Call(x, out)
//	}
package tensor
