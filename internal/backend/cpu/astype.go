package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/elementwise"
	"github.com/loom-ml/loom/internal/tensor"
)

// asTypeOp is the native AsType kernel: a numeric conversion between two
// independently resolved dtypes. The destination dtype is visited first;
// each destination case re-visits the source dtype with the destination
// type fixed as a type parameter, so one kernel instantiation exists per
// (source, destination) pair actually used.
//
// Conversion semantics are Go's native ones for the concrete pair:
// float→int truncates toward zero, widening preserves values, bool maps
// to 0/1 and numeric→bool is a nonzero test. Float16 converts through
// float32. The caller shapes and allocates out; Call never allocates.
type asTypeOp struct{}

func (asTypeOp) Call(in, out *tensor.RawTensor) error {
	if err := tensor.CheckDevicesCompatible(in, out); err != nil {
		return fmt.Errorf("astype: %w", err)
	}
	tensor.VisitDType(out.DType(), castTo{in: in, out: out})
	return nil
}

// castTo resolves the destination element type.
type castTo struct {
	in, out *tensor.RawTensor
}

func (v castTo) VisitBool()    { tensor.VisitDType(v.in.DType(), castToBool(v)) }
func (v castTo) VisitInt8()    { tensor.VisitDType(v.in.DType(), castFrom[int8](v)) }
func (v castTo) VisitInt16()   { tensor.VisitDType(v.in.DType(), castFrom[int16](v)) }
func (v castTo) VisitInt32()   { tensor.VisitDType(v.in.DType(), castFrom[int32](v)) }
func (v castTo) VisitInt64()   { tensor.VisitDType(v.in.DType(), castFrom[int64](v)) }
func (v castTo) VisitUint8()   { tensor.VisitDType(v.in.DType(), castFrom[uint8](v)) }
func (v castTo) VisitFloat16() { tensor.VisitDType(v.in.DType(), castToFloat16(v)) }
func (v castTo) VisitFloat32() { tensor.VisitDType(v.in.DType(), castFrom[float32](v)) }
func (v castTo) VisitFloat64() { tensor.VisitDType(v.in.DType(), castFrom[float64](v)) }

func castNumeric[In, Out tensor.Numeric](in, out *tensor.RawTensor) {
	elementwise.Unary(func(_ int, x In, out *Out) { *out = Out(x) }, in, out)
}

// castFrom resolves the source dtype for a numeric destination type Out.
type castFrom[Out tensor.Numeric] struct {
	in, out *tensor.RawTensor
}

func (v castFrom[Out]) VisitBool() {
	elementwise.Unary(func(_ int, x bool, out *Out) {
		if x {
			*out = 1
		} else {
			*out = 0
		}
	}, v.in, v.out)
}
func (v castFrom[Out]) VisitInt8()  { castNumeric[int8, Out](v.in, v.out) }
func (v castFrom[Out]) VisitInt16() { castNumeric[int16, Out](v.in, v.out) }
func (v castFrom[Out]) VisitInt32() { castNumeric[int32, Out](v.in, v.out) }
func (v castFrom[Out]) VisitInt64() { castNumeric[int64, Out](v.in, v.out) }
func (v castFrom[Out]) VisitUint8() { castNumeric[uint8, Out](v.in, v.out) }
func (v castFrom[Out]) VisitFloat16() {
	elementwise.Unary(func(_ int, x float16.Float16, out *Out) { *out = Out(x.Float32()) }, v.in, v.out)
}
func (v castFrom[Out]) VisitFloat32() { castNumeric[float32, Out](v.in, v.out) }
func (v castFrom[Out]) VisitFloat64() { castNumeric[float64, Out](v.in, v.out) }

func boolFromNumeric[In tensor.Numeric](in, out *tensor.RawTensor) {
	elementwise.Unary(func(_ int, x In, out *bool) { *out = x != 0 }, in, out)
}

// castToBool resolves the source dtype for a bool destination.
type castToBool struct {
	in, out *tensor.RawTensor
}

func (v castToBool) VisitBool() {
	elementwise.Unary(func(_ int, x bool, out *bool) { *out = x }, v.in, v.out)
}
func (v castToBool) VisitInt8()  { boolFromNumeric[int8](v.in, v.out) }
func (v castToBool) VisitInt16() { boolFromNumeric[int16](v.in, v.out) }
func (v castToBool) VisitInt32() { boolFromNumeric[int32](v.in, v.out) }
func (v castToBool) VisitInt64() { boolFromNumeric[int64](v.in, v.out) }
func (v castToBool) VisitUint8() { boolFromNumeric[uint8](v.in, v.out) }
func (v castToBool) VisitFloat16() {
	elementwise.Unary(func(_ int, x float16.Float16, out *bool) { *out = x.Float32() != 0 }, v.in, v.out)
}
func (v castToBool) VisitFloat32() { boolFromNumeric[float32](v.in, v.out) }
func (v castToBool) VisitFloat64() { boolFromNumeric[float64](v.in, v.out) }

func f16FromNumeric[In tensor.Numeric](in, out *tensor.RawTensor) {
	elementwise.Unary(func(_ int, x In, out *float16.Float16) {
		*out = float16.Fromfloat32(float32(x))
	}, in, out)
}

// castToFloat16 resolves the source dtype for a float16 destination.
type castToFloat16 struct {
	in, out *tensor.RawTensor
}

func (v castToFloat16) VisitBool() {
	one, zero := float16.Fromfloat32(1), float16.Fromfloat32(0)
	elementwise.Unary(func(_ int, x bool, out *float16.Float16) {
		if x {
			*out = one
		} else {
			*out = zero
		}
	}, v.in, v.out)
}
func (v castToFloat16) VisitInt8()  { f16FromNumeric[int8](v.in, v.out) }
func (v castToFloat16) VisitInt16() { f16FromNumeric[int16](v.in, v.out) }
func (v castToFloat16) VisitInt32() { f16FromNumeric[int32](v.in, v.out) }
func (v castToFloat16) VisitInt64() { f16FromNumeric[int64](v.in, v.out) }
func (v castToFloat16) VisitUint8() { f16FromNumeric[uint8](v.in, v.out) }
func (v castToFloat16) VisitFloat16() {
	elementwise.Unary(func(_ int, x float16.Float16, out *float16.Float16) { *out = x }, v.in, v.out)
}
func (v castToFloat16) VisitFloat32() { f16FromNumeric[float32](v.in, v.out) }
func (v castToFloat16) VisitFloat64() { f16FromNumeric[float64](v.in, v.out) }
