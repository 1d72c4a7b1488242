package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/elementwise"
	"github.com/loom-ml/loom/internal/tensor"
)

// addOp is the native Add kernel: out = a + b element-wise, same dtype
// throughout. Type promotion happens in the layers above, not here.
type addOp struct{}

func (addOp) Call(a, b, out *tensor.RawTensor) error {
	if err := tensor.CheckDevicesCompatible(a, b, out); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if a.DType() != b.DType() || a.DType() != out.DType() {
		return fmt.Errorf("add: %w: %s, %s -> %s", tensor.ErrDTypeMismatch, a.DType(), b.DType(), out.DType())
	}
	if a.DType() == tensor.Bool {
		return fmt.Errorf("add: %w: not defined for %s", tensor.ErrDTypeMismatch, tensor.Bool)
	}
	tensor.VisitDType(a.DType(), addVisitor{a: a, b: b, out: out})
	return nil
}

func addAs[T tensor.Numeric](a, b, out *tensor.RawTensor) {
	elementwise.Binary(func(_ int, x, y T, out *T) { *out = x + y }, a, b, out)
}

// addVisitor instantiates the sum kernel for the resolved dtype.
type addVisitor struct {
	a, b, out *tensor.RawTensor
}

// Bool is rejected in Call before dispatch.
func (v addVisitor) VisitBool() {
	panic("add: bool dispatch is unreachable")
}
func (v addVisitor) VisitInt8()  { addAs[int8](v.a, v.b, v.out) }
func (v addVisitor) VisitInt16() { addAs[int16](v.a, v.b, v.out) }
func (v addVisitor) VisitInt32() { addAs[int32](v.a, v.b, v.out) }
func (v addVisitor) VisitInt64() { addAs[int64](v.a, v.b, v.out) }
func (v addVisitor) VisitUint8() { addAs[uint8](v.a, v.b, v.out) }
func (v addVisitor) VisitFloat16() {
	elementwise.Binary(func(_ int, x, y float16.Float16, out *float16.Float16) {
		*out = float16.Fromfloat32(x.Float32() + y.Float32())
	}, v.a, v.b, v.out)
}
func (v addVisitor) VisitFloat32() { addAs[float32](v.a, v.b, v.out) }
func (v addVisitor) VisitFloat64() { addAs[float64](v.a, v.b, v.out) }
