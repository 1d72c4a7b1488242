package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/elementwise"
	"github.com/loom-ml/loom/internal/tensor"
)

// copyOp is the native Copy kernel: out = x, element-for-element.
type copyOp struct{}

func (copyOp) Call(in, out *tensor.RawTensor) error {
	if err := tensor.CheckDevicesCompatible(in, out); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if in.DType() != out.DType() {
		return fmt.Errorf("copy: %w: %s vs %s", tensor.ErrDTypeMismatch, in.DType(), out.DType())
	}
	tensor.VisitDType(in.DType(), copyVisitor{in: in, out: out})
	return nil
}

func copyAs[T tensor.Elem](in, out *tensor.RawTensor) {
	elementwise.Unary(func(_ int, x T, out *T) { *out = x }, in, out)
}

// copyVisitor instantiates the identity kernel for the resolved dtype.
type copyVisitor struct {
	in, out *tensor.RawTensor
}

func (v copyVisitor) VisitBool()    { copyAs[bool](v.in, v.out) }
func (v copyVisitor) VisitInt8()    { copyAs[int8](v.in, v.out) }
func (v copyVisitor) VisitInt16()   { copyAs[int16](v.in, v.out) }
func (v copyVisitor) VisitInt32()   { copyAs[int32](v.in, v.out) }
func (v copyVisitor) VisitInt64()   { copyAs[int64](v.in, v.out) }
func (v copyVisitor) VisitUint8()   { copyAs[uint8](v.in, v.out) }
func (v copyVisitor) VisitFloat16() { copyAs[float16.Float16](v.in, v.out) }
func (v copyVisitor) VisitFloat32() { copyAs[float32](v.in, v.out) }
func (v copyVisitor) VisitFloat64() { copyAs[float64](v.in, v.out) }
