package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/elementwise"
	"github.com/loom-ml/loom/internal/tensor"
)

// fillOp is the native Fill kernel: every element of out becomes value,
// converted to out's dtype.
type fillOp struct{}

func (fillOp) Call(out *tensor.RawTensor, value any) error {
	s, err := scalarOf(value)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	tensor.VisitDType(out.DType(), fillVisitor{out: out, value: s})
	return nil
}

// scalar is a dtype-erased numeric value. Integer payloads stay in int64
// so large values survive until the destination conversion.
type scalar struct {
	f     float64
	i     int64
	isInt bool
}

func (s scalar) float64() float64 {
	if s.isInt {
		return float64(s.i)
	}
	return s.f
}

func (s scalar) nonzero() bool {
	if s.isInt {
		return s.i != 0
	}
	return s.f != 0
}

func scalarOf(v any) (scalar, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return scalar{i: 1, isInt: true}, nil
		}
		return scalar{isInt: true}, nil
	case int:
		return scalar{i: int64(x), isInt: true}, nil
	case int8:
		return scalar{i: int64(x), isInt: true}, nil
	case int16:
		return scalar{i: int64(x), isInt: true}, nil
	case int32:
		return scalar{i: int64(x), isInt: true}, nil
	case int64:
		return scalar{i: x, isInt: true}, nil
	case uint8:
		return scalar{i: int64(x), isInt: true}, nil
	case uint16:
		return scalar{i: int64(x), isInt: true}, nil
	case uint32:
		return scalar{i: int64(x), isInt: true}, nil
	case float16.Float16:
		return scalar{f: float64(x.Float32())}, nil
	case float32:
		return scalar{f: float64(x)}, nil
	case float64:
		return scalar{f: x}, nil
	default:
		return scalar{}, fmt.Errorf("unsupported scalar type %T", v)
	}
}

func fillAs[T tensor.Numeric](out *tensor.RawTensor, s scalar) {
	var val T
	if s.isInt {
		val = T(s.i)
	} else {
		val = T(s.f)
	}
	elementwise.Nullary(func(_ int, out *T) { *out = val }, out)
}

// fillVisitor instantiates the fill kernel for the resolved dtype.
type fillVisitor struct {
	out   *tensor.RawTensor
	value scalar
}

func (v fillVisitor) VisitBool() {
	b := v.value.nonzero()
	elementwise.Nullary(func(_ int, out *bool) { *out = b }, v.out)
}
func (v fillVisitor) VisitInt8()  { fillAs[int8](v.out, v.value) }
func (v fillVisitor) VisitInt16() { fillAs[int16](v.out, v.value) }
func (v fillVisitor) VisitInt32() { fillAs[int32](v.out, v.value) }
func (v fillVisitor) VisitInt64() { fillAs[int64](v.out, v.value) }
func (v fillVisitor) VisitUint8() { fillAs[uint8](v.out, v.value) }
func (v fillVisitor) VisitFloat16() {
	f := float16.Fromfloat32(float32(v.value.float64()))
	elementwise.Nullary(func(_ int, out *float16.Float16) { *out = f }, v.out)
}
func (v fillVisitor) VisitFloat32() { fillAs[float32](v.out, v.value) }
func (v fillVisitor) VisitFloat64() { fillAs[float64](v.out, v.value) }
