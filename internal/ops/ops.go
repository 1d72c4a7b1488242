// Package ops defines the abstract operation contracts shared by all
// compute backends and the process-wide registry that binds a concrete
// implementation to each (device, operation) pair.
package ops

import "github.com/loom-ml/loom/internal/tensor"

// Kind identifies an operation independent of the device executing it.
type Kind int

// Operation kinds implemented by the native backend. Other backends may
// register any subset; callers discover gaps through Get.
const (
	Copy Kind = iota
	AsType
	Fill
	Add
)

// String returns a human-readable operation name.
func (k Kind) String() string {
	switch k {
	case Copy:
		return "Copy"
	case AsType:
		return "AsType"
	case Fill:
		return "Fill"
	case Add:
		return "Add"
	default:
		return "Unknown"
	}
}

// CopyOp copies in into out element-for-element. Both arrays must share
// a dtype and device; out must already be allocated with in's shape.
type CopyOp interface {
	Call(in, out *tensor.RawTensor) error
}

// AsTypeOp converts in's elements to out's dtype with native numeric
// conversion semantics (float→int truncates toward zero, numeric→bool is
// a nonzero test). The caller allocates out; AsType never allocates.
type AsTypeOp interface {
	Call(in, out *tensor.RawTensor) error
}

// FillOp sets every element of out to value, converted to out's dtype.
// value may be any Go bool, integer or floating-point scalar.
type FillOp interface {
	Call(out *tensor.RawTensor, value any) error
}

// AddOp computes out = a + b element-wise. All three arrays must share a
// numeric dtype, device and shape.
type AddOp interface {
	Call(a, b, out *tensor.RawTensor) error
}
