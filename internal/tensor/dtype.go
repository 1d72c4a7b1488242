// Package tensor provides the core array types for the Loom ML framework:
// shapes, devices, data types and the strided RawTensor view.
package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Elem is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Elem interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 |
		~float32 | ~float64 | float16.Float16
}

// Numeric is the subset of Elem for which Go defines direct numeric
// conversions. Bool and Float16 need explicit adapters.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Float16
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Elem](dummy T) DataType {
	switch any(dummy).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}

// DTypeOf returns the DataType tag matching the element type T.
func DTypeOf[T Elem]() DataType {
	var dummy T
	return inferDataType(dummy)
}

// DTypeVisitor receives the static element type matching a runtime
// DataType tag. Implementations provide one method per supported type;
// VisitDType guarantees exactly one of them is invoked.
//
// Kernels that must resolve two independent dtypes (such as a type cast
// with distinct source and destination types) nest two visits: the outer
// visitor resolves one side into a type parameter of a generic visitor
// struct, which then visits the remaining tag.
type DTypeVisitor interface {
	VisitBool()
	VisitInt8()
	VisitInt16()
	VisitInt32()
	VisitInt64()
	VisitUint8()
	VisitFloat16()
	VisitFloat32()
	VisitFloat64()
}

// VisitDType dispatches dt to the matching method of v.
//
// The enumeration is closed: a tag outside it indicates a defect in the
// caller or the enumeration itself, not a recoverable condition, so an
// unknown tag panics.
func VisitDType(dt DataType, v DTypeVisitor) {
	switch dt {
	case Bool:
		v.VisitBool()
	case Int8:
		v.VisitInt8()
	case Int16:
		v.VisitInt16()
	case Int32:
		v.VisitInt32()
	case Int64:
		v.VisitInt64()
	case Uint8:
		v.VisitUint8()
	case Float16:
		v.VisitFloat16()
	case Float32:
		v.VisitFloat32()
	case Float64:
		v.VisitFloat64()
	default:
		panic(fmt.Sprintf("visit: unknown data type %d", int(dt)))
	}
}
