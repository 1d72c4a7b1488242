package tensor

import (
	"testing"

	"github.com/x448/float16"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Bool, 1},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Float16, 2},
		{Float32, 4},
		{Float64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		name  string
	}{
		{Bool, "bool"},
		{Int8, "int8"},
		{Int16, "int16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
		{Float16, "float16"},
		{Float32, "float32"},
		{Float64, "float64"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestDataTypeSizeUnknownPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Size() on unknown data type should panic")
		}
	}()
	_ = DataType(99).Size()
}

func TestDTypeOf(t *testing.T) {
	if got := DTypeOf[bool](); got != Bool {
		t.Errorf("DTypeOf[bool] = %v, want Bool", got)
	}
	if got := DTypeOf[int8](); got != Int8 {
		t.Errorf("DTypeOf[int8] = %v, want Int8", got)
	}
	if got := DTypeOf[float16.Float16](); got != Float16 {
		t.Errorf("DTypeOf[float16.Float16] = %v, want Float16", got)
	}
	if got := DTypeOf[float64](); got != Float64 {
		t.Errorf("DTypeOf[float64] = %v, want Float64", got)
	}
}

// recordingVisitor records which dtype method was invoked.
type recordingVisitor struct {
	visited DataType
	calls   int
}

func (v *recordingVisitor) record(dt DataType) { v.visited = dt; v.calls++ }

func (v *recordingVisitor) VisitBool()    { v.record(Bool) }
func (v *recordingVisitor) VisitInt8()    { v.record(Int8) }
func (v *recordingVisitor) VisitInt16()   { v.record(Int16) }
func (v *recordingVisitor) VisitInt32()   { v.record(Int32) }
func (v *recordingVisitor) VisitInt64()   { v.record(Int64) }
func (v *recordingVisitor) VisitUint8()   { v.record(Uint8) }
func (v *recordingVisitor) VisitFloat16() { v.record(Float16) }
func (v *recordingVisitor) VisitFloat32() { v.record(Float32) }
func (v *recordingVisitor) VisitFloat64() { v.record(Float64) }

func TestVisitDTypeCoversEveryTag(t *testing.T) {
	tags := []DataType{Bool, Int8, Int16, Int32, Int64, Uint8, Float16, Float32, Float64}

	for _, dt := range tags {
		v := &recordingVisitor{visited: -1}
		VisitDType(dt, v)
		if v.calls != 1 {
			t.Errorf("VisitDType(%v) made %d calls, want exactly 1", dt, v.calls)
		}
		if v.visited != dt {
			t.Errorf("VisitDType(%v) dispatched to %v", dt, v.visited)
		}
	}
}

func TestVisitDTypeUnknownTagPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("VisitDType with a tag outside the enumeration should panic")
		}
	}()
	VisitDType(DataType(99), &recordingVisitor{})
}
