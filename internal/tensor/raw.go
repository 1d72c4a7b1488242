package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/x448/float16"
)

// Device represents the compute device a tensor is bound to.
// Device identity doubles as the backend kind used for operation lookup.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer.
// Views created by Clone, Transpose and Expand share it without copying.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for view operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level strided tensor representation.
//
// A RawTensor is a logical view over a shared buffer: shape and strides
// describe where each logical element lives, so transposed or broadcast
// views address the same memory without copying it. The view itself is
// immutable once constructed; whether the buffer behind it may be written
// is decided per use site.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Memory strides in elements (row-major when contiguous)
	dtype  DataType      // Runtime type information
	device Device        // Compute device
	offset int           // Byte offset into the buffer for views
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of logical elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the logical memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsContiguous reports whether the view is a dense row-major layout
// starting at its offset. Contiguous views admit flat indexing.
func (r *RawTensor) IsContiguous() bool {
	expected := r.shape.ComputeStrides()
	for i := range r.stride {
		// Size-1 dimensions have no addressable effect.
		if r.shape[i] != 1 && r.stride[i] != expected[i] {
			return false
		}
	}
	return true
}

// Data returns the raw byte slice from the view's offset.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset:]
}

// capElements is the number of elements addressable from the view's
// offset. For broadcast (stride-0) views this is smaller than
// NumElements; typed accessors must not extend past it.
func (r *RawTensor) capElements() int {
	return (len(r.buffer.data) - r.offset) / r.dtype.Size()
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsInt8 interprets the data as []int8.
// Panics if the tensor's dtype is not Int8.
func (r *RawTensor) AsInt8() []int8 {
	if r.dtype != Int8 {
		panic(fmt.Sprintf("tensor dtype is %s, not int8", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int8)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsInt16 interprets the data as []int16.
// Panics if the tensor's dtype is not Int16.
func (r *RawTensor) AsInt16() []int16 {
	if r.dtype != Int16 {
		panic(fmt.Sprintf("tensor dtype is %s, not int16", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int16)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.buffer.data[r.offset:] // Already []byte = []uint8
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	if r.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.capElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.capElements())
}

// DataOf returns the typed slice for r's element type T.
// Panics if T does not match r's dtype.
func DataOf[T Elem](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		return any(r.AsBool()).([]T)
	case int8:
		return any(r.AsInt8()).([]T)
	case int16:
		return any(r.AsInt16()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case float16.Float16:
		return any(r.AsFloat16()).([]T)
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	default:
		panic("unsupported type")
	}
}

// Clone creates a shallow copy of the RawTensor sharing the buffer with
// reference counting. Use a registered Copy operation for a deep copy.
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Transpose returns a view with permuted dimensions (zero-copy).
// With no axes it reverses all dimensions.
func (r *RawTensor) Transpose(axes ...int) *RawTensor {
	ndim := len(r.shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	view := r.Clone()
	for i, ax := range axes {
		view.shape[i] = r.shape[ax]
		view.stride[i] = r.stride[ax]
	}
	return view
}

// Expand broadcasts the view to a larger shape without copying, by giving
// size-1 dimensions a zero stride. Missing leading dimensions are treated
// as size 1. Panics if a non-1 dimension disagrees with the target shape.
func (r *RawTensor) Expand(shape Shape) *RawTensor {
	if len(shape) < len(r.shape) {
		panic(fmt.Sprintf("expand: target rank %d below source rank %d", len(shape), len(r.shape)))
	}

	lead := len(shape) - len(r.shape)
	newStride := make([]int, len(shape))
	for i := range shape {
		src := i - lead
		switch {
		case src < 0 || r.shape[src] == 1:
			newStride[i] = 0
		case r.shape[src] == shape[i]:
			newStride[i] = r.stride[src]
		default:
			panic(fmt.Sprintf("expand: cannot broadcast dimension %d from %d to %d", src, r.shape[src], shape[i]))
		}
	}

	view := r.Clone()
	view.shape = shape.Clone()
	view.stride = newStride
	return view
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}
