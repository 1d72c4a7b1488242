// Package elementwise drives per-element kernels over strided tensor
// views on the native (CPU) backend.
//
// A kernel is expressed once as a functor over static element types; the
// drivers enumerate every logical index of the operand views exactly once
// and invoke the functor with the element values (inputs by value, output
// by pointer), regardless of the views' physical layout. Contiguous,
// transposed and broadcast (stride-0) views all address correctly without
// materializing intermediate buffers.
//
// Shape homogeneity across views is a precondition: operands must already
// agree on their logical shape when they reach a driver. Shape and
// broadcast resolution belong to the layers above.
package elementwise

import (
	"fmt"

	"github.com/loom-ml/loom/internal/parallel"
	"github.com/loom-ml/loom/internal/tensor"
)

var conf = parallel.DefaultConfig()

// SetConfig replaces the parallel execution configuration for all
// drivers. Call it before any kernel traffic; it is not synchronized
// against running drivers. Results are identical for any configuration,
// since element computations are independent and chunks never overlap.
func SetConfig(cfg parallel.Config) {
	conf = cfg
}

func checkSameShape(views ...*tensor.RawTensor) {
	shape := views[0].Shape()
	for _, v := range views[1:] {
		if !v.Shape().Equal(shape) {
			panic(fmt.Sprintf("elementwise: shape mismatch %v vs %v (operands must be resolved by the shape layer first)",
				shape, v.Shape()))
		}
	}
}

func contiguous(views ...*tensor.RawTensor) bool {
	for _, v := range views {
		if !v.IsContiguous() {
			return false
		}
	}
	return true
}

// Nullary invokes fn(i, &out[i]) for every logical index i of out.
func Nullary[Out tensor.Elem](fn func(i int, out *Out), out *tensor.RawTensor) {
	n := out.Shape().NumElements()
	dst := tensor.DataOf[Out](out)

	if out.IsContiguous() {
		parallel.Chunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				fn(i, &dst[i])
			}
		}, conf)
		return
	}

	strides := out.Strides()
	parallel.Chunks(n, func(start, end int) {
		ix := NewIndexer(out.Shape())
		ix.Seek(start)
		for i := start; i < end; i++ {
			fn(i, &dst[ix.Offset(strides)])
			ix.Next()
		}
	}, conf)
}

// Unary invokes fn(i, in[i], &out[i]) for every logical index i.
// The input element is passed by value, the output by mutable pointer.
func Unary[In, Out tensor.Elem](fn func(i int, x In, out *Out), in, out *tensor.RawTensor) {
	checkSameShape(in, out)
	n := in.Shape().NumElements()
	src := tensor.DataOf[In](in)
	dst := tensor.DataOf[Out](out)

	if contiguous(in, out) {
		parallel.Chunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				fn(i, src[i], &dst[i])
			}
		}, conf)
		return
	}

	ss, ds := in.Strides(), out.Strides()
	parallel.Chunks(n, func(start, end int) {
		ix := NewIndexer(in.Shape())
		ix.Seek(start)
		for i := start; i < end; i++ {
			fn(i, src[ix.Offset(ss)], &dst[ix.Offset(ds)])
			ix.Next()
		}
	}, conf)
}

// Binary invokes fn(i, a[i], b[i], &out[i]) for every logical index i.
func Binary[A, B, Out tensor.Elem](fn func(i int, x A, y B, out *Out), a, b, out *tensor.RawTensor) {
	checkSameShape(a, b, out)
	n := a.Shape().NumElements()
	xs := tensor.DataOf[A](a)
	ys := tensor.DataOf[B](b)
	dst := tensor.DataOf[Out](out)

	if contiguous(a, b, out) {
		parallel.Chunks(n, func(start, end int) {
			for i := start; i < end; i++ {
				fn(i, xs[i], ys[i], &dst[i])
			}
		}, conf)
		return
	}

	as, bs, ds := a.Strides(), b.Strides(), out.Strides()
	parallel.Chunks(n, func(start, end int) {
		ix := NewIndexer(a.Shape())
		ix.Seek(start)
		for i := start; i < end; i++ {
			fn(i, xs[ix.Offset(as)], ys[ix.Offset(bs)], &dst[ix.Offset(ds)])
			ix.Next()
		}
	}, conf)
}
