package elementwise

import "github.com/loom-ml/loom/internal/tensor"

// Indexer enumerates the logical indices of a shape in row-major order
// and maps the current index onto per-view memory offsets via strides.
// A rank-0 shape has exactly one logical index.
type Indexer struct {
	shape  tensor.Shape
	coords []int
}

// NewIndexer creates an Indexer positioned at logical index 0.
func NewIndexer(shape tensor.Shape) *Indexer {
	return &Indexer{
		shape:  shape,
		coords: make([]int, len(shape)),
	}
}

// Seek positions the indexer at the given flat row-major index.
func (ix *Indexer) Seek(flat int) {
	for i := len(ix.shape) - 1; i >= 0; i-- {
		ix.coords[i] = flat % ix.shape[i]
		flat /= ix.shape[i]
	}
}

// Next advances to the following logical index (odometer increment).
func (ix *Indexer) Next() {
	for i := len(ix.shape) - 1; i >= 0; i-- {
		ix.coords[i]++
		if ix.coords[i] < ix.shape[i] {
			return
		}
		ix.coords[i] = 0
	}
}

// Offset returns the element offset of the current logical index in a
// view with the given strides. Zero strides (broadcast views) and
// permuted strides (transposed views) resolve to the correct element.
func (ix *Indexer) Offset(strides []int) int {
	off := 0
	for i, c := range ix.coords {
		off += c * strides[i]
	}
	return off
}
