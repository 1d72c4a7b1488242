package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

func lookupCopy(t *testing.T) ops.CopyOp {
	t.Helper()
	RegisterDefaults()
	op, err := ops.Lookup[ops.CopyOp](tensor.CPU, ops.Copy)
	require.NoError(t, err)
	return op
}

func TestCopyFloat32(t *testing.T) {
	op := lookupCopy(t)

	in, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(in.AsFloat32(), []float32{1.5, -2, 0, 3.25, 4, -5.5})

	out, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	require.NoError(t, op.Call(in, out))

	if diff := cmp.Diff(in.AsFloat32(), out.AsFloat32()); diff != "" {
		t.Errorf("copy mismatch (-in +out):\n%s", diff)
	}
}

func TestCopyEveryDType(t *testing.T) {
	op := lookupCopy(t)

	dtypes := []tensor.DataType{
		tensor.Bool, tensor.Int8, tensor.Int16, tensor.Int32, tensor.Int64,
		tensor.Uint8, tensor.Float16, tensor.Float32, tensor.Float64,
	}
	for _, dt := range dtypes {
		in, err := tensor.NewRaw(tensor.Shape{4}, dt, tensor.CPU)
		require.NoError(t, err)
		// Distinct bit patterns so a missed element is visible. Bool
		// buffers only ever hold 0 or 1.
		for i := range in.Data() {
			if dt == tensor.Bool {
				in.Data()[i] = byte(i % 2)
			} else {
				in.Data()[i] = byte(i + 1)
			}
		}

		out, err := tensor.NewRaw(tensor.Shape{4}, dt, tensor.CPU)
		require.NoError(t, err)
		require.NoError(t, op.Call(in, out), "dtype %s", dt)

		if diff := cmp.Diff(in.Data()[:in.ByteSize()], out.Data()[:out.ByteSize()]); diff != "" {
			t.Errorf("copy mismatch for %s (-in +out):\n%s", dt, diff)
		}
	}
}

func TestCopyTransposedView(t *testing.T) {
	op := lookupCopy(t)

	base, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU)
	data := base.AsInt32()
	for i := range data {
		data[i] = int32(i)
	}

	out, _ := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Int32, tensor.CPU)
	require.NoError(t, op.Call(base.Transpose(), out))

	// out[i][j] == base[j][i]
	want := []int32{0, 3, 1, 4, 2, 5}
	if diff := cmp.Diff(want, out.AsInt32()); diff != "" {
		t.Errorf("transposed copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyBroadcastView(t *testing.T) {
	op := lookupCopy(t)

	base, _ := tensor.NewRaw(tensor.Shape{1}, tensor.Float16, tensor.CPU)
	base.AsFloat16()[0] = float16.Fromfloat32(2.5)

	out, _ := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float16, tensor.CPU)
	require.NoError(t, op.Call(base.Expand(tensor.Shape{3, 2}), out))

	for i, v := range out.AsFloat16() {
		require.Equal(t, float32(2.5), v.Float32(), "index %d", i)
	}
}

func TestCopyScalar(t *testing.T) {
	op := lookupCopy(t)

	in, _ := tensor.NewRaw(tensor.Shape{}, tensor.Float64, tensor.CPU)
	in.AsFloat64()[0] = 3.14

	out, _ := tensor.NewRaw(tensor.Shape{}, tensor.Float64, tensor.CPU)
	require.NoError(t, op.Call(in, out))
	require.Equal(t, 3.14, out.AsFloat64()[0])
}

func TestCopyDTypeMismatchFails(t *testing.T) {
	op := lookupCopy(t)

	in, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)

	err := op.Call(in, out)
	require.ErrorIs(t, err, tensor.ErrDTypeMismatch)
}

func TestCopyDeviceMismatchFailsFast(t *testing.T) {
	op := lookupCopy(t)

	in, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	copy(in.AsFloat32(), []float32{1, 2})
	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CUDA)
	copy(out.AsFloat32(), []float32{7, 7})

	err := op.Call(in, out)
	require.ErrorIs(t, err, tensor.ErrDeviceMismatch)

	// Failure is atomic: no element was written.
	require.Equal(t, []float32{7, 7}, out.AsFloat32())
}
