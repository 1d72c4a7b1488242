package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/loom-ml/loom/internal/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

func lookupFill(t *testing.T) ops.FillOp {
	t.Helper()
	RegisterDefaults()
	op, err := ops.Lookup[ops.FillOp](tensor.CPU, ops.Fill)
	require.NoError(t, err)
	return op
}

func TestFillFloat32(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, op.Call(out, float32(3.5)))

	for i, v := range out.AsFloat32() {
		require.Equal(t, float32(3.5), v, "index %d", i)
	}
}

func TestFillLargeInt64KeepsPrecision(t *testing.T) {
	op := lookupFill(t)

	// A value float64 cannot represent exactly.
	value := int64(1<<60 + 1)
	out, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Int64, tensor.CPU)
	require.NoError(t, op.Call(out, value))

	for _, v := range out.AsInt64() {
		require.Equal(t, value, v)
	}
}

func TestFillBoolNormalizes(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Bool, tensor.CPU)
	require.NoError(t, op.Call(out, 2))
	for _, v := range out.AsBool() {
		assert.True(t, v)
	}

	require.NoError(t, op.Call(out, 0.0))
	for _, v := range out.AsBool() {
		assert.False(t, v)
	}
}

func TestFillFloat16(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{5}, tensor.Float16, tensor.CPU)
	require.NoError(t, op.Call(out, 0.5))

	for _, v := range out.AsFloat16() {
		require.Equal(t, float32(0.5), v.Float32())
	}
}

func TestFillAcceptsFloat16Scalar(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	require.NoError(t, op.Call(out, float16.Fromfloat32(1.5)))
	require.Equal(t, []float64{1.5, 1.5}, out.AsFloat64())
}

func TestFillIntToFloat(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	require.NoError(t, op.Call(out, 7))
	require.Equal(t, []float64{7, 7}, out.AsFloat64())
}

func TestFillStridedViewWritesThrough(t *testing.T) {
	op := lookupFill(t)

	base, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU)
	require.NoError(t, op.Call(base.Transpose(), int32(-1)))

	for i, v := range base.AsInt32() {
		require.Equal(t, int32(-1), v, "index %d", i)
	}
}

func TestFillUnsupportedScalarFails(t *testing.T) {
	op := lookupFill(t)

	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	err := op.Call(out, "not a number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scalar")
}
