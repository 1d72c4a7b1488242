// Package cpu implements the native CPU backend: concrete element-wise
// kernels built on the elementwise execution engine and registered into
// the shared operation registry.
package cpu

import (
	"fmt"
	"sync"

	"github.com/loom-ml/loom/internal/ops"
	"github.com/loom-ml/loom/internal/tensor"
)

// CPUBackend identifies the native compute backend.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

var registerOnce sync.Once

// RegisterDefaults registers the native implementation of every
// operation kind this backend supports. Call it during program
// initialization, before any operation lookup or concurrent kernel
// traffic. Repeated calls are no-ops.
func RegisterDefaults() {
	registerOnce.Do(func() {
		ops.Register(tensor.CPU, ops.Copy, copyOp{})
		ops.Register(tensor.CPU, ops.AsType, asTypeOp{})
		ops.Register(tensor.CPU, ops.Fill, fillOp{})
		ops.Register(tensor.CPU, ops.Add, addOp{})
	})
}

// Copy returns a dense deep copy of x via the registered Copy operation.
func (cpu *CPUBackend) Copy(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	op, err := ops.Lookup[ops.CopyOp](cpu.device, ops.Copy)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}
	if err := op.Call(x, out); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// AsType converts x to the given dtype via the registered AsType
// operation, allocating the destination array.
func (cpu *CPUBackend) AsType(x *tensor.RawTensor, dtype tensor.DataType) (*tensor.RawTensor, error) {
	op, err := ops.Lookup[ops.AsTypeOp](cpu.device, ops.AsType)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		return nil, fmt.Errorf("astype: %w", err)
	}
	if err := op.Call(x, out); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// Fill sets every element of x to value via the registered Fill operation.
func (cpu *CPUBackend) Fill(x *tensor.RawTensor, value any) error {
	op, err := ops.Lookup[ops.FillOp](cpu.device, ops.Fill)
	if err != nil {
		return err
	}
	return op.Call(x, value)
}

// Add computes a + b element-wise via the registered Add operation,
// allocating the result.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	op, err := ops.Lookup[ops.AddOp](cpu.device, ops.Add)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	if err := op.Call(a, b, out); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}
