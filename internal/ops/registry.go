package ops

import (
	"errors"
	"fmt"
	"sync"

	"github.com/loom-ml/loom/internal/tensor"
)

// ErrNotImplemented reports an operation kind with no implementation
// registered for the requested device.
var ErrNotImplemented = errors.New("operation not implemented")

type registryKey struct {
	device tensor.Device
	kind   Kind
}

// The registry is write-once-per-key during backend initialization and
// read-only afterwards. Registration must complete before concurrent
// Call traffic begins.
var registry = struct {
	mu sync.RWMutex
	m  map[registryKey]any
}{m: make(map[registryKey]any)}

// Register binds op as the implementation of kind on device. Backends
// call it once per supported operation during their explicit
// initialization. Registering the same (device, kind) pair twice is a
// programming defect and panics.
func Register(device tensor.Device, kind Kind, op any) {
	key := registryKey{device: device, kind: kind}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.m[key]; ok {
		panic(fmt.Sprintf("ops: duplicate registration of %s for device %s", kind, device))
	}
	registry.m[key] = op
}

// Get returns the implementation of kind registered for device, or an
// ErrNotImplemented error when the device does not support it.
func Get(device tensor.Device, kind Kind) (any, error) {
	registry.mu.RLock()
	op, ok := registry.m[registryKey{device: device, kind: kind}]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s on device %s", ErrNotImplemented, kind, device)
	}
	return op, nil
}

// Lookup returns the implementation of kind for device asserted to the
// contract type T. A registered implementation that does not satisfy T
// indicates a registration defect and panics.
func Lookup[T any](device tensor.Device, kind Kind) (T, error) {
	op, err := Get(device, kind)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := op.(T)
	if !ok {
		panic(fmt.Sprintf("ops: %s for device %s registered as %T, which does not satisfy the operation contract", kind, device, op))
	}
	return typed, nil
}
