package tensor

import (
	"errors"
	"fmt"
)

// ErrDeviceMismatch reports arrays bound to different compute devices
// being handed to a single operation.
var ErrDeviceMismatch = errors.New("device mismatch")

// ErrDTypeMismatch reports arrays whose data types violate an operation's
// contract (e.g. a copy between different dtypes).
var ErrDTypeMismatch = errors.New("dtype mismatch")

// CheckDevicesCompatible verifies that all arrays involved in one
// operation share a compute device. It runs before any element access so
// a failing operation never leaves partially written output.
func CheckDevicesCompatible(arrays ...*RawTensor) error {
	if len(arrays) == 0 {
		return nil
	}
	device := arrays[0].Device()
	for _, a := range arrays[1:] {
		if a.Device() != device {
			return fmt.Errorf("%w: %s vs %s", ErrDeviceMismatch, device, a.Device())
		}
	}
	return nil
}
