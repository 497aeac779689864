package press

import "github.com/go-faster/errors"

// Array is a pre-allocated one-dimensional numeric byte array, the
// destination of the CompressInto and DecompressInto operations.
//
// An Array created over an existing buffer may be strided, modeling a
// non-contiguous view; a strided array cannot lend a contiguous mutable
// slice and every *Into operation on it fails.
type Array struct {
	data   []byte
	stride int
}

// NewArray allocates a contiguous array of n bytes.
func NewArray(n int) *Array {
	return &Array{data: make([]byte, n), stride: 1}
}

// NewArrayFrom wraps b as a contiguous array. The slice is borrowed and
// must stay exclusive to the call writing into it.
func NewArrayFrom(b []byte) *Array {
	return &Array{data: b, stride: 1}
}

// NewStridedArray wraps b as a view selecting every stride-th byte.
func NewStridedArray(b []byte, stride int) *Array {
	return &Array{data: b, stride: stride}
}

// Len reports the number of elements.
func (a *Array) Len() int {
	if a.stride == 1 {
		return len(a.data)
	}
	if a.stride <= 0 || len(a.data) == 0 {
		return 0
	}
	return (len(a.data) + a.stride - 1) / a.stride
}

// Bytes returns the backing buffer, including bytes a strided view skips.
func (a *Array) Bytes() []byte { return a.data }

// MutableSlice borrows the contiguous mutable byte region of the array.
func (a *Array) MutableSlice() ([]byte, error) {
	if a.stride != 1 {
		return nil, errors.New("failed to obtain mutable slice from array")
	}
	return a.data, nil
}
