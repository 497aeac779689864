package press

// CompressionError is reported for any failure on a compress path:
// codec rejection of the input or level, destination buffer exhaustion,
// or failure to borrow the destination from the host container.
type CompressionError struct {
	Err error
}

// Error implements error.
func (e *CompressionError) Error() string { return "compression: " + e.Err.Error() }

// Unwrap returns the underlying codec error.
func (e *CompressionError) Unwrap() error { return e.Err }

// DecompressionError is reported for any failure on a decompress path,
// including truncated or corrupt input and destination buffer exhaustion.
type DecompressionError struct {
	Err error
}

// Error implements error.
func (e *DecompressionError) Error() string { return "decompression: " + e.Err.Error() }

// Unwrap returns the underlying codec error.
func (e *DecompressionError) Unwrap() error { return e.Err }
