package press

// Data is a host byte container accepted as input and produced as output
// by every codec operation.
//
// Exactly two containers implement it: Bytes, an immutable byte string,
// and *ByteArray, a mutable resizable byte array. Operations preserve the
// container kind: compressing Bytes yields Bytes, compressing *ByteArray
// yields *ByteArray.
type Data interface {
	// Len reports the container length in bytes.
	Len() int

	view() []byte
}

// Bytes is an immutable host byte string.
//
// The package never writes through a Bytes value. A slice passed to
// NewBytes is borrowed, not copied; the caller must not mutate it while
// a call using it is in flight.
type Bytes struct {
	data []byte
}

// NewBytes wraps b as an immutable byte string.
func NewBytes(b []byte) Bytes { return Bytes{data: b} }

// Len reports length in bytes.
func (b Bytes) Len() int { return len(b.data) }

// Bytes returns the underlying view. Treat as read-only.
func (b Bytes) Bytes() []byte { return b.data }

func (b Bytes) view() []byte { return b.data }

// ByteArray is a mutable host byte array supporting in-place length
// change and content mutation.
//
// Reads performed during a call go through the backing slice directly;
// the caller must not mutate the array concurrently with an operation
// that uses it.
type ByteArray struct {
	data []byte
}

// NewByteArray wraps b as a mutable byte array. The slice is borrowed.
func NewByteArray(b []byte) *ByteArray { return &ByteArray{data: b} }

// Len reports length in bytes.
func (a *ByteArray) Len() int { return len(a.data) }

// Bytes returns the backing slice.
func (a *ByteArray) Bytes() []byte { return a.data }

// Resize changes the array length to n. Shrinking is done in place,
// growing reallocates and zero-fills the tail.
func (a *ByteArray) Resize(n int) {
	if n <= len(a.data) {
		a.data = a.data[:n]
		return
	}
	if n <= cap(a.data) {
		// Reused capacity may hold stale bytes.
		tail := a.data[len(a.data):n]
		for i := range tail {
			tail[i] = 0
		}
		a.data = a.data[:n]
		return
	}
	grown := make([]byte, n)
	copy(grown, a.data)
	a.data = grown
}

func (a *ByteArray) view() []byte { return a.data }
