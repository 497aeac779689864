// Package press implements a uniform facade over byte-level compression
// codecs.
//
// Each codec family lives in its own subpackage (snappy, brotli, deflate,
// gzip, lz4, zstd) and exposes the same four operations: Compress,
// Decompress, CompressInto and DecompressInto. The byte streams are the
// native codec formats verbatim, with no extra framing.
//
// The root package carries the pieces shared by every family: the host
// byte containers (Bytes, ByteArray, Array), the output Sink, the
// dispatcher that routes a call to an allocation strategy, and the two
// error kinds every failure collapses into.
package press

import (
	"github.com/go-faster/errors"
)

// Codec adapts one compression family to the Sink contract.
//
// Compress and Decompress consume src fully and report the number of
// bytes written to the sink. Implementations release any encoder or
// decoder state before returning, on error paths included.
type Codec interface {
	Compress(src []byte, s *Sink, level int) (int, error)
	Decompress(src []byte, s *Sink) (int, error)

	// DefaultLevel is used when the caller does not pass Level.
	DefaultLevel() int
}

type options struct {
	level        int
	outputLen    int
	hasLevel     bool
	hasOutputLen bool
}

// Option configures a single operation.
type Option func(*options)

// Level sets the codec compression level. Zstd accepts negative levels;
// every other family expects a non-negative one. Out-of-range values are
// forwarded to the codec and its rejection surfaces as *CompressionError.
func Level(n int) Option {
	return func(o *options) {
		o.level = n
		o.hasLevel = true
	}
}

// OutputLen pre-sizes the result container to exactly n bytes and makes
// the operation run against a fixed sink: producing more than n bytes
// fails instead of growing.
func OutputLen(n int) Option {
	return func(o *options) {
		o.outputLen = n
		o.hasOutputLen = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compress compresses data with c and returns a container of the same
// kind as data.
func Compress(c Codec, data Data, opts ...Option) (Data, error) {
	o := buildOptions(opts)
	out, err := run(data, o, func(s *Sink) (int, error) {
		return c.Compress(data.view(), s, level(c, o))
	})
	if err != nil {
		return nil, &CompressionError{Err: err}
	}
	return out, nil
}

// Decompress decompresses data with c and returns a container of the
// same kind as data.
func Decompress(c Codec, data Data, opts ...Option) (Data, error) {
	o := buildOptions(opts)
	out, err := run(data, o, func(s *Sink) (int, error) {
		return c.Decompress(data.view(), s)
	})
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	return out, nil
}

// CompressInto compresses data into the caller-supplied array and returns
// the number of bytes written. Only Level is honored; the destination
// capacity is the array length.
func CompressInto(c Codec, data Data, dst *Array, opts ...Option) (int, error) {
	o := buildOptions(opts)
	n, err := runInto(dst, func(s *Sink) (int, error) {
		return c.Compress(data.view(), s, level(c, o))
	})
	if err != nil {
		return 0, &CompressionError{Err: err}
	}
	return n, nil
}

// DecompressInto decompresses data into the caller-supplied array and
// returns the number of bytes written.
func DecompressInto(c Codec, data Data, dst *Array) (int, error) {
	n, err := runInto(dst, func(s *Sink) (int, error) {
		return c.Decompress(data.view(), s)
	})
	if err != nil {
		return 0, &DecompressionError{Err: err}
	}
	return n, nil
}

func level(c Codec, o options) int {
	if o.hasLevel {
		return o.level
	}
	return c.DefaultLevel()
}

// run routes one operation through the allocation matrix: a fixed sink
// of exactly outputLen bytes when the caller pinned the result size, an
// owned growable sink otherwise. The result container matches the kind
// of data and holds exactly the produced bytes.
func run(data Data, o options, fn func(*Sink) (int, error)) (Data, error) {
	var s *Sink
	if o.hasOutputLen {
		s = newFixedSink(make([]byte, o.outputLen))
	} else {
		s = newGrowableSink(growHint(data.Len()))
	}
	n, err := fn(s)
	if err != nil {
		return nil, err
	}
	out := s.Bytes()[:n]
	switch data.(type) {
	case Bytes:
		return Bytes{data: out}, nil
	case *ByteArray:
		return &ByteArray{data: out}, nil
	default:
		return nil, errors.Errorf("unexpected container %T", data)
	}
}

// runInto borrows the destination as a fixed sink.
func runInto(dst *Array, fn func(*Sink) (int, error)) (int, error) {
	buf, err := dst.MutableSlice()
	if err != nil {
		return 0, err
	}
	return fn(newFixedSink(buf))
}
