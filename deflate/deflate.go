// Package deflate implements the raw deflate codec operations.
//
// Streams carry no zlib or gzip wrapping.
package deflate

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/flate"

	"github.com/go-faster/press"
)

// DefaultLevel is the deflate level used when none is given.
const DefaultLevel = 6

type codec struct{}

func (codec) DefaultLevel() int { return DefaultLevel }

func (codec) Compress(src []byte, s *press.Sink, level int) (int, error) {
	w, err := flate.NewWriter(s, level)
	if err != nil {
		return 0, errors.Wrap(err, "level")
	}
	if _, err := w.Write(src); err != nil {
		_ = w.Close()
		return 0, errors.Wrap(err, "write")
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrap(err, "close")
	}
	return s.Produced(), nil
}

func (codec) Decompress(src []byte, s *press.Sink) (int, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer func() { _ = r.Close() }()
	if _, err := io.Copy(s, r); err != nil {
		return 0, errors.Wrap(err, "copy")
	}
	return s.Produced(), nil
}

// Compress compresses data as a raw deflate stream. Level ranges 0
// (stored) through 9 (best); the default is 6.
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses a raw deflate stream.
func Decompress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Decompress(codec{}, data, opts...)
}

// CompressInto compresses data into dst and returns the bytes written.
func CompressInto(data press.Data, dst *press.Array, opts ...press.Option) (int, error) {
	return press.CompressInto(codec{}, data, dst, opts...)
}

// DecompressInto decompresses data into dst and returns the bytes written.
func DecompressInto(data press.Data, dst *press.Array) (int, error) {
	return press.DecompressInto(codec{}, data, dst)
}
