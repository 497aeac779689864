// Package gzip implements the gzip codec operations.
package gzip

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/gzip"

	"github.com/go-faster/press"
)

// DefaultLevel is the gzip level used when none is given.
const DefaultLevel = 6

type codec struct{}

func (codec) DefaultLevel() int { return DefaultLevel }

func (codec) Compress(src []byte, s *press.Sink, level int) (int, error) {
	w, err := gzip.NewWriterLevel(s, level)
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
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, errors.Wrap(err, "header")
	}
	defer func() { _ = r.Close() }()
	if _, err := io.Copy(s, r); err != nil {
		return 0, errors.Wrap(err, "copy")
	}
	return s.Produced(), nil
}

// Compress compresses data with gzip framing. Level ranges 0 (stored)
// through 9 (best); the default is 6.
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses a gzip stream.
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
