// Package brotli implements the brotli codec operations.
package brotli

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-faster/errors"

	"github.com/go-faster/press"
)

// DefaultLevel is the brotli quality used when none is given.
const DefaultLevel = 11

type codec struct{}

func (codec) DefaultLevel() int { return DefaultLevel }

func (codec) Compress(src []byte, s *press.Sink, level int) (int, error) {
	if level < brotli.BestSpeed || level > brotli.BestCompression {
		return 0, errors.Errorf("quality %d out of range [%d, %d]",
			level, brotli.BestSpeed, brotli.BestCompression)
	}
	w := brotli.NewWriterLevel(s, level)
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
	if _, err := io.Copy(s, brotli.NewReader(bytes.NewReader(src))); err != nil {
		return 0, errors.Wrap(err, "copy")
	}
	return s.Produced(), nil
}

// Compress compresses data as a brotli stream. Level is the quality
// parameter, 0 (fastest) through 11 (best, the default).
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses a brotli stream.
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
