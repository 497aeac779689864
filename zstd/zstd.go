// Package zstd implements the zstandard codec operations.
package zstd

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"

	"github.com/go-faster/press"
)

type codec struct{}

// Level 0 selects the library default.
func (codec) DefaultLevel() int { return 0 }

func (codec) Compress(src []byte, s *press.Sink, level int) (int, error) {
	lvl := zstd.SpeedDefault
	if level != 0 {
		// Native zstd level scale, negative levels clamp to fastest.
		lvl = zstd.EncoderLevelFromZstd(level)
	}
	w, err := zstd.NewWriter(s,
		zstd.WithEncoderLevel(lvl),
		zstd.WithEncoderConcurrency(1),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return 0, errors.Wrap(err, "encoder")
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
	d, err := zstd.NewReader(bytes.NewReader(src),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return 0, errors.Wrap(err, "decoder")
	}
	defer d.Close()
	if _, err := io.Copy(s, d.IOReadCloser()); err != nil {
		return 0, errors.Wrap(err, "copy")
	}
	return s.Produced(), nil
}

// Compress compresses data as a zstandard stream. Level follows the
// native zstd scale; 0 (the default) means the library default and
// negative levels trade ratio for speed.
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses a zstandard stream.
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
