// Package lz4 implements the lz4 frame codec operations.
package lz4

import (
	"bytes"
	"io"

	"github.com/go-faster/errors"
	"github.com/pierrec/lz4/v4"

	"github.com/go-faster/press"
)

type codec struct{}

// Level 0 selects the library's fast default compressor.
func (codec) DefaultLevel() int { return 0 }

func (codec) Compress(src []byte, s *press.Sink, level int) (int, error) {
	if level < 0 || level > 9 {
		return 0, errors.Errorf("level %d out of range [0, 9]", level)
	}
	w := lz4.NewWriter(s)
	if level != 0 {
		// Levels 1..9 map onto the library's compression level scale.
		lvl := lz4.CompressionLevel(1 << (8 + level))
		if err := w.Apply(lz4.CompressionLevelOption(lvl)); err != nil {
			return 0, errors.Wrap(err, "level")
		}
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
	if _, err := io.Copy(s, lz4.NewReader(bytes.NewReader(src))); err != nil {
		return 0, errors.Wrap(err, "copy")
	}
	return s.Produced(), nil
}

// Compress compresses data as an lz4 frame. Level 0 (the default) is the
// fast compressor, 1 through 9 select increasing compression.
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses an lz4 frame.
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
