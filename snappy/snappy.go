// Package snappy implements the snappy block codec operations.
package snappy

import (
	"github.com/go-faster/errors"
	"github.com/golang/snappy"

	"github.com/go-faster/press"
)

type codec struct{}

// Snappy has no tuning parameter; the block format is one-shot.
func (codec) DefaultLevel() int { return 0 }

func (codec) Compress(src []byte, s *press.Sink, _ int) (int, error) {
	if _, err := s.Write(snappy.Encode(nil, src)); err != nil {
		return 0, errors.Wrap(err, "write block")
	}
	return s.Produced(), nil
}

func (codec) Decompress(src []byte, s *press.Sink) (int, error) {
	out, err := snappy.Decode(nil, src)
	if err != nil {
		return 0, errors.Wrap(err, "decode block")
	}
	if _, err := s.Write(out); err != nil {
		return 0, errors.Wrap(err, "write block")
	}
	return s.Produced(), nil
}

// Compress compresses data as a single snappy block. The Level option is
// ignored: the format has no level.
func Compress(data press.Data, opts ...press.Option) (press.Data, error) {
	return press.Compress(codec{}, data, opts...)
}

// Decompress decompresses a single snappy block.
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
