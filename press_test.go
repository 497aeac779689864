package press

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

// echoCodec copies input to the sink verbatim, recording the level it
// was handed. Keeps dispatcher tests independent of real codecs.
type echoCodec struct {
	gotLevel *int
}

func (echoCodec) DefaultLevel() int { return 42 }

func (c echoCodec) Compress(src []byte, s *Sink, level int) (int, error) {
	if c.gotLevel != nil {
		*c.gotLevel = level
	}
	if _, err := s.Write(src); err != nil {
		return 0, err
	}
	return s.Produced(), nil
}

func (c echoCodec) Decompress(src []byte, s *Sink) (int, error) {
	if _, err := s.Write(src); err != nil {
		return 0, err
	}
	return s.Produced(), nil
}

type failCodec struct{}

func (failCodec) DefaultLevel() int { return 0 }

func (failCodec) Compress([]byte, *Sink, int) (int, error) {
	return 0, errors.New("boom")
}

func (failCodec) Decompress([]byte, *Sink) (int, error) {
	return 0, errors.New("boom")
}

func TestDispatchKindPreserved(t *testing.T) {
	payload := []byte("payload")

	out, err := Compress(echoCodec{}, NewBytes(payload))
	require.NoError(t, err)
	require.IsType(t, Bytes{}, out)
	require.Equal(t, payload, out.(Bytes).Bytes())

	out, err = Compress(echoCodec{}, NewByteArray(payload))
	require.NoError(t, err)
	require.IsType(t, &ByteArray{}, out)
	require.Equal(t, payload, out.(*ByteArray).Bytes())
}

func TestDispatchOutputLen(t *testing.T) {
	payload := []byte("payload")

	// Oversized pin: result holds exactly the produced bytes.
	out, err := Decompress(echoCodec{}, NewByteArray(payload), OutputLen(100))
	require.NoError(t, err)
	require.Equal(t, len(payload), out.Len())

	out, err = Decompress(echoCodec{}, NewBytes(payload), OutputLen(len(payload)))
	require.NoError(t, err)
	require.Equal(t, payload, out.(Bytes).Bytes())

	// Undersized pin fails instead of truncating.
	_, err = Decompress(echoCodec{}, NewBytes(payload), OutputLen(3))
	require.Error(t, err)
	var de *DecompressionError
	require.ErrorAs(t, err, &de)

	_, err = Compress(echoCodec{}, NewBytes(payload), OutputLen(3))
	var ce *CompressionError
	require.ErrorAs(t, err, &ce)
}

func TestDispatchLevel(t *testing.T) {
	var got int
	c := echoCodec{gotLevel: &got}

	_, err := Compress(c, NewBytes([]byte("x")))
	require.NoError(t, err)
	require.Equal(t, 42, got)

	_, err = Compress(c, NewBytes([]byte("x")), Level(7))
	require.NoError(t, err)
	require.Equal(t, 7, got)

	// Level zero is an explicit level, not "unset".
	_, err = Compress(c, NewBytes([]byte("x")), Level(0))
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestDispatchInto(t *testing.T) {
	payload := []byte("payload")

	dst := NewArray(32)
	n, err := CompressInto(echoCodec{}, NewBytes(payload), dst)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, dst.Bytes()[:n])

	n, err = DecompressInto(echoCodec{}, NewByteArray(payload), dst)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)

	// Too small destination.
	var de *DecompressionError
	_, err = DecompressInto(echoCodec{}, NewBytes(payload), NewArray(2))
	require.ErrorAs(t, err, &de)

	// Non-contiguous destination fails by path kind.
	strided := NewStridedArray(make([]byte, 64), 4)
	var ce *CompressionError
	_, err = CompressInto(echoCodec{}, NewBytes(payload), strided)
	require.ErrorAs(t, err, &ce)
	require.Contains(t, err.Error(), "failed to obtain mutable slice")

	_, err = DecompressInto(echoCodec{}, NewBytes(payload), strided)
	require.ErrorAs(t, err, &de)
}

func TestDispatchErrorKinds(t *testing.T) {
	var ce *CompressionError
	_, err := Compress(failCodec{}, NewBytes(nil))
	require.ErrorAs(t, err, &ce)
	require.Contains(t, err.Error(), "boom")
	require.Error(t, ce.Unwrap())

	var de *DecompressionError
	_, err = Decompress(failCodec{}, NewBytes(nil))
	require.ErrorAs(t, err, &de)

	// The kinds are disjoint.
	var other *CompressionError
	require.False(t, errors.As(err, &other))
}

func TestMethodEnum(t *testing.T) {
	require.Len(t, MethodValues(), 6)
	require.Equal(t, "snappy", Snappy.String())
	require.Equal(t, "zstd", Zstd.String())

	m, err := MethodString("lz4")
	require.NoError(t, err)
	require.Equal(t, LZ4, m)

	_, err = MethodString("lzma")
	require.Error(t, err)
}
