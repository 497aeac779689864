package brotli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/press"
)

func TestRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("quality eleven by default "), 2048)

	compressed, err := Compress(press.NewBytes(data))
	require.NoError(t, err)
	require.Less(t, compressed.Len(), len(data))

	decompressed, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed.(press.Bytes).Bytes())
}

func TestQuality(t *testing.T) {
	data := bytes.Repeat([]byte("quality eleven by default "), 2048)

	fast, err := Compress(press.NewBytes(data), press.Level(0))
	require.NoError(t, err)

	best, err := Compress(press.NewBytes(data), press.Level(11))
	require.NoError(t, err)
	require.LessOrEqual(t, best.Len(), fast.Len())

	for _, c := range []press.Data{fast, best} {
		decompressed, err := Decompress(c)
		require.NoError(t, err)
		require.Equal(t, data, decompressed.(press.Bytes).Bytes())
	}
}

func TestQualityOutOfRange(t *testing.T) {
	var ce *press.CompressionError
	_, err := Compress(press.NewBytes([]byte("x")), press.Level(12))
	require.ErrorAs(t, err, &ce)

	_, err = Compress(press.NewBytes([]byte("x")), press.Level(-1))
	require.ErrorAs(t, err, &ce)
}
