package press

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkFixed(t *testing.T) {
	buf := make([]byte, 4)
	s := newFixedSink(buf)

	n, err := s.Write([]byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = s.Write([]byte{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 4, s.Produced())
	require.Equal(t, []byte{1, 2, 3, 4}, s.Bytes())

	_, err = s.Write([]byte{5})
	require.Error(t, err)
	require.Contains(t, err.Error(), "too small")
	// Failed write leaves produced count intact.
	require.Equal(t, 4, s.Produced())
}

func TestSinkFixedPartialFill(t *testing.T) {
	s := newFixedSink(make([]byte, 8))
	_, err := s.Write([]byte{9, 9})
	require.NoError(t, err)
	require.Equal(t, 2, s.Produced())
	require.Equal(t, []byte{9, 9}, s.Bytes())
}

func TestSinkGrowable(t *testing.T) {
	s := newGrowableSink(growHint(0))
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i)
	}
	for i := 0; i < 10; i++ {
		n, err := s.Write(payload)
		require.NoError(t, err)
		require.Equal(t, len(payload), n)
	}
	require.Equal(t, 10*len(payload), s.Produced())
	require.Equal(t, payload, s.Bytes()[:len(payload)])
}

func TestGrowHint(t *testing.T) {
	require.Equal(t, growHintMin, growHint(0))
	require.Equal(t, growHintMin, growHint(100))
	require.Equal(t, 1000, growHint(10_000))
}
