package press

import "github.com/go-faster/errors"

// Sink is the single write target of every codec adapter.
//
// A fixed sink borrows a caller-scoped slice and enforces its capacity:
// a write that would pass the end fails instead of truncating. A growable
// sink owns its buffer and grows to stream end. One sink serves exactly
// one adapter invocation.
type Sink struct {
	buf   []byte
	off   int
	fixed bool
}

func newFixedSink(buf []byte) *Sink {
	return &Sink{buf: buf, fixed: true}
}

func newGrowableSink(hint int) *Sink {
	return &Sink{buf: make([]byte, 0, hint)}
}

// growHint is the initial growable capacity for an input of n bytes.
const growHintMin = 64

func growHint(n int) int {
	if h := n / 10; h > growHintMin {
		return h
	}
	return growHintMin
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	if s.fixed {
		if len(p) > len(s.buf)-s.off {
			return 0, errors.Errorf("output buffer too small: need %d more bytes over capacity %d",
				len(p)-(len(s.buf)-s.off), len(s.buf))
		}
		s.off += copy(s.buf[s.off:], p)
		return len(p), nil
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Produced reports the number of bytes written so far.
func (s *Sink) Produced() int {
	if s.fixed {
		return s.off
	}
	return len(s.buf)
}

// Bytes returns the written prefix.
func (s *Sink) Bytes() []byte {
	if s.fixed {
		return s.buf[:s.off]
	}
	return s.buf
}
