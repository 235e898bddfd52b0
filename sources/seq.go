package sources

import (
	"iter"

	"github.com/elastiflow/streams"
)

type seqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates an Unknown-length stream over a standard library iterator.
// Closing the stream stops the underlying sequence, releasing whatever
// resources its range loop holds.
func FromSeq[T any](seq iter.Seq[T]) *streams.Stream[T] {
	next, stop := iter.Pull(seq)
	return streams.New[T](&seqSource[T]{next: next, stop: stop}, streams.LenUnknown)
}

// Next implements streams.Producer
func (s *seqSource[T]) Next() (T, bool) {
	return s.next()
}

// Close implements streams.Producer
func (s *seqSource[T]) Close() {
	s.stop()
}
