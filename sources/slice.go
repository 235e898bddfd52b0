// Package sources provides the producer constructors for streams: finite
// collections, channels and iterators, integer ranges, and unbounded
// generators.
package sources

import (
	"github.com/elastiflow/streams"
)

// slice is a source that yields the values of a slice in order
type slice[T any] struct {
	values []T
	idx    int
}

// FromSlice creates a Finite stream over the values of a slice.
func FromSlice[T any](values []T) *streams.Stream[T] {
	return streams.New[T](&slice[T]{values: values}, streams.LenFinite)
}

// Next implements streams.Producer
func (s *slice[T]) Next() (T, bool) {
	if s.idx >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.idx]
	s.idx++
	return v, true
}

// Close implements streams.Producer
func (s *slice[T]) Close() {
	s.values = nil
	s.idx = 0
}
