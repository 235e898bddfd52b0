package sources

import (
	"github.com/elastiflow/streams"
)

// Generate creates an Infinite stream by invoking fn once per pull.
func Generate[T any](fn func() T) *streams.Stream[T] {
	return streams.New[T](streams.ProducerFunc[T](func() (T, bool) {
		return fn(), true
	}), streams.LenInfinite)
}

// Repeat creates an Infinite stream of a single repeated value.
func Repeat[T any](v T) *streams.Stream[T] {
	return Generate(func() T { return v })
}
