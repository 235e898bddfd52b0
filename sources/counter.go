package sources

import (
	"github.com/elastiflow/streams"
)

// Counter creates an Infinite stream counting 0, 1, 2, ...
func Counter() *streams.Stream[int] {
	return CounterFrom(0, 1)
}

// CounterFrom creates an Infinite stream counting from start by step.
func CounterFrom(start, step int) *streams.Stream[int] {
	cur := start
	return streams.New[int](streams.ProducerFunc[int](func() (int, bool) {
		v := cur
		cur += step
		return v, true
	}), streams.LenInfinite)
}
