package sources

import (
	"github.com/elastiflow/streams"
)

// Fibonacci creates an Infinite stream of the Fibonacci numbers starting at
// 0, 1.
func Fibonacci() *streams.Stream[int] {
	a, b := 0, 1
	return streams.New[int](streams.ProducerFunc[int](func() (int, bool) {
		v := a
		a, b = b, a+b
		return v, true
	}), streams.LenInfinite)
}
