package sources

import (
	"math/rand/v2"

	"github.com/elastiflow/streams"
)

// Random creates an Infinite stream of pseudo-random floats in [0, 1).
func Random() *streams.Stream[float64] {
	return Generate(rand.Float64)
}

// RandInt creates an Infinite stream of pseudo-random integers in [a, b].
func RandInt(a, b int) *streams.Stream[int] {
	if a > b {
		panic(streams.NewValidationError("RandInt", "lower bound exceeds upper bound"))
	}
	return Generate(func() int {
		return a + rand.IntN(b-a+1)
	})
}

// RandBool creates an Infinite stream of pseudo-random booleans.
func RandBool() *streams.Stream[bool] {
	return Generate(func() bool {
		return rand.IntN(2) == 1
	})
}
