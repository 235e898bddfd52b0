package sources

import (
	"github.com/elastiflow/streams"
)

// Primes creates an Infinite stream of the prime numbers in order, by trial
// division of the 6n±1 candidates.
func Primes() *streams.Stream[int] {
	next := quasiPrimes()
	return streams.New[int](streams.ProducerFunc[int](func() (int, bool) {
		for {
			p := next()
			if isPrime(p) {
				return p, true
			}
		}
	}), streams.LenInfinite)
}

// quasiPrimes yields 2, 3, then 6n-1 and 6n+1 for n = 1, 2, ...; every
// prime is among them.
func quasiPrimes() func() int {
	state := 0
	n := 6
	return func() int {
		switch state {
		case 0:
			state = 1
			return 2
		case 1:
			state = 2
			return 3
		case 2:
			state = 3
			return n - 1
		default:
			state = 2
			v := n + 1
			n += 6
			return v
		}
	}
}

func isPrime(n int) bool {
	next := quasiPrimes()
	for {
		d := next()
		if d*d > n {
			return true
		}
		if n%d == 0 && n != d {
			return false
		}
	}
}
