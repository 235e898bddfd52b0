// Package evals provides small pure helper functions shaped to the streams
// function types, so common arithmetic and comparisons can be passed
// straight into Eval, Map and Filter without lambda noise.
package evals

import (
	"cmp"
	"errors"
	"math"

	"github.com/elastiflow/streams"
)

var (
	// ErrDivisionByZero is returned by the dividing helpers for a zero
	// divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain is returned when an argument is outside a helper's
	// mathematical domain.
	ErrDomain = errors.New("argument out of domain")
)

// Square returns x squared.
func Square[T streams.Number](x T) (T, error) {
	return x * x, nil
}

// Cube returns x cubed.
func Cube[T streams.Number](x T) (T, error) {
	return x * x * x, nil
}

// Same returns its argument unchanged.
func Same[T any](x T) (T, error) {
	return x, nil
}

// Inv returns the multiplicative inverse 1/x.
func Inv[T streams.Number](x T) (float64, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / float64(x), nil
}

// Pow returns a helper raising its argument to exp.
func Pow(exp float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return math.Pow(x, exp), nil
	}
}

// Root returns a helper taking the deg-th root of its argument.
func Root(deg float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if deg == 0 {
			return 0, ErrDivisionByZero
		}
		if x < 0 {
			return 0, ErrDomain
		}
		return math.Pow(x, 1/deg), nil
	}
}

// Log returns a helper taking the logarithm of its argument in the given
// base.
func Log(base float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if x <= 0 || base <= 0 || base == 1 {
			return 0, ErrDomain
		}
		return math.Log(x) / math.Log(base), nil
	}
}

// Add returns a helper adding v to its argument.
func Add[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		return x + v, nil
	}
}

// Sub returns a helper subtracting v from its argument.
func Sub[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		return x - v, nil
	}
}

// RSub returns a helper subtracting its argument from v.
func RSub[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		return v - x, nil
	}
}

// Mul returns a helper multiplying its argument by v.
func Mul[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		return x * v, nil
	}
}

// Div returns a helper dividing its argument by v.
func Div[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		if v == 0 {
			return 0, ErrDivisionByZero
		}
		return x / v, nil
	}
}

// RDiv returns a helper dividing v by its argument.
func RDiv[T streams.Number](v T) func(T) (T, error) {
	return func(x T) (T, error) {
		if x == 0 {
			return 0, ErrDivisionByZero
		}
		return v / x, nil
	}
}

// Lt returns a predicate reporting whether its argument is less than v.
func Lt[T cmp.Ordered](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x < v, nil
	}
}

// Le returns a predicate reporting whether its argument is at most v.
func Le[T cmp.Ordered](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x <= v, nil
	}
}

// Gt returns a predicate reporting whether its argument is greater than v.
func Gt[T cmp.Ordered](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x > v, nil
	}
}

// Ge returns a predicate reporting whether its argument is at least v.
func Ge[T cmp.Ordered](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x >= v, nil
	}
}

// Eq returns a predicate reporting whether its argument equals v.
func Eq[T comparable](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x == v, nil
	}
}

// Neq returns a predicate reporting whether its argument differs from v.
func Neq[T comparable](v T) func(T) (bool, error) {
	return func(x T) (bool, error) {
		return x != v, nil
	}
}

// Contains returns a predicate reporting whether its map argument contains
// key.
func Contains[K comparable, V any](key K) func(map[K]V) (bool, error) {
	return func(m map[K]V) (bool, error) {
		_, ok := m[key]
		return ok, nil
	}
}
