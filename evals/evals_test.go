package evals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastiflow/streams/evals"
)

func TestArithmeticHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (float64, error)
		in   float64
		want float64
	}{
		{name: "square", fn: evals.Square[float64], in: 3, want: 9},
		{name: "cube", fn: evals.Cube[float64], in: -2, want: -8},
		{name: "same", fn: evals.Same[float64], in: 1.5, want: 1.5},
		{name: "inv", fn: evals.Inv[float64], in: 4, want: 0.25},
		{name: "pow", fn: evals.Pow(3), in: 2, want: 8},
		{name: "root", fn: evals.Root(2), in: 9, want: 3},
		{name: "log", fn: evals.Log(2), in: 8, want: 3},
		{name: "add", fn: evals.Add(10.0), in: 5, want: 15},
		{name: "sub", fn: evals.Sub(3.0), in: 5, want: 2},
		{name: "rsub", fn: evals.RSub(3.0), in: 5, want: -2},
		{name: "mul", fn: evals.Mul(4.0), in: 2.5, want: 10},
		{name: "div", fn: evals.Div(4.0), in: 10, want: 2.5},
		{name: "rdiv", fn: evals.RDiv(10.0), in: 4, want: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestHelperFailures(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64) (float64, error)
		in    float64
		errIs error
	}{
		{name: "inv of zero", fn: evals.Inv[float64], in: 0, errIs: evals.ErrDivisionByZero},
		{name: "div by zero", fn: evals.Div(0.0), in: 1, errIs: evals.ErrDivisionByZero},
		{name: "rdiv of zero", fn: evals.RDiv(1.0), in: 0, errIs: evals.ErrDivisionByZero},
		{name: "zeroth root", fn: evals.Root(0), in: 4, errIs: evals.ErrDivisionByZero},
		{name: "root of negative", fn: evals.Root(2), in: -4, errIs: evals.ErrDomain},
		{name: "log of zero", fn: evals.Log(2), in: 0, errIs: evals.ErrDomain},
		{name: "log base one", fn: evals.Log(1), in: 8, errIs: evals.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.in)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(int) (bool, error)
		in   int
		want bool
	}{
		{name: "lt hit", pred: evals.Lt(5), in: 4, want: true},
		{name: "lt miss", pred: evals.Lt(5), in: 5, want: false},
		{name: "le hit", pred: evals.Le(5), in: 5, want: true},
		{name: "gt hit", pred: evals.Gt(5), in: 6, want: true},
		{name: "ge miss", pred: evals.Ge(5), in: 4, want: false},
		{name: "eq hit", pred: evals.Eq(5), in: 5, want: true},
		{name: "neq hit", pred: evals.Neq(5), in: 4, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pred(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	m := map[string]int{"a": 1}

	ok, err := evals.Contains[string, int]("a")(m)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evals.Contains[string, int]("b")(m)
	require.NoError(t, err)
	assert.False(t, ok)
}
