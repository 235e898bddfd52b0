package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromValues[T any](values ...T) *Stream[T] {
	return New[T](NewMockProducer(values), LenFinite)
}

func TestStream_CollectIdentity(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{name: "empty", input: []int{}},
		{name: "single", input: []int{42}},
		{name: "many", input: []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromValues(tt.input...).Collect()
			require.NoError(t, err)
			assert.Equal(t, tt.input, append([]int{}, got...))
		})
	}
}

func TestStream_ExhaustionIsSticky(t *testing.T) {
	s := fromValues(1, 2, 3)

	got, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	again, err := s.Collect()
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestStream_CloseIsIdempotent(t *testing.T) {
	p := NewMockProducer([]int{1, 2, 3})
	s := New[int](p, LenFinite)

	s.Close()
	s.Close()

	assert.Equal(t, 1, p.CloseCount)
}

func TestStream_ClosePropagatesOnceThroughChain(t *testing.T) {
	mc := &mockCloser[int]{inner: NewMockProducer([]int{1, 2, 3, 4})}
	mc.On("Close").Return()

	s := New[int](mc, LenFinite).
		Filter(func(v int) (bool, error) { return v%2 == 0, nil }).
		Skip(1)
	s.Close()
	s.Close()

	mc.AssertNumberOfCalls(t, "Close", 1)
}

func TestStream_LimitClosesUpstreamEarly(t *testing.T) {
	p := NewMockProducer([]int{1, 2, 3, 4, 5})

	got, err := New[int](p, LenFinite).Limit(2).Collect()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, p.CloseCount)
	// The boundary is checked per element, never by reading ahead.
	assert.Equal(t, 2, p.NextCount)
}

func TestStream_WithLen(t *testing.T) {
	s := fromValues(1, 2, 3).WithLen(LenUnknown)
	assert.Equal(t, LenUnknown, s.Len())

	assert.PanicsWithError(t, newValidationError("WithLen", "length classification out of domain").Error(), func() {
		fromValues(1).WithLen(Len(42))
	})
}

func TestNew_RejectsInvalidLen(t *testing.T) {
	assert.Panics(t, func() {
		New[int](NewMockProducer([]int{1}), Len(-3))
	})
}

func TestStream_CacheBounded(t *testing.T) {
	p := NewMockProducer([]int{1, 2, 3, 4, 5})
	s := New[int](p, LenUnknown).Cache(3)

	// Three elements were read ahead; the rest stay with the producer.
	assert.Equal(t, 3, p.NextCount)
	assert.Equal(t, LenUnknown, s.Len())

	got, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestStream_CacheAll(t *testing.T) {
	s := New[int](NewMockProducer([]int{1, 2, 3}), LenUnknown).Cache()
	assert.Equal(t, LenFinite, s.Len())

	got, err := s.Collect()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStream_CacheValidation(t *testing.T) {
	assert.Panics(t, func() {
		New[int](NewMockProducer([]int{1}), LenInfinite).Cache()
	})
	assert.Panics(t, func() {
		fromValues(1, 2).Cache(-1)
	})
	assert.NotPanics(t, func() {
		// A bounded cache is fine on an infinite stream.
		New[int](ProducerFunc[int](func() (int, bool) { return 9, true }), LenInfinite).Cache(4)
	})
}

func TestProducerFunc(t *testing.T) {
	n := 0
	p := ProducerFunc[int](func() (int, bool) {
		n++
		return n, n <= 3
	})

	got, err := New[int](p, LenUnknown).Collect()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.NotPanics(t, p.Close)
}
