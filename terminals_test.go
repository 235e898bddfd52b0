package streams

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedTerminalsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		call func(s *Stream[int]) error
	}{
		{name: "Collect", call: func(s *Stream[int]) error { _, err := s.Collect(); return err }},
		{name: "CollectSet", call: func(s *Stream[int]) error { _, err := CollectSet(s); return err }},
		{name: "Drain", call: func(s *Stream[int]) error { return s.Drain() }},
		{name: "Count", call: func(s *Stream[int]) error { _, err := s.Count(); return err }},
		{name: "Last", call: func(s *Stream[int]) error { _, _, err := s.Last(); return err }},
		{name: "Join", call: func(s *Stream[int]) error { _, err := s.Join(","); return err }},
		{name: "Sum", call: func(s *Stream[int]) error { _, err := Sum(s); return err }},
		{name: "Mean", call: func(s *Stream[int]) error { _, err := Mean(s); return err }},
		{name: "MinOf", call: func(s *Stream[int]) error { _, err := MinOf(s); return err }},
		{name: "MaxOf", call: func(s *Stream[int]) error { _, err := MaxOf(s); return err }},
		{name: "Report", call: func(s *Stream[int]) error { _, err := Report(s); return err }},
		{name: "GroupBy", call: func(s *Stream[int]) error {
			_, err := GroupBy(s, func(v int) (int, error) { return v % 2, nil })
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(New[int](sequential(), LenInfinite))
			require.Error(t, err)
			assert.True(t, IsUnlimitedError(err))
		})
	}
}

func TestCollectSet(t *testing.T) {
	got, err := CollectSet(fromValues(1, 2, 2, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, got)
}

func TestStream_Drain(t *testing.T) {
	p := NewMockProducer([]int{1, 2, 3})
	require.NoError(t, New[int](p, LenFinite).Drain())
	assert.Equal(t, 4, p.NextCount)
	assert.Equal(t, 1, p.CloseCount)
}

func TestStream_Count(t *testing.T) {
	n, err := fromValues(1, 2, 3, 4, 5).Count()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = fromValues(1, 2, 3, 4, 5).Count(isEven)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStream_First(t *testing.T) {
	v, found, err := fromValues(7, 8, 9).First()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, v)

	v, found, err = fromValues(7, 8, 9).First(isEven)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 8, v)

	_, found, err = fromValues(1, 3).First(isEven)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStream_FirstOnInfinite(t *testing.T) {
	// First consumes to one match, so no length guard applies.
	v, found, err := New[int](sequential(), LenInfinite).First(func(v int) (bool, error) {
		return v > 5, nil
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, v)
}

func TestStream_Last(t *testing.T) {
	v, found, err := fromValues(7, 8, 9, 10).Last()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10, v)

	v, found, err = fromValues(7, 8, 9, 10).Last(isEven)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10, v)

	_, found, err = fromValues[int]().Last()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStream_AllAny(t *testing.T) {
	ok, err := fromValues(2, 4, 6).All(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fromValues(2, 3, 4).All(isEven)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fromValues(1, 3, 4).Any(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fromValues(1, 3, 5).Any(isEven)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStream_AllShortCircuitsOnInfinite(t *testing.T) {
	ok, err := New[int](sequential(), LenInfinite).All(func(v int) (bool, error) {
		return v < 3, nil
	})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = New[int](sequential(), LenInfinite).Any(func(v int) (bool, error) {
		return v == 3, nil
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStream_Join(t *testing.T) {
	got, err := fromValues(1, 2, 3).Join(", ")
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3", got)

	got, err = fromValues[int]().Join(", ")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestSumMean(t *testing.T) {
	sum, err := Sum(fromValues(1, 2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 10, sum)

	mean, err := Mean(fromValues(1.0, 2.0, 3.0, 4.0))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 1e-12)

	_, err = Mean(fromValues[int]())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSumMeanWithPredicate(t *testing.T) {
	sum, err := Sum(fromValues(1, 2, 3, 4, 5), isEven)
	require.NoError(t, err)
	assert.Equal(t, 6, sum)

	mean, err := Mean(fromValues(1, 2, 3, 4, 5), isEven)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, mean, 1e-12)

	// A predicate matching nothing leaves no elements to average.
	_, err = Mean(fromValues(1, 3, 5), isEven)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	boom := errors.New("boom")
	_, err = Sum(fromValues(1, 2), func(int) (bool, error) { return false, boom })
	require.ErrorIs(t, err, boom)
}

func TestMinOfMaxOf(t *testing.T) {
	lo, err := MinOf(fromValues(3, 1, 4, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := MaxOf(fromValues("pear", "apple", "plum"))
	require.NoError(t, err)
	assert.Equal(t, "plum", hi)

	_, err = MinOf(fromValues[int]())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestReport(t *testing.T) {
	got, err := Report(fromValues(4, 1, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, Summary{Count: 4, Min: 1, Max: 4, Sum: 10, Mean: 2.5}, got)

	_, err = Report(fromValues[float64]())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestGroupBy(t *testing.T) {
	got, err := GroupBy(fromValues(1, 2, 3, 4, 5, 6), func(v int) (string, error) {
		if v%2 == 0 {
			return "even", nil
		}
		return "odd", nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{
		"odd":  {1, 3, 5},
		"even": {2, 4, 6},
	}, got)
}

func TestTerminalsSurfaceUserErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(int) (bool, error) { return false, boom }

	_, err := fromValues(1, 2).Count(failing)
	require.ErrorIs(t, err, boom)

	_, _, err = fromValues(1, 2).First(failing)
	require.ErrorIs(t, err, boom)

	_, err = fromValues(1, 2).All(failing)
	require.ErrorIs(t, err, boom)
}

func TestTerminalsCloseTheStream(t *testing.T) {
	p := NewMockProducer([]int{1, 2, 3})
	_, err := Sum(New[int](p, LenFinite))
	require.NoError(t, err)
	assert.Equal(t, 1, p.CloseCount)
}

func TestMeanOfLargeValues(t *testing.T) {
	mean, err := Mean(fromValues(math.MaxFloat64/2, math.MaxFloat64/2))
	require.NoError(t, err)
	assert.InDelta(t, math.MaxFloat64/2, mean, math.MaxFloat64/1e10)
}
