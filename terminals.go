package streams

import (
	"cmp"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregates computed by Report in a single stream pass.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
}

func (s *Stream[T]) requireBounded(op string) error {
	if s.length == LenInfinite {
		return newUnlimitedError(op)
	}
	return nil
}

// each drains the stream, invoking fn per element, and closes it afterwards.
// A deferred Failure reaching this point re-raises its original error.
func (s *Stream[T]) each(fn func(T) error) error {
	defer s.Close()
	for {
		v, err, ok := s.nextValue()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// Collect materializes the stream into a slice, preserving source order.
func (s *Stream[T]) Collect() ([]T, error) {
	if err := s.requireBounded("Collect"); err != nil {
		return nil, err
	}
	var out []T
	if err := s.each(func(v T) error {
		out = append(out, v)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// CollectSet materializes the stream into a set keyed by equality.
func CollectSet[T comparable](s *Stream[T]) (map[T]struct{}, error) {
	if err := s.requireBounded("CollectSet"); err != nil {
		return nil, err
	}
	out := make(map[T]struct{})
	if err := s.each(func(v T) error {
		out[v] = struct{}{}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Drain consumes the stream for its side effects, discarding every element.
func (s *Stream[T]) Drain() error {
	if err := s.requireBounded("Drain"); err != nil {
		return err
	}
	return s.each(func(T) error { return nil })
}

// Count returns the number of elements, or of elements matching pred if one
// is given.
func (s *Stream[T]) Count(pred ...Filter[T]) (int, error) {
	if err := s.requireBounded("Count"); err != nil {
		return 0, err
	}
	n := 0
	if err := s.each(func(v T) error {
		match, perr := matches(v, pred)
		if perr != nil {
			return perr
		}
		if match {
			n++
		}
		return nil
	}); err != nil {
		return 0, err
	}
	return n, nil
}

// First returns the first element, or the first element matching pred if one
// is given. It needs no length guard: consumption stops at one match. The
// second return is false when the stream exhausts without a match.
func (s *Stream[T]) First(pred ...Filter[T]) (T, bool, error) {
	defer s.Close()
	var zero T
	for {
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return zero, false, err
		}
		match, perr := matches(v, pred)
		if perr != nil {
			return zero, false, perr
		}
		if match {
			return v, true, nil
		}
	}
}

// Last returns the final element, or the final element matching pred if one
// is given. It requires full consumption and therefore a bounded stream.
func (s *Stream[T]) Last(pred ...Filter[T]) (T, bool, error) {
	var last T
	found := false
	if err := s.requireBounded("Last"); err != nil {
		return last, false, err
	}
	if err := s.each(func(v T) error {
		match, perr := matches(v, pred)
		if perr != nil {
			return perr
		}
		if match {
			last = v
			found = true
		}
		return nil
	}); err != nil {
		return last, false, err
	}
	return last, found, nil
}

// All reports whether pred holds for every element, short-circuiting on the
// first miss. No length guard: an infinite stream with a miss terminates.
func (s *Stream[T]) All(pred Filter[T]) (bool, error) {
	defer s.Close()
	for {
		v, err, ok := s.nextValue()
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		match, perr := pred(v)
		if perr != nil {
			return false, perr
		}
		if !match {
			return false, nil
		}
	}
}

// Any reports whether pred holds for at least one element, short-circuiting
// on the first match.
func (s *Stream[T]) Any(pred Filter[T]) (bool, error) {
	defer s.Close()
	for {
		v, err, ok := s.nextValue()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		match, perr := pred(v)
		if perr != nil {
			return false, perr
		}
		if match {
			return true, nil
		}
	}
}

// Join concatenates the elements' default formatting with sep between them.
func (s *Stream[T]) Join(sep string) (string, error) {
	if err := s.requireBounded("Join"); err != nil {
		return "", err
	}
	var b strings.Builder
	first := true
	if err := s.each(func(v T) error {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
		return nil
	}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Sum accumulates the elements of a numeric stream, or of the elements
// matching pred if one is given.
func Sum[T Number](s *Stream[T], pred ...Filter[T]) (T, error) {
	var sum T
	if err := s.requireBounded("Sum"); err != nil {
		return sum, err
	}
	if err := s.each(func(v T) error {
		match, perr := matches(v, pred)
		if perr != nil {
			return perr
		}
		if match {
			sum += v
		}
		return nil
	}); err != nil {
		return sum, err
	}
	return sum, nil
}

// Mean returns the arithmetic mean of a numeric stream, or of the elements
// matching pred if one is given. An empty selection is a validation failure.
func Mean[T Number](s *Stream[T], pred ...Filter[T]) (float64, error) {
	vals, err := collectFloats(s, "Mean", pred...)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, newValidationError("Mean", "mean of an empty stream")
	}
	return stat.Mean(vals, nil), nil
}

// MinOf returns the smallest element of an ordered stream.
func MinOf[T cmp.Ordered](s *Stream[T]) (T, error) {
	return fold(s, "MinOf", func(a, b T) T { return min(a, b) })
}

// MaxOf returns the largest element of an ordered stream.
func MaxOf[T cmp.Ordered](s *Stream[T]) (T, error) {
	return fold(s, "MaxOf", func(a, b T) T { return max(a, b) })
}

// Report computes count, min, max, sum and mean in a single pass over the
// stream. An empty stream is a validation failure.
func Report[T Number](s *Stream[T]) (Summary, error) {
	vals, err := collectFloats(s, "Report")
	if err != nil {
		return Summary{}, err
	}
	if len(vals) == 0 {
		return Summary{}, newValidationError("Report", "report of an empty stream")
	}
	return Summary{
		Count: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
		Sum:   floats.Sum(vals),
		Mean:  stat.Mean(vals, nil),
	}, nil
}

// GroupBy materializes the stream into buckets keyed by the key function,
// preserving source order within each bucket.
func GroupBy[T any, K comparable](s *Stream[T], key func(T) (K, error)) (map[K][]T, error) {
	if err := s.requireBounded("GroupBy"); err != nil {
		return nil, err
	}
	out := make(map[K][]T)
	if err := s.each(func(v T) error {
		k, kerr := key(v)
		if kerr != nil {
			return kerr
		}
		out[k] = append(out[k], v)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func fold[T cmp.Ordered](s *Stream[T], op string, pick func(T, T) T) (T, error) {
	var acc T
	if err := s.requireBounded(op); err != nil {
		return acc, err
	}
	found := false
	if err := s.each(func(v T) error {
		if !found {
			acc = v
			found = true
			return nil
		}
		acc = pick(acc, v)
		return nil
	}); err != nil {
		return acc, err
	}
	if !found {
		var zero T
		return zero, newValidationError(op, op+" of an empty stream")
	}
	return acc, nil
}

func collectFloats[T Number](s *Stream[T], op string, pred ...Filter[T]) ([]float64, error) {
	if err := s.requireBounded(op); err != nil {
		return nil, err
	}
	var vals []float64
	if err := s.each(func(v T) error {
		match, perr := matches(v, pred)
		if perr != nil {
			return perr
		}
		if match {
			vals = append(vals, float64(v))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return vals, nil
}

func matches[T any](v T, pred []Filter[T]) (bool, error) {
	if len(pred) == 0 {
		return true, nil
	}
	return pred[0](v)
}
