package sources

import (
	"github.com/elastiflow/streams"
)

type intRange struct {
	cur  int
	stop int
	step int
}

// Range creates a Finite stream of the integers [start, stop) with step 1.
func Range(start, stop int) *streams.Stream[int] {
	return RangeStep(start, stop, 1)
}

// RangeStep creates a Finite stream of the integers from start towards stop
// with the given step. A positive step counts up to an exclusive stop, a
// negative step counts down; a zero step is a validation failure.
func RangeStep(start, stop, step int) *streams.Stream[int] {
	if step == 0 {
		panic(streams.NewValidationError("RangeStep", "step must not be zero"))
	}
	return streams.New[int](&intRange{cur: start, stop: stop, step: step}, streams.LenFinite)
}

// Next implements streams.Producer
func (r *intRange) Next() (int, bool) {
	if (r.step > 0 && r.cur >= r.stop) || (r.step < 0 && r.cur <= r.stop) {
		return 0, false
	}
	v := r.cur
	r.cur += r.step
	return v, true
}

// Close implements streams.Producer
func (r *intRange) Close() {
	r.cur = r.stop
}
