package streams

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Filter yields the elements for which pred returns true, or false when
// Params.Exclude is set. The classification is unchanged: filtering an
// infinite stream may still be infinite. Errors from pred follow the
// Params.OnError policy (default Raise).
func (s *Stream[T]) Filter(pred Filter[T], params ...Params) *Stream[T] {
	p := applyParams(params...)
	onErr := p.resolve("Filter", Raise)
	keep := !p.Exclude
	return wrap(s, s.length, func() (item[T], error, bool) {
		for {
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			pass, perr := pred(v)
			if perr != nil {
				switch onErr {
				case Raise:
					return item[T]{}, perr, false
				case Discard:
					continue
				case Stop:
					s.Close()
					return item[T]{}, nil, false
				default: // Keep: keep the element despite the failing predicate
					return item[T]{val: v}, nil, true
				}
			}
			if pass == keep {
				return item[T]{val: v}, nil, true
			}
		}
	})
}

// Slice yields every step-th element of the index interval [start, stop). A
// negative stop means no upper bound. Bounds are validated eagerly; a bounded
// stop forces a Finite classification and closes the upstream once reached.
func (s *Stream[T]) Slice(start, stop, step int) *Stream[T] {
	if step < 1 {
		panic(newValidationError("Slice", "step must be 1 or greater"))
	}
	if start < 0 {
		panic(newValidationError("Slice", "start must not be negative"))
	}
	if stop >= 0 && start > stop {
		panic(newValidationError("Slice", "start must not exceed stop"))
	}
	length := s.length
	if stop >= 0 {
		length = LenFinite
	}
	i := 0
	return wrap(s, length, func() (item[T], error, bool) {
		for {
			if stop >= 0 && i >= stop {
				s.Close()
				return item[T]{}, nil, false
			}
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			idx := i
			i++
			if idx < start {
				continue
			}
			if (idx-start)%step == 0 {
				return item[T]{val: v}, nil, true
			}
		}
	})
}

// Skip drops the first n elements.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	if n < 0 {
		panic(newValidationError("Skip", "count must not be negative"))
	}
	skipped := 0
	return wrap(s, s.length, func() (item[T], error, bool) {
		for skipped < n {
			_, err, ok := s.next()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			skipped++
		}
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return item[T]{}, err, false
		}
		return item[T]{val: v}, nil, true
	})
}

// Limit yields at most n elements and forces a Finite classification. The
// upstream producer is closed as soon as the nth element is yielded, not
// merely left unpulled.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	if n < 0 {
		panic(newValidationError("Limit", "count must not be negative"))
	}
	i := 0
	return wrap(s, LenFinite, func() (item[T], error, bool) {
		if i >= n {
			s.Close()
			return item[T]{}, nil, false
		}
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return item[T]{}, err, false
		}
		i++
		if i >= n {
			s.Close()
		}
		return item[T]{val: v}, nil, true
	})
}

// StopWhen terminates the stream at the first element satisfying pred; with
// Params.Inclusive the matching element is yielded first. An Infinite
// classification degrades to Unknown, since the predicate may never fire.
// Errors from pred follow Params.OnError (default Raise); the Stop policy
// honors Inclusive for the failing element as well.
func (s *Stream[T]) StopWhen(pred Filter[T], params ...Params) *Stream[T] {
	p := applyParams(params...)
	onErr := p.resolve("StopWhen", Raise)
	length := s.length
	if length == LenInfinite {
		length = LenUnknown
	}
	stopped := false
	return wrap(s, length, func() (item[T], error, bool) {
		for {
			if stopped {
				s.Close()
				return item[T]{}, nil, false
			}
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			match, perr := pred(v)
			if perr != nil {
				switch onErr {
				case Raise:
					return item[T]{}, perr, false
				case Discard:
					continue
				case Stop:
					stopped = true
					if p.Inclusive {
						return item[T]{val: v}, nil, true
					}
					s.Close()
					return item[T]{}, nil, false
				default: // Keep
					return item[T]{val: v}, nil, true
				}
			}
			if match {
				stopped = true
				if p.Inclusive {
					return item[T]{val: v}, nil, true
				}
				s.Close()
				return item[T]{}, nil, false
			}
			return item[T]{val: v}, nil, true
		}
	})
}

// Distinct yields each element once, tracking seen elements by equality.
// It rejects an Infinite-classified stream eagerly, since full distinctness
// cannot be bounded.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	if s.length == LenInfinite {
		panic(newUnlimitedError("Distinct"))
	}
	seen := hashset.New()
	return wrap(s, s.length, func() (item[T], error, bool) {
		for {
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			if seen.Contains(v) {
				continue
			}
			seen.Add(v)
			return item[T]{val: v}, nil, true
		}
	})
}

// Enumerate pairs each element with its zero-based index.
func Enumerate[T any](s *Stream[T]) *Stream[Indexed[T]] {
	i := 0
	return wrap(s, s.length, func() (item[Indexed[T]], error, bool) {
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return item[Indexed[T]]{}, err, false
		}
		ix := Indexed[T]{Index: i, Val: v}
		i++
		return item[Indexed[T]]{val: ix}, nil, true
	})
}

// Denumerate strips the index added by Enumerate.
func Denumerate[T any](s *Stream[Indexed[T]]) *Stream[T] {
	return wrap(s, s.length, func() (item[T], error, bool) {
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return item[T]{}, err, false
		}
		return item[T]{val: v.Val}, nil, true
	})
}

// Replace substitutes every element equal to old with repl, one to one.
func Replace[T comparable](s *Stream[T], old, repl T) *Stream[T] {
	return wrap(s, s.length, func() (item[T], error, bool) {
		v, err, ok := s.nextValue()
		if err != nil || !ok {
			return item[T]{}, err, false
		}
		if v == old {
			v = repl
		}
		return item[T]{val: v}, nil, true
	})
}

// ReplaceWith applies the with function to the elements selected by when,
// passing the rest through unchanged. As an evaluation stage its OnError
// default is Keep: a failing element travels on as a Failure.
func (s *Stream[T]) ReplaceWith(when Filter[T], with Processor[T], params ...Params) *Stream[T] {
	p := applyParams(params...)
	onErr := p.resolve("ReplaceWith", Keep)
	return wrap(s, s.length, func() (item[T], error, bool) {
		for {
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			match, perr := when(v)
			if perr == nil && !match {
				return item[T]{val: v}, nil, true
			}
			if perr == nil {
				var out T
				out, perr = with(v)
				if perr == nil {
					return item[T]{val: out}, nil, true
				}
			}
			switch onErr {
			case Raise:
				return item[T]{}, perr, false
			case Discard:
				continue
			case Stop:
				s.Close()
				return item[T]{}, nil, false
			default: // Keep
				return item[T]{fail: &Failure{Err: perr, Val: v}}, nil, true
			}
		}
	})
}

// Eval applies fn to every element. The OnError default is Keep: a failing
// element is wrapped into a Failure that flows downstream as data until an
// Exc stage consumes it or a terminal re-raises it.
func (s *Stream[T]) Eval(fn Processor[T], params ...Params) *Stream[T] {
	return evalStage(s, "Eval", Transformer[T, T](fn), params...)
}

// Map applies fn to every element, producing a stream of a new type. It is
// package level because Go methods cannot introduce type parameters; in
// every other respect it is Eval.
func Map[T any, U any](s *Stream[T], fn Transformer[T, U], params ...Params) *Stream[U] {
	return evalStage(s, "Map", fn, params...)
}

func evalStage[T any, U any](s *Stream[T], op string, fn Transformer[T, U], params ...Params) *Stream[U] {
	p := applyParams(params...)
	onErr := p.resolve(op, Keep)
	return wrap(s, s.length, func() (item[U], error, bool) {
		for {
			v, err, ok := s.nextValue()
			if err != nil || !ok {
				return item[U]{}, err, false
			}
			out, ferr := fn(v)
			if ferr == nil {
				return item[U]{val: out}, nil, true
			}
			switch onErr {
			case Raise:
				return item[U]{}, ferr, false
			case Discard:
				continue
			case Stop:
				s.Close()
				return item[U]{}, nil, false
			default: // Keep
				return item[U]{fail: &Failure{Err: ferr, Val: v}}, nil, true
			}
		}
	})
}

type excAction int

const (
	excDiscard excAction = iota
	excReplace
	excWith
	excStop
)

// ExcDiscard drops every element whose deferred Failure matches match.
// Non-matching failures and normal elements pass through unchanged. The Exc
// stages are the only ones that consume a Failure without re-raising it.
func (s *Stream[T]) ExcDiscard(match func(error) bool) *Stream[T] {
	var zero T
	return s.excStage("ExcDiscard", match, excDiscard, zero, nil)
}

// ExcReplace substitutes a constant for every element whose deferred Failure
// matches match.
func (s *Stream[T]) ExcReplace(match func(error) bool, repl T) *Stream[T] {
	return s.excStage("ExcReplace", match, excReplace, repl, nil)
}

// ExcWith substitutes fn(original element) for every element whose deferred
// Failure matches match. The original element is presented as any, since it
// predates the transform that failed.
func (s *Stream[T]) ExcWith(match func(error) bool, fn func(any) T) *Stream[T] {
	var zero T
	if fn == nil {
		panic(newValidationError("ExcWith", "nil replacement function"))
	}
	return s.excStage("ExcWith", match, excWith, zero, fn)
}

// ExcStop ends the stream at the first element whose deferred Failure
// matches match.
func (s *Stream[T]) ExcStop(match func(error) bool) *Stream[T] {
	var zero T
	return s.excStage("ExcStop", match, excStop, zero, nil)
}

func (s *Stream[T]) excStage(op string, match func(error) bool, action excAction, repl T, fn func(any) T) *Stream[T] {
	if match == nil {
		panic(newValidationError(op, "nil matcher"))
	}
	return wrap(s, s.length, func() (item[T], error, bool) {
		for {
			it, err, ok := s.next()
			if err != nil || !ok {
				return item[T]{}, err, false
			}
			if it.fail == nil || !match(it.fail.Err) {
				return it, nil, true
			}
			switch action {
			case excDiscard:
				continue
			case excReplace:
				return item[T]{val: repl}, nil, true
			case excWith:
				return item[T]{val: fn(it.fail.Val)}, nil, true
			default: // excStop
				s.Close()
				return item[T]{}, nil, false
			}
		}
	})
}
