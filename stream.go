package streams

import (
	"sync"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Producer yields successive values for a Stream. Next returns the next
// value and true, or the zero value and false once the producer is
// exhausted. Close releases any resource tied to generation and must be safe
// to call more than once.
type Producer[T any] interface {
	Next() (T, bool)
	Close()
}

// ProducerFunc adapts a plain function to the Producer interface with a
// no-op Close.
type ProducerFunc[T any] func() (T, bool)

// Next implements Producer
func (f ProducerFunc[T]) Next() (T, bool) { return f() }

// Close implements Producer
func (f ProducerFunc[T]) Close() {}

// Stream is a lazy, chainable sequence of values. Nothing is pulled from the
// underlying producer until a terminal operation drives consumption.
//
// Intermediate operations consume their receiver and return a new Stream
// wrapping it; the receiver must not be used again afterwards. A Stream is a
// single-owner, single-cursor value and is not safe for concurrent
// consumption: callers that need to share results must materialize first
// (Collect or Cache).
type Stream[T any] struct {
	pull      puller[T]
	closeFn   func()
	length    Len
	cache     *linkedlistqueue.Queue
	pending   error
	done      bool
	closeOnce sync.Once
}

// New constructs a Stream from a Producer with the given length
// classification. Sources that can report their size without being consumed
// should pass LenFinite; unbounded generators pass LenInfinite; everything
// else passes LenUnknown.
func New[T any](p Producer[T], length Len) *Stream[T] {
	if !length.valid() {
		panic(newValidationError("New", "length classification out of domain"))
	}
	return &Stream[T]{
		pull: func() (item[T], error, bool) {
			v, ok := p.Next()
			return item[T]{val: v}, nil, ok
		},
		closeFn: p.Close,
		length:  length,
	}
}

// Len reports the stream's current length classification.
func (s *Stream[T]) Len() Len {
	return s.length
}

// WithLen overrides the stream's length classification, typically after a
// predicate-driven truncation that the caller knows to be bounding. It
// rejects values outside the three-element domain.
func (s *Stream[T]) WithLen(length Len) *Stream[T] {
	if !length.valid() {
		panic(newValidationError("WithLen", "length classification out of domain"))
	}
	s.length = length
	return s
}

// Close terminates the stream and propagates the close signal to the
// upstream producer exactly once. It is safe to call on an exhausted or
// already-closed stream.
func (s *Stream[T]) Close() {
	s.closeOnce.Do(func() {
		s.done = true
		if s.closeFn != nil {
			s.closeFn()
		}
	})
}

// Cache pulls up to n elements (or the whole stream, if n is omitted) into
// the front-loaded cache, so that subsequent pulls are served from it before
// the producer is consulted again. Calling it with no bound on an
// infinite stream panics with an UNLIMITED error.
func (s *Stream[T]) Cache(n ...int) *Stream[T] {
	limit := -1
	if len(n) > 0 {
		if n[0] < 0 {
			panic(newValidationError("Cache", "cache size must not be negative"))
		}
		limit = n[0]
	} else if s.length == LenInfinite {
		panic(newUnlimitedError("Cache"))
	}
	q := linkedlistqueue.New()
	for limit != 0 {
		it, err, ok := s.next()
		if err != nil {
			s.pending = err
			break
		}
		if !ok {
			break
		}
		q.Enqueue(it)
		if limit > 0 {
			limit--
		}
	}
	s.cache = q
	if s.done && s.pending == nil {
		s.length = LenFinite
	}
	return s
}

// next pulls the next item, serving the cache first. Exhaustion is sticky:
// once the producer signals completion every later call reports completion.
func (s *Stream[T]) next() (item[T], error, bool) {
	if s.cache != nil && !s.cache.Empty() {
		v, _ := s.cache.Dequeue()
		return v.(item[T]), nil, true
	}
	if s.pending != nil {
		err := s.pending
		s.pending = nil
		s.done = true
		return item[T]{}, err, false
	}
	if s.done {
		return item[T]{}, nil, false
	}
	it, err, ok := s.pull()
	if err != nil || !ok {
		s.done = true
		return item[T]{}, err, false
	}
	return it, nil, true
}

// nextValue is next for the stages that cannot handle a deferred Failure:
// encountering one re-raises the original error, aborting the stream.
func (s *Stream[T]) nextValue() (T, error, bool) {
	it, err, ok := s.next()
	if err != nil || !ok {
		var zero T
		return zero, err, false
	}
	if it.fail != nil {
		var zero T
		s.done = true
		return zero, it.fail.Err, false
	}
	return it.val, nil, true
}

// wrap builds the next stage of the chain: a new Stream that pulls from s
// and forwards Close to it.
func wrap[T, U any](s *Stream[T], length Len, pull puller[U]) *Stream[U] {
	return &Stream[U]{
		pull:    pull,
		closeFn: s.Close,
		length:  length,
	}
}
