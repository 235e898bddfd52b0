package streams

// Processor is a user defined function type applied to each element of a
// Stream without changing its type
type Processor[T any] func(T) (T, error)

// Transformer is a user defined function type that maps an element to a new
// type
type Transformer[T any, U any] func(T) (U, error)

// Filter is a user defined predicate type used by the selective stages
type Filter[T any] func(T) (bool, error)

// Number constrains the numeric terminal operations
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Pair holds one element from each side of a zipped stream
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Indexed pairs an element with its zero-based position, as produced by
// Enumerate and consumed by Denumerate.
type Indexed[T any] struct {
	Index int
	Val   T
}

// item is the element union flowing through a stream: a normal value or a
// deferred Failure.
type item[T any] struct {
	val  T
	fail *Failure
}

// puller produces the next item of a lazily evaluated stage. A non-nil error
// aborts the stream; ok == false signals clean exhaustion.
type puller[T any] func() (item[T], error, bool)
