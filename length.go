package streams

import "fmt"

// Len classifies what is statically known about a stream's cardinality.
// The ordering LenFinite < LenUnknown < LenInfinite is the "could still be
// shorter" ordering: combinators that stop at the shorter input take the
// minimum, combinators that run to the longer input take the maximum.
type Len int

const (
	LenFinite Len = iota
	LenUnknown
	LenInfinite
)

// String converts a Len enum into a string value
func (l Len) String() string {
	switch l {
	case LenFinite:
		return "FINITE"
	case LenUnknown:
		return "UNKNOWN"
	case LenInfinite:
		return "INFINITE"
	}
	return fmt.Sprintf("Len(%d)", int(l))
}

func (l Len) valid() bool {
	return l >= LenFinite && l <= LenInfinite
}

// MinLen combines two classifications for a combinator that stops at the
// shorter input, taking the more restrictive of the two.
func MinLen(a, b Len) Len {
	return min(a, b)
}

// MaxLen combines two classifications for a combinator that runs to the
// longer input, taking the less restrictive of the two.
func MaxLen(a, b Len) Len {
	return max(a, b)
}
