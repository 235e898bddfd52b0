// Package streams provides lazy, chainable sequence processing over any
// producer of values.
//
// A Stream wraps a single upstream producer together with a length
// classification (Finite, Unknown, Infinite). Intermediate operations such
// as Filter, Eval, Limit or Zip compose without evaluating anything;
// terminal operations such as Collect, Sum or Report drive consumption,
// pulling exactly the elements needed. Infinite streams are first class:
// operations that would require full consumption reject them up front with
// an UNLIMITED error instead of hanging.
//
// Errors raised by user functions during lazy evaluation follow a per-stage
// policy (Raise, Discard, Stop or Keep). Under Keep the failure travels
// downstream as data, wrapped in a Failure together with the element that
// produced it, until an Exc stage consumes it or a terminal re-raises it.
//
// Below is an example that sums the inverses of the first ten thousand
// counting numbers, discarding elements whose evaluation failed:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/elastiflow/streams"
//		"github.com/elastiflow/streams/evals"
//		"github.com/elastiflow/streams/sources"
//	)
//
//	func main() {
//		inverses := streams.Map(
//			sources.Counter(),
//			evals.Inv,
//		).ExcDiscard(
//			streams.MatchErr(evals.ErrDivisionByZero),
//		).Limit(10_000)
//
//		total, err := streams.Sum(inverses)
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(total)
//	}
//
// A Stream is a single-owner, single-cursor value: intermediate operations
// consume their receiver and return the stream to use next, and a stream
// must not be consumed concurrently. Closing a partially consumed stream
// propagates the close signal once through the whole chain to the source,
// releasing whatever the producer holds.
package streams
