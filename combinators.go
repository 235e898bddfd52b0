package streams

// Zip pairs the elements of two streams positionally, stopping at the
// shorter input; the classification is the more restrictive of the two. With
// Params.Strict the zip fails with a STRICT error when one input exhausts
// while the other still yields.
func Zip[A any, B any](a *Stream[A], b *Stream[B], params ...Params) *Stream[Pair[A, B]] {
	p := applyParams(params...)
	out := &Stream[Pair[A, B]]{
		closeFn: func() { a.Close(); b.Close() },
		length:  MinLen(a.length, b.length),
	}
	out.pull = func() (item[Pair[A, B]], error, bool) {
		av, aerr, aok := a.nextValue()
		if aerr != nil {
			return item[Pair[A, B]]{}, aerr, false
		}
		if !aok {
			if p.Strict {
				_, berr, bok := b.nextValue()
				if berr != nil {
					return item[Pair[A, B]]{}, berr, false
				}
				if bok {
					return item[Pair[A, B]]{}, newStrictError("Zip"), false
				}
			}
			return item[Pair[A, B]]{}, nil, false
		}
		bv, berr, bok := b.nextValue()
		if berr != nil {
			return item[Pair[A, B]]{}, berr, false
		}
		if !bok {
			if p.Strict {
				return item[Pair[A, B]]{}, newStrictError("Zip"), false
			}
			return item[Pair[A, B]]{}, nil, false
		}
		return item[Pair[A, B]]{val: Pair[A, B]{First: av, Second: bv}}, nil, true
	}
	return out
}

// ZipLongest pairs the elements of two streams positionally, running to the
// longer input; an exhausted side is padded with its fill value. The
// classification is the less restrictive of the two.
func ZipLongest[A any, B any](a *Stream[A], b *Stream[B], fillA A, fillB B) *Stream[Pair[A, B]] {
	out := &Stream[Pair[A, B]]{
		closeFn: func() { a.Close(); b.Close() },
		length:  MaxLen(a.length, b.length),
	}
	out.pull = func() (item[Pair[A, B]], error, bool) {
		av, aerr, aok := a.nextValue()
		if aerr != nil {
			return item[Pair[A, B]]{}, aerr, false
		}
		bv, berr, bok := b.nextValue()
		if berr != nil {
			return item[Pair[A, B]]{}, berr, false
		}
		if !aok && !bok {
			return item[Pair[A, B]]{}, nil, false
		}
		if !aok {
			av = fillA
		}
		if !bok {
			bv = fillB
		}
		return item[Pair[A, B]]{val: Pair[A, B]{First: av, Second: bv}}, nil, true
	}
	return out
}

// RoundRobin interleaves single elements from each input in round order,
// stopping as soon as the input whose turn it is exhausts. The
// classification folds MinLen across the inputs.
func RoundRobin[T any](ss ...*Stream[T]) *Stream[T] {
	return roundRobin("RoundRobin", false, ss)
}

// RoundRobinStrict is RoundRobin, but fails with a STRICT error when the
// inputs have different lengths.
func RoundRobinStrict[T any](ss ...*Stream[T]) *Stream[T] {
	return roundRobin("RoundRobinStrict", true, ss)
}

func roundRobin[T any](op string, strict bool, ss []*Stream[T]) *Stream[T] {
	if len(ss) == 0 {
		panic(newValidationError(op, "at least one input stream required"))
	}
	length := ss[0].length
	for _, s := range ss[1:] {
		length = MinLen(length, s.length)
	}
	idx := 0
	out := &Stream[T]{
		closeFn: func() { closeAll(ss) },
		length:  length,
	}
	out.pull = func() (item[T], error, bool) {
		v, err, ok := ss[idx].nextValue()
		if err != nil {
			return item[T]{}, err, false
		}
		if !ok {
			if strict {
				// Equal lengths exhaust at the top of a round. A mid-round
				// exhaustion means the earlier inputs already yielded an
				// extra element, so the lengths cannot match.
				if idx != 0 {
					return item[T]{}, newStrictError(op), false
				}
				for _, other := range ss[1:] {
					_, oerr, ook := other.nextValue()
					if oerr != nil {
						return item[T]{}, oerr, false
					}
					if ook {
						return item[T]{}, newStrictError(op), false
					}
				}
			}
			return item[T]{}, nil, false
		}
		idx = (idx + 1) % len(ss)
		return item[T]{val: v}, nil, true
	}
	return out
}

// RoundRobinLongest interleaves single elements from each input in round
// order, running until every input is exhausted; exhausted inputs are padded
// with fill for their turns. The classification folds MaxLen across the
// inputs.
func RoundRobinLongest[T any](fill T, ss ...*Stream[T]) *Stream[T] {
	if len(ss) == 0 {
		panic(newValidationError("RoundRobinLongest", "at least one input stream required"))
	}
	length := ss[0].length
	for _, s := range ss[1:] {
		length = MaxLen(length, s.length)
	}
	exhausted := make([]bool, len(ss))
	var buf []T
	pos := 0
	out := &Stream[T]{
		closeFn: func() { closeAll(ss) },
		length:  length,
	}
	out.pull = func() (item[T], error, bool) {
		for {
			if pos < len(buf) {
				v := buf[pos]
				pos++
				return item[T]{val: v}, nil, true
			}
			// One element per input makes a round; a round with no live
			// input ends the stream, so fills never trail past the data.
			round := make([]T, len(ss))
			live := false
			for i, s := range ss {
				round[i] = fill
				if exhausted[i] {
					continue
				}
				v, err, ok := s.nextValue()
				if err != nil {
					return item[T]{}, err, false
				}
				if !ok {
					exhausted[i] = true
					continue
				}
				round[i] = v
				live = true
			}
			if !live {
				return item[T]{}, nil, false
			}
			buf, pos = round, 0
		}
	}
	return out
}

// Chain concatenates the inputs sequentially. A non-last Infinite input is
// rejected eagerly with an UNLIMITED error, before any consumption; the
// classification folds MaxLen across the inputs.
func Chain[T any](ss ...*Stream[T]) *Stream[T] {
	if len(ss) == 0 {
		panic(newValidationError("Chain", "at least one input stream required"))
	}
	for _, s := range ss[:len(ss)-1] {
		if s.length == LenInfinite {
			panic(newUnlimitedError("Chain"))
		}
	}
	length := ss[0].length
	for _, s := range ss[1:] {
		length = MaxLen(length, s.length)
	}
	cur := 0
	out := &Stream[T]{
		closeFn: func() { closeAll(ss) },
		length:  length,
	}
	out.pull = func() (item[T], error, bool) {
		for cur < len(ss) {
			v, err, ok := ss[cur].nextValue()
			if err != nil {
				return item[T]{}, err, false
			}
			if ok {
				return item[T]{val: v}, nil, true
			}
			cur++
		}
		return item[T]{}, nil, false
	}
	return out
}

// Operate applies a binary function across positionally paired elements;
// sugar over Zip plus Map, sharing both stages' Params (Strict for the
// pairing, OnError for the evaluation, defaulting to Keep).
func Operate[A any, B any, C any](fn func(A, B) (C, error), a *Stream[A], b *Stream[B], params ...Params) *Stream[C] {
	return Map(Zip(a, b, params...), func(p Pair[A, B]) (C, error) {
		return fn(p.First, p.Second)
	}, params...)
}

// OperatePair is Operate for functions that take the pair as a single
// argument.
func OperatePair[A any, B any, C any](fn func(Pair[A, B]) (C, error), a *Stream[A], b *Stream[B], params ...Params) *Stream[C] {
	return Map(Zip(a, b, params...), fn, params...)
}

func closeAll[T any](ss []*Stream[T]) {
	for _, s := range ss {
		s.Close()
	}
}
