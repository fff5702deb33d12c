package sim

import (
	"fmt"
	"iter"
)

// Lazy sequence helpers used to assemble tree layers. None of them buffer
// more than one group, so an unbounded source is only pulled as far as the
// consumer ranges.

// Batch splits seq into consecutive groups of size elements. The final group
// holds whatever is left after the last full group and may be shorter.
// A non-positive size fails immediately, before seq is touched.
func Batch[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, size)
	}
	return func(yield func([]T) bool) {
		group := make([]T, 0, size)
		for v := range seq {
			group = append(group, v)
			if len(group) == size {
				if !yield(group) {
					return
				}
				group = make([]T, 0, size)
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}, nil
}

// Generate returns an unbounded sequence of successive next() results.
func Generate[T any](next func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(next()) {
				return
			}
		}
	}
}

// Zip pairs elements of a and b positionally, stopping when either runs out.
// Each element of a is pulled before its partner from b.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok {
				return
			}
			if !yield(va, vb) {
				return
			}
		}
	}
}

// Sequential returns the unbounded sequence start, start+1, start+2, ...
func Sequential(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Map applies fn to every element of seq as it is pulled.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Tap runs fn on every element as it is pulled, then passes the element on.
func Tap[T any](seq iter.Seq[T], fn func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// First pulls a single element from seq.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}
