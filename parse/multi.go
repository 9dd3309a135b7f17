package parse

import (
	"fmt"

	"github.com/dhamidi/parsec/option"
	"github.com/dhamidi/parsec/result"
)

// Opt makes p optional. When p fails without consuming input, Opt succeeds
// with None and keeps p's expected set. Fatal failures of p still fail.
func Opt[T any](p Parser[T]) Parser[option.Option[T]] {
	return func(input string) Result[option.Option[T]] {
		r := p(input)
		switch {
		case r.ok:
			return MapResult(r, option.Some[T])
		case r.consumed == 0:
			return OkExpecting(option.None[T](), 0, r.expected)
		default:
			return FailAs[option.Option[T]](r)
		}
	}
}

// Many0 matches p zero or more times.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Map(Opt(Many1(p)), func(o option.Option[[]T]) []T {
		return o.UnwrapOr([]T{})
	})
}

// Many1 matches p one or more times. It stops at the first recoverable
// failure of p and fails as a whole on a fatal one.
//
// p must consume input whenever it succeeds; Many1 panics with ErrZeroWidth
// otherwise.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var values []T
		offset := 0
		for {
			r := p(input[offset:])
			if !r.ok {
				if r.consumed > 0 {
					return Fatal[[]T](offset+r.consumed, r.expected...)
				}
				if len(values) == 0 {
					return Expected[[]T](r.expected...)
				}
				return OkExpecting(values, offset, r.expected)
			}
			if r.consumed == 0 {
				panic(fmt.Errorf("%w: matched nothing at offset %d", ErrZeroWidth, offset))
			}
			values = append(values, r.value)
			offset += r.consumed
		}
	}
}

// Pair matches a then b. Once a has matched, a failure of b is fatal.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Tuple[A, B]] {
	return func(input string) Result[Tuple[A, B]] {
		ra := a(input)
		if !ra.ok {
			return FailAs[Tuple[A, B]](ra)
		}
		return And(ra, b(input[ra.consumed:]))
	}
}

// SeparatedPair matches a, sep and b and keeps the values of a and b.
func SeparatedPair[A, S, B any](a Parser[A], sep Parser[S], b Parser[B]) Parser[Tuple[A, B]] {
	return Pair(Terminated(a, sep), b)
}

// Terminated matches a then b and keeps a's value.
func Terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Pair(a, b), func(t Tuple[A, B]) A { return t.First })
}

// Preceded matches a then b and keeps b's value.
func Preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Pair(a, b), func(t Tuple[A, B]) B { return t.Second })
}

// Delimited matches start, p and end and keeps p's value.
func Delimited[S, T, E any](start Parser[S], p Parser[T], end Parser[E]) Parser[T] {
	return Preceded(start, Terminated(p, end))
}

// Alt tries each parser in order at the same position. The first success or
// fatal failure is returned as is. If every parser fails recoverably, their
// expected sets are merged in order.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		var acc Result[T]
		for _, p := range parsers {
			acc = acc.Or(p(input))
			if acc.ok || acc.consumed > 0 {
				return acc
			}
		}
		return acc
	}
}

// Completed requires p to match all of the input.
func Completed[T any](p Parser[T]) func(input string) result.Result[T, *Error] {
	whole := Terminated(p, EOF)
	return func(input string) result.Result[T, *Error] {
		return whole(input).ToResult()
	}
}
