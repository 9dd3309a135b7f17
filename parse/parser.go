package parse

import (
	"sync"

	"github.com/dhamidi/parsec/result"
)

// Parser turns input into a Result. Parsers hold no state: calling one twice
// with the same input gives equal results, and a Parser may be shared between
// goroutines freely.
type Parser[T any] func(input string) Result[T]

// New wraps a plain function as a Parser.
func New[T any](fn func(input string) Result[T]) Parser[T] {
	return Parser[T](fn)
}

// Parse runs p on input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// Expect makes p report label instead of its own expected set when it fails
// without consuming input.
func (p Parser[T]) Expect(label string) Parser[T] {
	return func(input string) Result[T] {
		return p(input).Expect(label)
	}
}

// Map applies f to the value p produces.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) Result[U] {
		return MapResult(p(input), f)
	}
}

// TryMap applies a conversion that may reject p's value. A rejected value
// fails recoverably, expecting the rejection reason.
func TryMap[T, U any](p Parser[T], f func(T) result.Result[U, string]) Parser[U] {
	return func(input string) Result[U] {
		return TryMapResult(p(input), f)
	}
}

// Value replaces the value of a successful parse with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Lazy defers building a parser until it is first needed, which allows a
// grammar to refer to itself.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return func(input string) Result[T] {
		return get()(input)
	}
}
