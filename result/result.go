// Package result provides a two-variant success/failure container.
//
// Methods that change the value type are free functions because Go methods
// cannot declare their own type parameters.
package result

import "fmt"

// Result holds either a value of type T or an error of type E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// Of converts a Go (value, error) pair.
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) IsOk() bool  { return r.ok }
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Value returns the success value and whether there was one.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the failure value and whether there was one.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

// Unpack returns both halves; the unused one is the zero value.
func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.err
}

// Unwrap returns the success value and panics on failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Unwrap called on Err(%v)", r.err))
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

// Or returns r if it succeeded and other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.value))
}

func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

// And returns other if r succeeded, otherwise r's error.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return other
}

func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}
