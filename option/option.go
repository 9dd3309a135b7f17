// Package option provides a presence/absence container.
package option

import (
	"fmt"

	"github.com/dhamidi/parsec/result"
)

// Option holds a value of type T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// And returns other if o is present.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

func OkOr[T, E any](o Option[T], err E) result.Result[T, E] {
	if !o.some {
		return result.Err[T](err)
	}
	return result.Ok[T, E](o.value)
}

func OkOrElse[T, E any](o Option[T], f func() E) result.Result[T, E] {
	if !o.some {
		return result.Err[T](f())
	}
	return result.Ok[T, E](o.value)
}

// Transpose turns an optional result into a result of an option. None maps
// to Ok(None).
func Transpose[T, E any](o Option[result.Result[T, E]]) result.Result[Option[T], E] {
	if !o.some {
		return result.Ok[Option[T], E](None[T]())
	}
	return result.Map(o.value, Some[T])
}
