package parse

import (
	"fmt"
	"slices"

	"github.com/dhamidi/parsec/result"
)

// Result is the outcome of a single parser invocation.
//
// A failed Result with Consumed() == 0 is recoverable: an enclosing Alt may
// try its next branch. A failed Result with Consumed() > 0 is fatal: the
// parse committed past a decision point and the failure must propagate.
//
// A successful Result may still carry expectations. They describe what could
// have matched at zero cost (for example another iteration of Many0) and are
// kept for diagnostics only.
//
// Results are values and are never modified after construction.
type Result[T any] struct {
	value    T
	ok       bool
	consumed int
	expected []string
}

// Tuple is the value produced by sequencing two parsers.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Ok returns a success that consumed n bytes.
func Ok[T any](value T, n int) Result[T] {
	return Result[T]{value: value, ok: true, consumed: n}
}

// OkExpecting returns a success that retains an expected set.
func OkExpecting[T any](value T, n int, expected []string) Result[T] {
	return Result[T]{value: value, ok: true, consumed: n, expected: union(nil, expected)}
}

// Expected returns a recoverable failure.
func Expected[T any](alternatives ...string) Result[T] {
	return Result[T]{expected: union(nil, alternatives)}
}

// Fatal returns a failure after n bytes were committed. Fatal with n == 0 is
// indistinguishable from Expected.
func Fatal[T any](n int, alternatives ...string) Result[T] {
	return Result[T]{consumed: n, expected: union(nil, alternatives)}
}

func (r Result[T]) IsOk() bool  { return r.ok }
func (r Result[T]) IsErr() bool { return !r.ok }

// IsFatal reports whether r failed after consuming input.
func (r Result[T]) IsFatal() bool {
	return !r.ok && r.consumed > 0
}

// Value returns the parsed value and whether the parse succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Consumed is the number of input bytes matched, or on failure the number of
// bytes committed before the failure point.
func (r Result[T]) Consumed() int {
	return r.consumed
}

// Expectations returns a copy of the expected set in insertion order.
func (r Result[T]) Expectations() []string {
	return slices.Clone(r.expected)
}

// Expect replaces the expected set of a recoverable failure with label.
// Successes and fatal failures are returned unchanged.
func (r Result[T]) Expect(label string) Result[T] {
	if r.ok || r.consumed > 0 {
		return r
	}
	return Expected[T](label)
}

// Or combines two attempts at the same position. It only looks at other when
// r is a recoverable failure: a success or fatal other wins, two recoverable
// failures merge their expected sets.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.ok || r.consumed > 0 {
		return r
	}
	if other.ok || other.consumed > 0 {
		return other
	}
	return Result[T]{expected: union(r.expected, other.expected)}
}

// ToResult converts r into the terminal form.
func (r Result[T]) ToResult() result.Result[T, *Error] {
	if r.ok {
		return result.Ok[T, *Error](r.value)
	}
	return result.Err[T](&Error{Expected: slices.Clone(r.expected), Offset: r.consumed})
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v, consumed=%d, expected=%q)", r.value, r.consumed, r.expected)
	}
	if r.consumed > 0 {
		return fmt.Sprintf("Fatal(consumed=%d, expected=%q)", r.consumed, r.expected)
	}
	return fmt.Sprintf("Expected(%q)", r.expected)
}

// MapResult transforms the value of a success. Failures keep their consumed
// count and expected set.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return FailAs[U](r)
	}
	return Result[U]{value: f(r.value), ok: true, consumed: r.consumed, expected: r.expected}
}

// TryMapResult transforms the value of a success with a conversion that may
// reject it. A rejection becomes a recoverable failure expecting the reason.
func TryMapResult[T, U any](r Result[T], f func(T) result.Result[U, string]) Result[U] {
	if !r.ok {
		return FailAs[U](r)
	}
	mapped := f(r.value)
	if reason, failed := mapped.Failure(); failed {
		return Expected[U](reason)
	}
	value, _ := mapped.Value()
	return Result[U]{value: value, ok: true, consumed: r.consumed, expected: r.expected}
}

// FailAs retypes a failure. It panics when r is a success.
func FailAs[U, T any](r Result[T]) Result[U] {
	if r.ok {
		panic("parse: FailAs called on a successful result")
	}
	return Result[U]{consumed: r.consumed, expected: r.expected}
}

// And sequences two results where b was produced from the input left over by
// a. Once b has consumed input its expectations replace a's; otherwise both
// sets stay relevant and are merged.
func And[A, B any](a Result[A], b Result[B]) Result[Tuple[A, B]] {
	if !a.ok {
		return FailAs[Tuple[A, B]](a)
	}

	expected := b.expected
	if b.consumed == 0 {
		expected = union(a.expected, b.expected)
	}

	out := Result[Tuple[A, B]]{
		consumed: a.consumed + b.consumed,
		expected: expected,
	}
	if b.ok {
		out.ok = true
		out.value = Tuple[A, B]{First: a.value, Second: b.value}
	}
	return out
}

// union returns a fresh slice holding a followed by the members of b not in
// a. It returns nil when both are empty.
func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
