package option

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/parsec/result"
)

func TestAccessors(t *testing.T) {
	some, none := Some(2), None[int]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())

	v, ok := some.Get()
	assert.Equal(t, 2, v)
	assert.True(t, ok)

	assert.Equal(t, 9, none.UnwrapOr(9))
	assert.Equal(t, 8, none.UnwrapOrElse(func() int { return 8 }))
	assert.Equal(t, some, none.Or(some))
	assert.Equal(t, some, some.OrElse(func() Option[int] { return Some(5) }))
	assert.Equal(t, "Some(2)", some.String())
	assert.Equal(t, "None", none.String())
}

func TestCombinators(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.Equal(t, None[int](), Map(None[int](), double))
	assert.Equal(t, Some("x"), And(Some(1), Some("x")))
	assert.Equal(t, None[string](), And(None[int](), Some("x")))
	assert.Equal(t, None[int](), AndThen(Some(1), func(int) Option[int] { return None[int]() }))
}

func TestResultConversion(t *testing.T) {
	assert.Equal(t, result.Ok[int, string](1), OkOr(Some(1), "missing"))
	assert.Equal(t, result.Err[int]("missing"), OkOr(None[int](), "missing"))
	assert.Equal(t, result.Err[int]("lazy"), OkOrElse(None[int](), func() string { return "lazy" }))

	assert.Equal(t, result.Ok[Option[int], string](Some(1)), Transpose(Some(result.Ok[int, string](1))))
	assert.Equal(t, result.Err[Option[int]]("bad"), Transpose(Some(result.Err[int]("bad"))))
	assert.Equal(t, result.Ok[Option[int], string](None[int]()), Transpose(None[result.Result[int, string]]()))
}
