package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec/result"
)

// Tag matches the literal lit.
func Tag(lit string) Parser[string] {
	return func(input string) Result[string] {
		if strings.HasPrefix(input, lit) {
			return Ok(lit, len(lit))
		}
		return Expected[string](lit)
	}
}

// Regex matches pattern (RE2 syntax) at the start of the input and yields
// the matched text. The pattern is reported verbatim as the expectation on a
// mismatch. Regex panics if the pattern does not compile.
func Regex(pattern string) Parser[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return func(input string) Result[string] {
		loc := re.FindStringIndex(input)
		if loc == nil {
			return Expected[string](pattern)
		}
		return Ok(input[:loc[1]], loc[1])
	}
}

// EOF matches the end of the input without consuming anything.
var EOF Parser[struct{}] = func(input string) Result[struct{}] {
	if input == "" {
		return Ok(struct{}{}, 0)
	}
	return Expected[struct{}]("EOF")
}

const (
	decimalPattern = `[0-9]+`
	hexPattern     = `[0-9A-Fa-f]+`
)

var (
	// Uint matches a decimal number without sign or leading zeros.
	Uint = integer(decimalPattern, "nonnegative integer", func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})

	// Int is Uint with an optional leading minus.
	Int = integer(`-?`+decimalPattern, "integer", func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})

	// Hex matches hexadecimal digits without sign, prefix or leading zeros.
	Hex = integer(hexPattern, "nonnegative hexadecimal", func(s string) (uint64, error) {
		return strconv.ParseUint(s, 16, 64)
	})

	// SignedHex is Hex with an optional leading minus.
	SignedHex = integer(`-?`+hexPattern, "hexadecimal", func(s string) (int64, error) {
		return strconv.ParseInt(s, 16, 64)
	})
)

// integer matches pattern and converts the text with conv. Digits with a
// leading zero, and text that does not fit the target type, fail like any
// other mismatch.
func integer[T any](pattern, label string, conv func(string) (T, error)) Parser[T] {
	return TryMap(Regex(pattern), func(s string) result.Result[T, string] {
		if digits := strings.TrimPrefix(s, "-"); len(digits) > 1 && digits[0] == '0' {
			return result.Err[T](label + " with leading zero")
		}
		v, err := conv(s)
		if err != nil {
			return result.Err[T](label + " out of range")
		}
		return result.Ok[T, string](v)
	}).Expect(label)
}
