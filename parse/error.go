package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrZeroWidth is raised (as a panic) when a repetition combinator is given
// a parser that succeeded without consuming input. It marks a broken parser
// definition, not bad input.
var ErrZeroWidth = errors.New("parse: repetition of a zero-width parser")

// Error is the terminal form of a failed parse.
type Error struct {
	// Expected lists what would have allowed the parse to continue.
	Expected []string
	// Offset is the byte offset of the failure point: the bytes consumed
	// before the failure, or for input that parsed but was not fully
	// consumed, the offset of the first unconsumed byte. It counts from the
	// start of the input, so the number of bytes left over is
	// len(input) - Offset; Remaining returns those bytes.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, DescribeExpected(e.Expected))
}

// Remaining returns the part of input that was not consumed.
func (e *Error) Remaining(input string) string {
	if e.Offset >= len(input) {
		return ""
	}
	return input[e.Offset:]
}

// DescribeExpected renders an expected set for humans.
func DescribeExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "unexpected input"
	case 1:
		return "expected " + strconv.Quote(expected[0])
	}
	quoted := make([]string, len(expected))
	for i, s := range expected {
		quoted[i] = strconv.Quote(s)
	}
	return "expected one of " + strings.Join(quoted, ", ")
}
