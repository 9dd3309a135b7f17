package kv

import (
	"fmt"
	"strings"

	"github.com/dhamidi/parsec/parse"
)

// Position is a location in a source text. Line and Column are 1-based and
// Column counts bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionAt converts a byte offset into a Position. Offsets past the end of
// src are clamped.
func PositionAt(src string, offset int) Position {
	offset = max(0, min(offset, len(src)))
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{Offset: offset, Line: line, Column: offset - lineStart + 1}
}

// SyntaxError reports where a document stopped parsing and what was
// expected there.
type SyntaxError struct {
	Position Position
	Expected []string
	cause    *parse.Error
}

func newSyntaxError(src string, perr *parse.Error) *SyntaxError {
	return &SyntaxError{
		Position: PositionAt(src, perr.Offset),
		Expected: perr.Expected,
		cause:    perr,
	}
}

func (e *SyntaxError) Error() string {
	return e.Position.String() + ": " + parse.DescribeExpected(e.Expected)
}

func (e *SyntaxError) Unwrap() error {
	return e.cause
}
