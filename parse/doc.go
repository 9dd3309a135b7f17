// Package parse provides parser combinators over string input.
//
// # Results
//
// Every parser returns a [Result] carrying three things: the parsed value (or
// none, on failure), the number of bytes consumed and a set of expectations
// describing what would have let the parse go on at the point it stopped.
//
// Failures come in two kinds:
//
//   - recoverable: nothing was consumed, so an [Alt] may try its next branch
//   - fatal: input was consumed before the failure, meaning the parser had
//     committed to this branch; fatal failures propagate up to the caller
//
// Sequencing combinators produce fatal failures on their own. In
//
//	Pair(Tag("abc"), Uint)
//
// a failure of Uint after "abc" matched is fatal at offset 3.
//
// # Building parsers
//
// Primitives are [Tag], [Regex], [EOF], [Uint], [Int], [Hex] and [SignedHex].
// They combine through [Opt], [Many0], [Many1], [Pair], [SeparatedPair],
// [Terminated], [Preceded], [Delimited] and [Alt]. [Map] and [TryMap] convert
// values; [Parser.Expect] replaces the expectations of a recoverable failure
// with a single label.
//
//	assignment := SeparatedPair(Regex(`[a-z]+`), Tag("="), Int)
//	parseAll := Completed(assignment)
//	v, err := parseAll("x=-4").Unpack()
//
// # Terminal errors
//
// [Completed] requires the whole input to match and reports failures as an
// [*Error] with the expected set and the byte offset of the failure.
//
// # Repetition
//
// [Many0] and [Many1] loop instead of recursing. They panic with
// [ErrZeroWidth] when the repeated parser succeeds without consuming input,
// since such a parser would repeat forever.
package parse
