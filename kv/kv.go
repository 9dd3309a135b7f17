// Package kv implements a small assignment-list language on top of the parse
// combinators:
//
//	width = 640;
//	mask  = #ff00;
//	steps = [1, -2, [3]];
//	name  = "main window";
//
// See grammar.ebnf for the full syntax.
package kv

import (
	"slices"
	"strings"

	"github.com/dhamidi/parsec/option"
	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/result"
)

type Kind int

const (
	KindInt Kind = iota
	KindHex
	KindList
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindHex:
		return "hex"
	case KindList:
		return "list"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is an assigned value. Int holds the number for KindInt and KindHex,
// Str the text for KindString and Items the elements of KindList.
type Value struct {
	Kind  Kind
	Int   int64
	Str   string
	Items []Value
}

type Entry struct {
	Key   string
	Value Value
}

type Document struct {
	Entries []Entry
}

// Lookup returns the last value assigned to key.
func (d *Document) Lookup(key string) (Value, bool) {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Key == key {
			return d.Entries[i].Value, true
		}
	}
	return Value{}, false
}

// Tokens are the literal tokens of the language.
var Tokens = []string{"=", ";", ",", "[", "]", "#"}

// IsToken reports whether an expectation label is a literal token.
func IsToken(label string) bool {
	return slices.Contains(Tokens, label)
}

var parseDocument = newDocumentParser()

// Parse parses src as a complete document. Syntax errors are returned as
// *SyntaxError.
func Parse(src string) (*Document, error) {
	doc, perr := parseDocument(src).Unpack()
	if perr != nil {
		return nil, newSyntaxError(src, perr)
	}
	return &doc, nil
}

// ExpectedAt returns what the parser expected at the end of prefix, or nil
// when prefix parses or fails somewhere before its end.
func ExpectedAt(prefix string) []string {
	_, perr := parseDocument(prefix).Unpack()
	if perr == nil || perr.Offset != len(prefix) {
		return nil
	}
	return perr.Expected
}

// space skips whitespace. It always succeeds and never adds expectations, so
// that diagnostics do not mention whitespace.
var space = parse.New(func(input string) parse.Result[struct{}] {
	rest := strings.TrimLeft(input, " \t\r\n")
	return parse.Ok(struct{}{}, len(input)-len(rest))
})

func lexeme[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.Terminated(p, space)
}

func token(lit string) parse.Parser[string] {
	return lexeme(parse.Tag(lit))
}

func newDocumentParser() func(string) result.Result[Document, *parse.Error] {
	key := lexeme(parse.Regex(`[A-Za-z][A-Za-z0-9_.]*`).Expect("key"))

	hexValue := parse.Map(parse.Preceded(parse.Tag("#"), parse.SignedHex), func(n int64) Value {
		return Value{Kind: KindHex, Int: n}
	})
	intValue := parse.Map(parse.Int, func(n int64) Value {
		return Value{Kind: KindInt, Int: n}
	})
	stringValue := parse.Map(parse.Regex(`"[A-Za-z0-9 _\-./:]*"`).Expect("string"), func(s string) Value {
		return Value{Kind: KindString, Str: s[1 : len(s)-1]}
	})

	var value parse.Parser[Value]
	element := parse.Lazy(func() parse.Parser[Value] { return value })

	items := parse.Map(
		parse.Pair(element, parse.Many0(parse.Preceded(token(","), element))),
		func(t parse.Tuple[Value, []Value]) []Value {
			return append([]Value{t.First}, t.Second...)
		},
	)
	listValue := parse.Map(parse.Delimited(token("["), parse.Opt(items), parse.Tag("]")), func(o option.Option[[]Value]) Value {
		return Value{Kind: KindList, Items: o.UnwrapOr(nil)}
	})

	value = lexeme(parse.Alt(hexValue, intValue, listValue, stringValue))

	entry := parse.Map(
		parse.Terminated(parse.SeparatedPair(key, token("="), value), token(";")),
		func(t parse.Tuple[string, Value]) Entry {
			return Entry{Key: t.First, Value: t.Second}
		},
	)

	document := parse.Map(parse.Preceded(space, parse.Many0(entry)), func(entries []Entry) Document {
		return Document{Entries: entries}
	})

	return parse.Completed(document)
}
