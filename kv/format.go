package kv

import (
	"encoding"
	"io"
	"strconv"
	"strings"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}

// TextEncoder writes documents in canonical kv syntax.
type TextEncoder struct {
	w   io.Writer
	doc *Document
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return Format(e.doc), nil
}

// Format renders doc in canonical form: one entry per line, single spaces
// around "=", lower-case hexadecimal.
func Format(doc *Document) []byte {
	var sb strings.Builder
	for _, e := range doc.Entries {
		sb.WriteString(e.Key)
		sb.WriteString(" = ")
		writeValue(&sb, e.Value)
		sb.WriteString(";\n")
	}
	return []byte(sb.String())
}

// String renders a single value the way Format does.
func (v Value) String() string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Kind {
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case KindHex:
		sb.WriteByte('#')
		sb.WriteString(strconv.FormatInt(v.Int, 16))
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(v.Str)
		sb.WriteByte('"')
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, item)
		}
		sb.WriteByte(']')
	}
}
