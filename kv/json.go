package kv

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes documents as an indented JSON array of entries.
type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	entries := make([]jsonEntry, 0, len(e.doc.Entries))
	for _, entry := range e.doc.Entries {
		entries = append(entries, jsonEntry{Key: entry.Key, Value: buildValue(entry.Value)})
	}
	return json.MarshalIndent(entries, "", "  ")
}

type jsonEntry struct {
	Key   string    `json:"key"`
	Value jsonValue `json:"value"`
}

type jsonValue struct {
	Kind   string      `json:"kind"`
	Int    *int64      `json:"int,omitempty"`
	String *string     `json:"string,omitempty"`
	Items  []jsonValue `json:"items,omitempty"`
}

func buildValue(v Value) jsonValue {
	out := jsonValue{Kind: v.Kind.String()}
	switch v.Kind {
	case KindInt, KindHex:
		n := v.Int
		out.Int = &n
	case KindString:
		s := v.Str
		out.String = &s
	case KindList:
		out.Items = make([]jsonValue, 0, len(v.Items))
		for _, item := range v.Items {
			out.Items = append(out.Items, buildValue(item))
		}
	}
	return out
}
