package kv

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource string

// Grammar returns the EBNF description of the language.
func Grammar() string {
	return grammarSource
}

// VerifyGrammar checks that the EBNF description is well formed and that
// every production is reachable from Document.
func VerifyGrammar() error {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, "Document"); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}
