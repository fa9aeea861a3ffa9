// Package nlp wraps part-of-speech tagging and person-name extraction
// behind a capability interface. Analyzers that need linguistic structure
// take a Parser; when none is available they bind Noop and simply find
// fewer matches, never failing.
package nlp

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// IsNoun reports whether the token is tagged as any noun form.
func (t Token) IsNoun() bool {
	return strings.HasPrefix(t.Tag, "NN")
}

// Parser provides linguistic structure for free text.
type Parser interface {
	// Tokens returns POS-tagged tokens in document order.
	// Returns nil when tagging is unavailable or text is empty.
	Tokens(text string) []Token

	// People returns person names detected in text, lowercased.
	// Returns nil when entity extraction is unavailable.
	People(text string) []string
}

// proseParser implements Parser on top of jdkato/prose.
type proseParser struct{}

// New returns a prose-backed Parser. Construction is cheap; prose loads
// its models lazily on first document.
func New() Parser {
	return proseParser{}
}

func (proseParser) Tokens(text string) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out
}

func (proseParser) People(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}
	var people []string
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			people = append(people, strings.ToLower(ent.Text))
		}
	}
	return people
}

// Noop is a Parser that reports no linguistic structure. Bound when the
// tagging backend is disabled or unavailable.
var Noop Parser = noopParser{}

type noopParser struct{}

func (noopParser) Tokens(string) []Token  { return nil }
func (noopParser) People(string) []string { return nil }
