// Package codec implements the dictionary tokenization wire format: a text
// is split into word and whitespace runs, and each run is framed as a tagged,
// self-delimiting record. Decoding the records in order reproduces the text.
package codec

import "unicode"

// TokenKind classifies a run of the source text.
type TokenKind int

const (
	// Word is a maximal run of non-whitespace characters.
	Word TokenKind = iota
	// Space is a maximal run of whitespace characters.
	Space
)

// Token is one maximal same-class run of the source text.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits text into alternating word and whitespace runs. The runs
// cover the input exactly: concatenating their Text in order reproduces text.
// Empty input yields nil.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	start := 0
	var kind TokenKind

	for i, r := range text {
		k := Word
		if unicode.IsSpace(r) {
			k = Space
		}
		if i == 0 {
			kind = k
			continue
		}
		if k != kind {
			tokens = append(tokens, Token{Kind: kind, Text: text[start:i]})
			start, kind = i, k
		}
	}

	return append(tokens, Token{Kind: kind, Text: text[start:]})
}
