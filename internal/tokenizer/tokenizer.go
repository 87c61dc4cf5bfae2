// Package tokenizer converts raw text into normalized terms. Tokens are
// produced by a greedy single-pass scan: whitespace is skipped, a maximal run
// of digits or a maximal run of letters forms one token, and any other
// character is a token on its own. A token never mixes digits and letters
// ("abc123" yields "abc" and "123") and never spans whitespace.
package tokenizer

import (
	"strings"
	"unicode"
)

// Lexer is a restartable cursor over a fixed rune sequence. It holds no
// state beyond its position, so independent Lexers are safe to run
// concurrently.
type Lexer struct {
	content []rune
	pos     int
}

// New returns a Lexer positioned at the start of text.
func New(text string) *Lexer {
	return &Lexer{content: []rune(text)}
}

// Next returns the next raw token and true, or "" and false once the input
// is exhausted.
func (l *Lexer) Next() (string, bool) {
	for l.pos < len(l.content) && unicode.IsSpace(l.content[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.content) {
		return "", false
	}

	start := l.pos
	switch r := l.content[l.pos]; {
	case unicode.IsDigit(r):
		for l.pos < len(l.content) && unicode.IsDigit(l.content[l.pos]) {
			l.pos++
		}
	case unicode.IsLetter(r):
		for l.pos < len(l.content) && unicode.IsLetter(l.content[l.pos]) {
			l.pos++
		}
	default:
		l.pos++
	}
	return string(l.content[start:l.pos]), true
}

// Normalize case-folds a raw token into its canonical term form. Indexing
// and querying must both go through this or scores become meaningless.
func Normalize(raw string) string {
	return strings.ToUpper(raw)
}

// Tokenize runs the full text through a Lexer and returns the normalized
// terms in order of appearance.
func Tokenize(text string) []string {
	terms := make([]string, 0) // Initialize as empty slice, not nil
	lexer := New(text)
	for {
		raw, ok := lexer.Next()
		if !ok {
			break
		}
		terms = append(terms, Normalize(raw))
	}
	return terms
}
