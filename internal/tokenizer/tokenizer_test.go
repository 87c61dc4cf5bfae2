package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"only whitespace", "  \t\n  ", []string{}},
		{"simple words", "hello world", []string{"HELLO", "WORLD"}},
		{"case folding", "Hello WoRLD", []string{"HELLO", "WORLD"}},
		{"alpha digit split", "abc123 DEF", []string{"ABC", "123", "DEF"}},
		{"digit then alpha", "123abc", []string{"123", "ABC"}},
		{"punctuation is single char", "a,b", []string{"A", ",", "B"}},
		{"repeated punctuation", "a--b", []string{"A", "-", "-", "B"}},
		{"leading and trailing spaces", "  cat dog  ", []string{"CAT", "DOG"}},
		{"multiple spaces between words", "cat   dog", []string{"CAT", "DOG"}},
		{"only numbers", "12345 67890", []string{"12345", "67890"}},
		{"symbols only", "!?", []string{"!", "?"}},
		{"mixed sentence", "the cat, sat.", []string{"THE", "CAT", ",", "SAT", "."}},
		{"newlines as whitespace", "cat\ndog", []string{"CAT", "DOG"}},
		{"unicode letters", "über café", []string{"ÜBER", "CAFÉ"}},
		{"unicode whitespace", "cat dog", []string{"CAT", "DOG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexerNext(t *testing.T) {
	lexer := New("abc123 x")

	raw, ok := lexer.Next()
	if !ok || raw != "abc" {
		t.Fatalf("first token = %q, %v; want \"abc\", true", raw, ok)
	}
	raw, ok = lexer.Next()
	if !ok || raw != "123" {
		t.Fatalf("second token = %q, %v; want \"123\", true", raw, ok)
	}
	raw, ok = lexer.Next()
	if !ok || raw != "x" {
		t.Fatalf("third token = %q, %v; want \"x\", true", raw, ok)
	}
	if raw, ok = lexer.Next(); ok {
		t.Fatalf("expected exhausted lexer, got token %q", raw)
	}
	// The terminal state is sticky.
	if _, ok = lexer.Next(); ok {
		t.Fatal("exhausted lexer produced another token")
	}
}

func TestLexerIndependentCursors(t *testing.T) {
	a := New("one two")
	b := New("three")

	rawA, _ := a.Next()
	rawB, _ := b.Next()
	if rawA != "one" || rawB != "three" {
		t.Errorf("independent lexers interfered: got %q and %q", rawA, rawB)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("caT"); got != "CAT" {
		t.Errorf("Normalize(\"caT\") = %q, want \"CAT\"", got)
	}
	if got := Normalize("123"); got != "123" {
		t.Errorf("Normalize(\"123\") = %q, want \"123\"", got)
	}
}
