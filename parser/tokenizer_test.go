package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty source", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLines(tt.source))
		})
	}
}

func TestTokenize_OneTokenPerLine(t *testing.T) {
	lines := []string{
		"include 2021.ledger",
		"",
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"garbage",
	}

	tokens := Tokenize(lines)

	assert.Equal(t, len(lines), len(tokens))
	assert.Equal(t, INCLUDE, tokens[0].Type)
	assert.Equal(t, EMPTY, tokens[1].Type)
	assert.Equal(t, TXN, tokens[2].Type)
	assert.Equal(t, POSTING, tokens[3].Type)
	assert.Equal(t, UNRECOGNIZED, tokens[4].Type)
}

func TestTokenize_LineNumbersAreOneIndexed(t *testing.T) {
	tokens := Tokenize([]string{"", "", ""})

	for i, tok := range tokens {
		assert.Equal(t, i+1, tok.Line)
	}
}

func TestTokenize_IsStateless(t *testing.T) {
	// Classification of a line never depends on the previous line: a posting
	// keeps classifying as POSTING even without a preceding header.
	posting := "  expenses:groceries 5.00 EUR"

	alone := Tokenize([]string{posting})
	after := Tokenize([]string{"2021/01/01 apples", posting})

	assert.Equal(t, alone[0].Type, after[1].Type)
}

func FuzzTokenize(f *testing.F) {
	f.Add("2021/01/01 apples\n  expenses:groceries 5.00 EUR\n")
	f.Add("~monthly\n  expenses:rent 1000 EUR\n")
	f.Add("P 2021/01/01 STOCK 12.34 EUR")
	f.Add("\x00\xff garbage \t~")

	f.Fuzz(func(t *testing.T, source string) {
		lines := SplitLines(source)
		tokens := Tokenize(lines)

		if len(tokens) != len(lines) {
			t.Fatalf("got %d tokens for %d lines", len(tokens), len(lines))
		}
		for i, tok := range tokens {
			if tok.Raw != lines[i] {
				t.Fatalf("token %d lost its raw line", i)
			}
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("2021/01/01 apples\n")
		sb.WriteString("  expenses:groceries 5.00 EUR\n")
		sb.WriteString("  assets:checking -5.00 EUR\n")
		sb.WriteString("\n")
	}
	lines := SplitLines(sb.String())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(lines)
	}
}
