package parser

import "strings"

// SplitLines splits source text into lines. Line endings are not part of the
// lines; a single trailing newline does not produce a phantom empty line.
// Carriage returns before a newline are stripped so Windows files tokenize
// identically.
func SplitLines(source string) []string {
	lines := strings.Split(source, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Tokenize applies Classify to every line in order, producing one token per
// input line. Classification is stateless: the token for line N never
// depends on line N-1.
func Tokenize(lines []string) []Token {
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tok := Classify(line)
		tok.Line = i + 1
		tokens[i] = tok
	}
	return tokens
}
