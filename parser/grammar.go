package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/ledger/ast"
)

// Each line grammar is a matcher that either produces a token or reports no
// match so the next grammar can be tried. Matchers never fail loudly: a
// malformed decimal inside an otherwise-matching posting or price line
// simply fails that grammar and the line falls through.
type matcher func(line string) (Token, bool)

// grammars are tried in priority order; first match wins.
var grammars = []matcher{
	matchInclude,
	matchCommodity,
	matchBudgetHeader,
	matchPrice,
	matchTransactionHeader,
	matchPosting,
	matchEmpty,
}

// Classify matches one input line against each recognized grammar and
// returns a typed token. Every line yields exactly one token; lines matching
// no grammar yield an UNRECOGNIZED token.
func Classify(line string) Token {
	for _, match := range grammars {
		if tok, ok := match(line); ok {
			tok.Raw = line
			return tok
		}
	}
	return Token{Type: UNRECOGNIZED, Raw: line}
}

// indented reports whether the line starts with whitespace. Indentation
// distinguishes posting lines from headers; its exact width is not
// significant.
func indented(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

// matchInclude matches "include <path>" where path has no embedded
// whitespace.
func matchInclude(line string) (Token, bool) {
	if indented(line) {
		return Token{}, false
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "include" {
		return Token{}, false
	}
	return Token{Type: INCLUDE, Path: fields[1]}, true
}

// matchCommodity matches "commodity <free text>". The text is stored
// verbatim and not further parsed.
func matchCommodity(line string) (Token, bool) {
	const prefix = "commodity "
	if indented(line) || !strings.HasPrefix(line, prefix) {
		return Token{}, false
	}
	spec := line[len(prefix):]
	if spec == "" {
		return Token{}, false
	}
	return Token{Type: COMMODITY, Spec: spec}, true
}

// matchBudgetHeader matches a line beginning with "~" followed by a period
// label, e.g. "~monthly".
func matchBudgetHeader(line string) (Token, bool) {
	if !strings.HasPrefix(line, "~") {
		return Token{}, false
	}
	period := strings.TrimSpace(line[1:])
	if period == "" {
		return Token{}, false
	}
	return Token{Type: BUDGET, Period: period}, true
}

// matchPrice matches "P <yyyy/mm/dd> <commodity> <decimal> <reference-commodity>".
func matchPrice(line string) (Token, bool) {
	if indented(line) {
		return Token{}, false
	}
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "P" {
		return Token{}, false
	}
	date, err := ast.NewDate(fields[1])
	if err != nil {
		return Token{}, false
	}
	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return Token{}, false
	}
	return Token{
		Type:      PRICE,
		Date:      date,
		Commodity: fields[2],
		Price:     ast.AmountOf(fields[4], price),
	}, true
}

// matchTransactionHeader matches "<yyyy/mm/dd> <description>". The
// description is the remainder of the line after the separator, kept
// verbatim; it may be empty or all whitespace.
func matchTransactionHeader(line string) (Token, bool) {
	if indented(line) || len(line) < 11 {
		return Token{}, false
	}
	date, err := ast.NewDate(line[:10])
	if err != nil {
		return Token{}, false
	}
	if line[10] != ' ' && line[10] != '\t' {
		return Token{}, false
	}
	return Token{Type: TXN, Date: date, Description: line[11:]}, true
}

// matchPosting matches an indented posting line:
//
//	<account> <decimal> <commodity>
//	<account> <decimal> <commodity> @@ <decimal> <commodity>
func matchPosting(line string) (Token, bool) {
	if !indented(line) {
		return Token{}, false
	}
	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 6 {
		return Token{}, false
	}

	quantity, err := decimal.NewFromString(fields[1])
	if err != nil {
		return Token{}, false
	}

	tok := Token{
		Type:    POSTING,
		Account: ast.Account(fields[0]),
		Amount:  ast.AmountOf(fields[2], quantity),
	}

	if len(fields) == 6 {
		if fields[3] != "@@" {
			return Token{}, false
		}
		price, err := decimal.NewFromString(fields[4])
		if err != nil {
			return Token{}, false
		}
		tok.PurchasePrice = ast.AmountOf(fields[5], price)
	}

	return tok, true
}

// matchEmpty matches a line with zero characters.
func matchEmpty(line string) (Token, bool) {
	if line != "" {
		return Token{}, false
	}
	return Token{Type: EMPTY}, true
}
