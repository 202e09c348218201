package parser

import (
	"github.com/robinvdvleuten/ledger/ast"
)

// TokenType represents the grammar a line matched.
type TokenType uint8

const (
	// UNRECOGNIZED is a line matching no grammar.
	UNRECOGNIZED TokenType = iota

	EMPTY     // a line with zero characters
	INCLUDE   // include <path>
	COMMODITY // commodity <free text>
	BUDGET    // ~<period-label>
	PRICE     // P <yyyy/mm/dd> <commodity> <decimal> <reference-commodity>
	TXN       // <yyyy/mm/dd> <description>
	POSTING   // indented <account> <decimal> <commodity> [@@ <decimal> <commodity>]
)

var tokenNames = map[TokenType]string{
	UNRECOGNIZED: "UNRECOGNIZED",
	EMPTY:        "EMPTY",
	INCLUDE:      "INCLUDE",
	COMMODITY:    "COMMODITY",
	BUDGET:       "BUDGET",
	PRICE:        "PRICE",
	TXN:          "TXN",
	POSTING:      "POSTING",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents one classified input line. The tokenizer emits exactly
// one token per line, in input order. Payload fields are populated according
// to Type; Raw always holds the original line verbatim.
type Token struct {
	Type TokenType
	Line int    // 1-indexed input line number
	Raw  string // original line, verbatim

	Path        string      // INCLUDE
	Spec        string      // COMMODITY
	Period      string      // BUDGET
	Date        ast.Date    // TXN, PRICE
	Description string      // TXN
	Commodity   string      // PRICE
	Price       *ast.Amount // PRICE

	Account       ast.Account // POSTING
	Amount        *ast.Amount // POSTING
	PurchasePrice *ast.Amount // POSTING, optional
}
