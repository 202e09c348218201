// Package parser turns ledger source text into an ast.Journal. Parsing is a
// two-stage pipeline: the tokenizer classifies every input line against an
// ordered list of line grammars, and a small state machine groups the
// resulting token stream into transactions, budgets, headers and price
// observations.
//
// Parsing never fails: lines that match no grammar, or postings appearing
// outside any transaction or budget, are skipped and reported alongside the
// journal as SkippedLine diagnostics.
//
// Example usage:
//
//	journal, skipped := parser.Parse(ctx, source)
//	for _, s := range skipped {
//	    fmt.Fprintln(os.Stderr, s)
//	}
package parser

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/ledger/ast"
	"github.com/robinvdvleuten/ledger/telemetry"
)

// mode is the structural context the state machine is in.
type mode uint8

const (
	general mode = iota
	inBudget
	inTransaction
)

// Parse parses ledger source text into a journal plus a list of skipped
// lines. The returned journal is complete and immutable; skipped is nil when
// every line was understood.
func Parse(ctx context.Context, source string) (*ast.Journal, []SkippedLine) {
	lines := SplitLines(source)

	tokenizeTimer := telemetry.StartTimer(ctx, fmt.Sprintf("parser.tokenize (%d lines)", len(lines)))
	tokens := Tokenize(lines)
	tokenizeTimer.End()

	parseTimer := telemetry.StartTimer(ctx, "parser.journal")
	defer parseTimer.End()

	return buildJournal(tokens)
}

// buildJournal runs the state machine over the token stream. The machine is
// a single iterative loop with one token of lookahead: closing a budget or
// transaction re-dispatches the current token to the general state without
// consuming it, so a budget can be immediately followed by a transaction or
// another header. An explicit loop rather than recursion keeps stack depth
// constant on large files.
func buildJournal(tokens []Token) (*ast.Journal, []SkippedLine) {
	journal := ast.NewJournal()
	var skipped []SkippedLine

	state := general
	var budget *ast.Budget
	var txn *ast.Transaction

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch state {
		case general:
			switch tok.Type {
			case INCLUDE:
				journal.Headers = append(journal.Headers, &ast.Include{Path: tok.Path})
			case COMMODITY:
				journal.Headers = append(journal.Headers, &ast.CommodityDecl{Spec: tok.Spec})
			case PRICE:
				journal.Prices.Add(&ast.PriceObservation{
					Commodity: tok.Commodity,
					Date:      tok.Date,
					Price:     tok.Price,
				})
			case EMPTY:
				// no-op
			case BUDGET:
				budget = &ast.Budget{Period: tok.Period}
				state = inBudget
			case TXN:
				txn = &ast.Transaction{Date: tok.Date, Description: tok.Description}
				state = inTransaction
			case POSTING:
				skipped = append(skipped, SkippedLine{Line: tok.Line, Raw: tok.Raw, Reason: SkipStrayPosting})
			default:
				skipped = append(skipped, SkippedLine{Line: tok.Line, Raw: tok.Raw, Reason: SkipUnrecognized})
			}
			i++

		case inBudget:
			switch tok.Type {
			case POSTING:
				budget.Postings = append(budget.Postings, posting(tok))
				i++
			case BUDGET:
				journal.Budgets = append(journal.Budgets, budget)
				budget = &ast.Budget{Period: tok.Period}
				i++
			default:
				// Close the budget and re-dispatch the current token.
				journal.Budgets = append(journal.Budgets, budget)
				budget = nil
				state = general
			}

		case inTransaction:
			switch tok.Type {
			case POSTING:
				txn.Postings = append(txn.Postings, posting(tok))
				i++
			case TXN:
				journal.Transactions = append(journal.Transactions, txn)
				txn = &ast.Transaction{Date: tok.Date, Description: tok.Description}
				i++
			default:
				// Close the transaction and re-dispatch the current token.
				journal.Transactions = append(journal.Transactions, txn)
				txn = nil
				state = general
			}
		}
	}

	// Flush whatever is still open at end of stream.
	if budget != nil {
		journal.Budgets = append(journal.Budgets, budget)
	}
	if txn != nil {
		journal.Transactions = append(journal.Transactions, txn)
	}

	return journal, skipped
}

// posting strips the token tag from a POSTING token.
func posting(tok Token) *ast.Posting {
	return &ast.Posting{
		Account:       tok.Account,
		Amount:        tok.Amount,
		PurchasePrice: tok.PurchasePrice,
	}
}
