package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/ledger/ast"
)

func parse(t *testing.T, lines ...string) (*ast.Journal, []SkippedLine) {
	t.Helper()
	return Parse(context.Background(), strings.Join(lines, "\n"))
}

func TestParse_SingleTransaction(t *testing.T) {
	journal, skipped := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"  assets:checking -5.00 EUR",
	)

	assert.Zero(t, skipped)
	assert.Equal(t, 1, len(journal.Transactions))

	txn := journal.Transactions[0]
	assert.Equal(t, "2021/01/01", txn.Date.String())
	assert.Equal(t, "apples", txn.Description)
	assert.Equal(t, 2, len(txn.Postings))
	assert.Equal(t, ast.Account("expenses:groceries"), txn.Postings[0].Account)
	assert.Equal(t, "5 EUR", txn.Postings[0].Amount.String())
	assert.Equal(t, ast.Account("assets:checking"), txn.Postings[1].Account)
	assert.Equal(t, "-5 EUR", txn.Postings[1].Amount.String())
}

func TestParse_TransactionClosedByEmptyLine(t *testing.T) {
	journal, _ := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"",
		"2021/01/02 oranges",
		"  expenses:groceries 3.50 EUR",
	)

	assert.Equal(t, 2, len(journal.Transactions))
	assert.Equal(t, 1, len(journal.Transactions[0].Postings))
	assert.Equal(t, 1, len(journal.Transactions[1].Postings))
}

func TestParse_ConsecutiveTransactionHeaders(t *testing.T) {
	journal, _ := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"2021/01/02 empty day",
		"2021/01/03 oranges",
		"  expenses:groceries 3.50 EUR",
	)

	assert.Equal(t, 3, len(journal.Transactions))
	assert.Equal(t, "empty day", journal.Transactions[1].Description)
	assert.Equal(t, 0, len(journal.Transactions[1].Postings))
}

func TestParse_TransactionFlushedAtEndOfStream(t *testing.T) {
	journal, _ := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
	)

	assert.Equal(t, 1, len(journal.Transactions))
}

func TestParse_VerbatimDescription(t *testing.T) {
	journal, skipped := parse(t,
		"2021/01/01  spaced  out ",
		"  expenses:groceries 5.00 EUR",
	)

	assert.Zero(t, skipped)
	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, " spaced  out ", journal.Transactions[0].Description)
}

func TestParse_BlankDescriptionOpensTransaction(t *testing.T) {
	journal, skipped := parse(t,
		"2021/01/01  ",
		"  expenses:groceries 5.00 EUR",
	)

	assert.Zero(t, skipped)
	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, " ", journal.Transactions[0].Description)
	assert.Equal(t, 1, len(journal.Transactions[0].Postings))
}

func TestParse_EmptyTransactionIsLegal(t *testing.T) {
	journal, skipped := parse(t, "2021/01/01 nothing happened")

	assert.Zero(t, skipped)
	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, 0, len(journal.Transactions[0].Postings))
}

func TestParse_Budget(t *testing.T) {
	journal, _ := parse(t,
		"~monthly",
		"  expenses:groceries 400.00 EUR",
		"  expenses:rent 1000.00 EUR",
	)

	assert.Equal(t, 1, len(journal.Budgets))

	budget := journal.Budgets[0]
	assert.Equal(t, "monthly", budget.Period)
	assert.Equal(t, 2, len(budget.Postings))
	assert.Equal(t, ast.Account("expenses:rent"), budget.Postings[1].Account)
}

func TestParse_ConsecutiveBudgetHeaders(t *testing.T) {
	journal, _ := parse(t,
		"~monthly",
		"  expenses:groceries 400.00 EUR",
		"~yearly",
		"  expenses:insurance 1200.00 EUR",
	)

	assert.Equal(t, 2, len(journal.Budgets))
	assert.Equal(t, "monthly", journal.Budgets[0].Period)
	assert.Equal(t, "yearly", journal.Budgets[1].Period)
}

func TestParse_BudgetImmediatelyFollowedByTransaction(t *testing.T) {
	// Closing a budget re-dispatches the transaction header, so no posting
	// leaks into the wrong accumulator.
	journal, _ := parse(t,
		"~monthly",
		"  expenses:groceries 400.00 EUR",
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
	)

	assert.Equal(t, 1, len(journal.Budgets))
	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, 1, len(journal.Budgets[0].Postings))
	assert.Equal(t, 1, len(journal.Transactions[0].Postings))
}

func TestParse_TransactionImmediatelyFollowedByBudget(t *testing.T) {
	journal, _ := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"~monthly",
		"  expenses:groceries 400.00 EUR",
	)

	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, 1, len(journal.Budgets))
	assert.Equal(t, "5 EUR", journal.Transactions[0].Postings[0].Amount.String())
	assert.Equal(t, "400 EUR", journal.Budgets[0].Postings[0].Amount.String())
}

func TestParse_BudgetFlushedAtEndOfStream(t *testing.T) {
	journal, _ := parse(t, "~monthly")

	assert.Equal(t, 1, len(journal.Budgets))
	assert.Equal(t, 0, len(journal.Budgets[0].Postings))
}

func TestParse_Headers(t *testing.T) {
	journal, _ := parse(t,
		"include 2020.ledger",
		"commodity EUR",
	)

	assert.Equal(t, 2, len(journal.Headers))

	include, ok := journal.Headers[0].(*ast.Include)
	assert.True(t, ok)
	assert.Equal(t, "2020.ledger", include.Path)

	commodity, ok := journal.Headers[1].(*ast.CommodityDecl)
	assert.True(t, ok)
	assert.Equal(t, "EUR", commodity.Spec)
}

func TestParse_Prices(t *testing.T) {
	journal, _ := parse(t,
		"P 2021/01/01 STOCK 12.34 EUR",
		"P 2021/02/01 STOCK 13.00 EUR",
		"P 2021/01/15 GOLD 1500 EUR",
	)

	assert.Equal(t, []string{"STOCK", "GOLD"}, journal.Prices.Commodities())

	stock := journal.Prices.Observations("STOCK")
	assert.Equal(t, 2, len(stock))
	assert.Equal(t, "12.34 EUR", stock[0].Price.String())
	assert.Equal(t, "13 EUR", stock[1].Price.String())
}

func TestParse_PurchasePrice(t *testing.T) {
	journal, _ := parse(t,
		"2021/01/01 buy stock",
		"  assets:stocks 100.00 STOCK @@ 1 EUR",
	)

	posting := journal.Transactions[0].Postings[0]
	assert.Equal(t, "100", posting.Amount.Get("STOCK").String())
	assert.Equal(t, "1", posting.PurchasePrice.Get("EUR").String())
}

func TestParse_UnrecognizedLineIsSkippedWithDiagnostic(t *testing.T) {
	journal, skipped := parse(t,
		"garbage here",
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
	)

	// Parsing continues past the bad line.
	assert.Equal(t, 1, len(journal.Transactions))

	assert.Equal(t, 1, len(skipped))
	assert.Equal(t, 1, skipped[0].Line)
	assert.Equal(t, "garbage here", skipped[0].Raw)
	assert.Equal(t, SkipUnrecognized, skipped[0].Reason)
}

func TestParse_StrayPostingIsSkippedWithDiagnostic(t *testing.T) {
	journal, skipped := parse(t,
		"  expenses:groceries 5.00 EUR",
	)

	assert.Equal(t, 0, len(journal.Transactions))
	assert.Equal(t, 1, len(skipped))
	assert.Equal(t, SkipStrayPosting, skipped[0].Reason)
}

func TestParse_UnrecognizedLineClosesTransaction(t *testing.T) {
	journal, skipped := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"what is this",
		"  assets:checking -5.00 EUR",
	)

	// The stray line closes the transaction; the posting after it is
	// outside any accumulator and must not leak in.
	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, 1, len(journal.Transactions[0].Postings))
	assert.Equal(t, 2, len(skipped))
	assert.Equal(t, SkipUnrecognized, skipped[0].Reason)
	assert.Equal(t, SkipStrayPosting, skipped[1].Reason)
}

func TestParse_MalformedDecimalPostingIsSkipped(t *testing.T) {
	journal, skipped := parse(t,
		"2021/01/01 apples",
		"  expenses:groceries five EUR",
	)

	assert.Equal(t, 1, len(journal.Transactions))
	assert.Equal(t, 0, len(journal.Transactions[0].Postings))
	assert.Equal(t, 1, len(skipped))
}

func TestParse_FullFile(t *testing.T) {
	journal, skipped := parse(t,
		"include 2020.ledger",
		"commodity EUR",
		"",
		"P 2021/01/04 STOCK 12.34 EUR",
		"",
		"~monthly",
		"  expenses:groceries 400.00 EUR",
		"  expenses:rent 1000.00 EUR",
		"",
		"2021/01/01 apples",
		"  expenses:groceries 5.00 EUR",
		"  assets:checking -5.00 EUR",
		"",
		"2021/02/14 buy stock",
		"  assets:stocks 100.00 STOCK @@ 1234 EUR",
		"  assets:checking -1234.00 EUR",
	)

	assert.Zero(t, skipped)
	assert.Equal(t, 2, len(journal.Headers))
	assert.Equal(t, 1, journal.Prices.Len())
	assert.Equal(t, 1, len(journal.Budgets))
	assert.Equal(t, 2, len(journal.Transactions))
}

func TestSkippedLine_String(t *testing.T) {
	s := SkippedLine{Line: 3, Raw: "garbage", Reason: SkipUnrecognized}
	assert.Equal(t, `line 3: no grammar matched: "garbage"`, s.String())
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("2021/01/01 apples\n")
		sb.WriteString("  expenses:groceries 5.00 EUR\n")
		sb.WriteString("  assets:checking -5.00 EUR\n")
		sb.WriteString("\n")
	}
	source := sb.String()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(ctx, source)
	}
}
