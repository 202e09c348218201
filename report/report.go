// Package report aggregates a parsed journal into balance reports. It
// pivots transaction postings by account, buckets them into calendar
// (year, month) periods, sums multi-currency amounts per cell and renders
// the result as an aligned table.
//
// Cells exist only where at least one posting was observed; absent cells
// render blank, never as zero.
package report

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/ledger/ast"
	"github.com/robinvdvleuten/ledger/table"
	"github.com/robinvdvleuten/ledger/telemetry"
)

// Key identifies one report cell.
type Key struct {
	Account ast.Account
	Period  Period
}

// Report holds aggregated (account, period) cells for a set of
// transactions. Accounts are lexically sorted, periods chronologically.
type Report struct {
	Accounts []string
	Periods  []Period
	Cells    map[Key]*ast.Amount
}

// Build aggregates transactions into a report. For every account it
// partitions the account's postings by period and aggregates each partition;
// (account, period) pairs with no postings get no cell.
func Build(ctx context.Context, transactions []*ast.Transaction) *Report {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("report.build (%d transactions)", len(transactions)))
	defer timer.End()

	view := AccountView(transactions)

	report := &Report{Cells: make(map[Key]*ast.Amount)}

	seen := make(map[Period]bool)
	for account, entries := range view {
		report.Accounts = append(report.Accounts, string(account))

		partitions := make(map[Period][]Entry)
		for _, e := range entries {
			period := PeriodOf(e.Date)
			partitions[period] = append(partitions[period], e)
			seen[period] = true
		}

		for period, partition := range partitions {
			report.Cells[Key{Account: account, Period: period}] = Aggregate(partition)
		}
	}

	slices.Sort(report.Accounts)
	for period := range seen {
		report.Periods = append(report.Periods, period)
	}
	slices.SortFunc(report.Periods, func(a, b Period) int { return a.Compare(b) })

	return report
}

// Cell returns the aggregated amount for an (account, period) pair, or nil
// when the pair saw no activity.
func (r *Report) Cell(account ast.Account, period Period) *ast.Amount {
	return r.Cells[Key{Account: account, Period: period}]
}

// Render formats the report as an aligned table with one row per account
// and one column per period. Cell amounts are rendered as comma-separated
// "<quantity> <commodity>" pairs in commodity insertion order; absent cells
// are blank.
func (r *Report) Render() string {
	colHeaders := make([]string, len(r.Periods))
	for j, period := range r.Periods {
		colHeaders[j] = period.String()
	}

	cells := make([][]string, len(r.Accounts))
	for i, account := range r.Accounts {
		row := make([]string, len(r.Periods))
		for j, period := range r.Periods {
			if amount := r.Cell(ast.Account(account), period); amount != nil {
				row[j] = amount.String()
			}
		}
		cells[i] = row
	}

	return table.Render(r.Accounts, colHeaders, cells)
}

// BalanceSheet builds and renders the balance report for a journal.
func BalanceSheet(ctx context.Context, journal *ast.Journal) string {
	return Build(ctx, journal.Transactions).Render()
}
