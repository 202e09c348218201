package report

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/ledger/ast"
)

// Entry is a posting pivoted to its account, tagged with its parent
// transaction's date and description.
type Entry struct {
	Date        ast.Date
	Description string
	Posting     *ast.Posting
}

// Accounts returns all distinct account paths referenced by any transaction
// posting, lexically sorted with duplicates removed. Budget postings are
// excluded.
func Accounts(journal *ast.Journal) []string {
	var accounts []string
	for _, txn := range journal.Transactions {
		for _, p := range txn.Postings {
			accounts = append(accounts, string(p.Account))
		}
	}
	slices.Sort(accounts)
	return slices.Compact(accounts)
}

// AccountView pivots every transaction posting to its account. Accounts not
// posted to are absent from the map, not empty-listed. Entries keep the
// transaction order of the input.
func AccountView(transactions []*ast.Transaction) map[ast.Account][]Entry {
	view := make(map[ast.Account][]Entry)
	for _, txn := range transactions {
		for _, p := range txn.Postings {
			view[p.Account] = append(view[p.Account], Entry{
				Date:        txn.Date,
				Description: txn.Description,
				Posting:     p,
			})
		}
	}
	return view
}

// Aggregate merges the amounts of all entries by commodity-wise addition.
// The result has the same shape as an individual posting amount, with
// commodities in first-seen order. Aggregation is commutative and
// associative per commodity.
func Aggregate(entries []Entry) *ast.Amount {
	total := ast.NewAmount()
	for _, e := range entries {
		total.Merge(e.Posting.Amount)
	}
	return total
}
