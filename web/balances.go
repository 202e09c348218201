package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/ledger/ast"
	"github.com/robinvdvleuten/ledger/report"
)

// BalancesResponse is the JSON response structure for the balances
// endpoint.
type BalancesResponse struct {
	Accounts []string        `json:"accounts"`
	Periods  []string        `json:"periods"`
	Cells    []*CellResponse `json:"cells"`
}

// CellResponse represents one aggregated (account, period) cell. Only cells
// with at least one posting are emitted.
type CellResponse struct {
	Account string                     `json:"account"`
	Period  string                     `json:"period"`
	Amounts map[string]decimal.Decimal `json:"amounts"`
}

// handleGetBalances handles GET requests to /api/balances. It returns the
// aggregated report cells; (account, period) pairs with no activity are
// absent rather than zero.
func (s *Server) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	result := s.snapshot()

	rep := report.Build(r.Context(), result.Journal.Transactions)

	response := &BalancesResponse{
		Accounts: rep.Accounts,
		Periods:  make([]string, 0, len(rep.Periods)),
		Cells:    make([]*CellResponse, 0, len(rep.Cells)),
	}
	if response.Accounts == nil {
		response.Accounts = []string{}
	}

	for _, period := range rep.Periods {
		response.Periods = append(response.Periods, period.String())
	}

	// Emit cells in row-major table order for deterministic output.
	for _, account := range rep.Accounts {
		for _, period := range rep.Periods {
			amount := rep.Cell(ast.Account(account), period)
			if amount == nil {
				continue
			}
			response.Cells = append(response.Cells, &CellResponse{
				Account: account,
				Period:  period.String(),
				Amounts: amount.ToMap(),
			})
		}
	}

	writeJSONResponse(w, response)
}
