package web

import (
	"net/http"

	"github.com/robinvdvleuten/ledger/report"
)

// AccountsResponse is the JSON response structure for the accounts
// endpoint.
type AccountsResponse struct {
	Accounts []string `json:"accounts"`
}

// handleGetAccounts handles GET requests to /api/accounts. It returns all
// distinct account paths referenced by transactions, lexically sorted.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	result := s.snapshot()

	accounts := report.Accounts(result.Journal)
	if accounts == nil {
		accounts = []string{}
	}

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts})
}
