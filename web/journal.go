package web

import (
	"net/http"

	"github.com/robinvdvleuten/ledger/ast"
)

// JournalResponse is the JSON response structure for the journal summary
// endpoint.
type JournalResponse struct {
	Filename     string   `json:"filename"`
	Transactions int      `json:"transactions"`
	Budgets      int      `json:"budgets"`
	Prices       int      `json:"prices"`
	Includes     []string `json:"includes"`
	Commodities  []string `json:"commodities"`
	SkippedLines int      `json:"skippedLines"`
}

// handleGetJournal handles GET requests to /api/journal. It returns a
// summary of the loaded journal: entry counts, declared headers, and the
// number of lines the parser skipped.
func (s *Server) handleGetJournal(w http.ResponseWriter, r *http.Request) {
	result := s.snapshot()

	response := &JournalResponse{
		Filename:     result.Filename,
		Transactions: len(result.Journal.Transactions),
		Budgets:      len(result.Journal.Budgets),
		Prices:       result.Journal.Prices.Len(),
		Includes:     []string{},
		Commodities:  []string{},
		SkippedLines: len(result.Skipped),
	}

	for _, header := range result.Journal.Headers {
		switch h := header.(type) {
		case *ast.Include:
			response.Includes = append(response.Includes, h.Path)
		case *ast.CommodityDecl:
			response.Commodities = append(response.Commodities, h.Spec)
		}
	}

	writeJSONResponse(w, response)
}
