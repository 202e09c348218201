// Package ast defines the in-memory representation of a parsed ledger file:
// the journal with its transactions, budgets, headers and price observations,
// together with the exact-decimal Amount type shared by parsing and
// reporting.
//
// A Journal is produced once by the parser and is treated as immutable
// afterwards; no component mutates it after construction.
package ast

// Account represents a hierarchical colon-delimited account path such as
// "expenses:groceries". Accounts are compared and sorted by their literal
// string value; segments sharing a prefix are distinct accounts unless the
// full paths are byte-identical.
type Account string

// Header is an informational journal entry recorded at the top level of a
// ledger file. Include directives are recorded but never followed;
// commodity declarations are stored verbatim.
type Header interface {
	Header() string
}

// Include records an "include <path>" directive.
type Include struct {
	Path string
}

var _ Header = &Include{}

func (i *Include) Header() string {
	return "include"
}

// CommodityDecl records a "commodity <spec>" declaration. The spec text is
// stored verbatim and not further parsed.
type CommodityDecl struct {
	Spec string
}

var _ Header = &CommodityDecl{}

func (c *CommodityDecl) Header() string {
	return "commodity"
}

// Posting is one (account, amount) leg of a transaction or budget,
// optionally annotated with a cost-basis purchase price paid in a different
// commodity. Postings never exist outside a Transaction or Budget.
type Posting struct {
	Account       Account
	Amount        *Amount
	PurchasePrice *Amount
}

// Transaction is a dated movement of value across postings. Posting order is
// preserved from the input. A transaction with zero postings is legal; the
// core performs no balancing validation.
type Transaction struct {
	Date        Date
	Description string
	Postings    []*Posting
}

// Budget is a recurring target set of postings for a named period label
// such as "monthly". The label is free text.
type Budget struct {
	Period   string
	Postings []*Posting
}

// PriceObservation records the price of one commodity unit in a reference
// commodity at a given date. Observations are recorded during parsing but
// never applied to valuation.
type PriceObservation struct {
	Commodity string
	Date      Date
	Price     *Amount
}

// Journal is the parsed, in-memory representation of a ledger file. It is
// the sole artifact produced by parsing and the sole input to reporting.
type Journal struct {
	Headers      []Header
	Prices       *PriceTable
	Budgets      []*Budget
	Transactions []*Transaction
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{Prices: NewPriceTable()}
}

// PriceTable stores price observations per commodity, preserving both the
// order in which commodities were first observed and the insertion order of
// observations within each commodity. Observations are never mutated after
// insertion.
type PriceTable struct {
	commodities  []string
	observations map[string][]*PriceObservation
}

// NewPriceTable creates an empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{observations: make(map[string][]*PriceObservation)}
}

// Add appends an observation to its commodity's list.
func (t *PriceTable) Add(obs *PriceObservation) {
	if _, ok := t.observations[obs.Commodity]; !ok {
		t.commodities = append(t.commodities, obs.Commodity)
	}
	t.observations[obs.Commodity] = append(t.observations[obs.Commodity], obs)
}

// Commodities returns all observed commodities in first-observation order.
func (t *PriceTable) Commodities() []string {
	return t.commodities
}

// Observations returns the observations for a commodity in insertion order,
// or nil when the commodity was never observed.
func (t *PriceTable) Observations(commodity string) []*PriceObservation {
	return t.observations[commodity]
}

// Len returns the total number of observations across all commodities.
func (t *PriceTable) Len() int {
	n := 0
	for _, obs := range t.observations {
		n += len(obs)
	}
	return n
}
