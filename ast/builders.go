package ast

// Builders for constructing journal entries programmatically, primarily in
// tests. They mirror the shapes produced by the parser.

// PostingOption configures a posting built with NewPosting.
type PostingOption func(*Posting)

// WithAmount sets the posting amount from a decimal string and commodity.
func WithAmount(value, commodity string) PostingOption {
	return func(p *Posting) {
		p.Amount = MustAmount(value, commodity)
	}
}

// WithPurchasePrice sets the posting's cost-basis purchase price.
func WithPurchasePrice(value, commodity string) PostingOption {
	return func(p *Posting) {
		p.PurchasePrice = MustAmount(value, commodity)
	}
}

// NewPosting creates a posting for an account with the given options.
func NewPosting(account Account, opts ...PostingOption) *Posting {
	p := &Posting{Account: account, Amount: NewAmount()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTransaction creates a transaction with the given postings.
func NewTransaction(date Date, description string, postings ...*Posting) *Transaction {
	return &Transaction{Date: date, Description: description, Postings: postings}
}

// NewBudget creates a budget with the given postings.
func NewBudget(period string, postings ...*Posting) *Budget {
	return &Budget{Period: period, Postings: postings}
}
