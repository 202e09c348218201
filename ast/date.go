package ast

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted date format in ledger files.
const dateLayout = "2006/01/02"

// Date represents a calendar date in yyyy/mm/dd format. Transaction headers
// and price observations carry a date; budgets do not.
type Date struct {
	time.Time
}

// NewDate parses a date in yyyy/mm/dd format.
func NewDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected yyyy/mm/dd", value)
	}
	return Date{Time: t}, nil
}

// MustDate parses a date and panics on error. Intended for tests.
func MustDate(value string) Date {
	d, err := NewDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date in yyyy/mm/dd format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON serializes the date in yyyy/mm/dd format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
