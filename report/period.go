package report

import (
	"fmt"
	"time"

	"github.com/robinvdvleuten/ledger/ast"
)

// Period is a calendar grouping key. Two dates fall in the same period iff
// they share both year and month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period a date falls in.
func PeriodOf(d ast.Date) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// String returns the period in yyyy/mm format.
func (p Period) String() string {
	return fmt.Sprintf("%04d/%02d", p.Year, int(p.Month))
}

// Before reports whether p is chronologically before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Compare orders periods chronologically; it returns a negative number when
// p precedes other, zero when equal, and a positive number otherwise.
func (p Period) Compare(other Period) int {
	if p.Year != other.Year {
		return p.Year - other.Year
	}
	return int(p.Month) - int(other.Month)
}
