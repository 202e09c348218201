package parser

import "fmt"

// SkipReason explains why a line was omitted from the journal.
type SkipReason string

const (
	// SkipUnrecognized marks a line that matched no grammar, including
	// otherwise-valid posting or price lines with malformed decimals.
	SkipUnrecognized SkipReason = "no grammar matched"

	// SkipStrayPosting marks a posting line appearing while no transaction
	// or budget was open.
	SkipStrayPosting SkipReason = "posting outside transaction or budget"
)

// SkippedLine records a line that was dropped during parsing. The parser
// never fails on malformed input; it collects skipped lines so callers can
// surface them.
type SkippedLine struct {
	Line   int    // 1-indexed input line number
	Raw    string // original line, verbatim
	Reason SkipReason
}

func (s SkippedLine) String() string {
	return fmt.Sprintf("line %d: %s: %q", s.Line, s.Reason, s.Raw)
}
