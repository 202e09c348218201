package telemetry

import (
	"io"

	"github.com/robinvdvleuten/ledger/output"
)

// noOpCollector is used when telemetry is disabled; it has zero overhead.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer {
	return noOpTimer{}
}

func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(name string) Timer {
	return noOpTimer{}
}
