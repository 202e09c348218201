// Package loader reads ledger files and parses them into journals. Include
// directives found in a file are recorded in the journal's headers but never
// followed; a journal always represents exactly the file it was loaded
// from.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/robinvdvleuten/ledger/ast"
	"github.com/robinvdvleuten/ledger/parser"
	"github.com/robinvdvleuten/ledger/telemetry"
)

// Result is a loaded and parsed ledger file. Source is retained so callers
// can render skipped-line diagnostics with their original context.
type Result struct {
	Filename string
	Source   []byte
	Journal  *ast.Journal
	Skipped  []parser.SkippedLine
}

// Load reads and parses the named ledger file.
func Load(ctx context.Context, filename string) (*Result, error) {
	readTimer := telemetry.StartTimer(ctx, "loader.read")
	data, err := os.ReadFile(filename)
	readTimer.End()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return LoadBytes(ctx, filename, data)
}

// LoadBytes parses already-read ledger content, e.g. from stdin.
func LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	journal, skipped := parser.Parse(ctx, string(data))

	return &Result{
		Filename: filename,
		Source:   data,
		Journal:  journal,
		Skipped:  skipped,
	}, nil
}
