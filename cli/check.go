package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type CheckCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin)." arg:"" optional:"" env:"LEDGER_FILE"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.Resolve(globals); err != nil {
		return err
	}

	runCtx, finish := withTelemetry(ctx, globals, "check", cmd.File.Filename)
	defer finish()

	result, err := cmd.File.Load(runCtx, globals)
	if err != nil {
		return err
	}

	if len(result.Skipped) > 0 {
		renderer := NewSkippedRenderer(result.Source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.RenderAll(result.Skipped))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d line(s) skipped", len(result.Skipped)))

		finish()
		os.Exit(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed: %d transaction(s), %d budget(s), %d price(s)",
		len(result.Journal.Transactions),
		len(result.Journal.Budgets),
		result.Journal.Prices.Len(),
	))

	return nil
}
