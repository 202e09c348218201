package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/ledger/report"
)

type BalancesheetCmd struct {
	File   FileOrStdin `help:"Ledger input filename (use '-' for stdin)." arg:"" optional:"" env:"LEDGER_FILE"`
	Output string      `help:"Write the table to a file instead of stdout." short:"o" type:"path"`
}

func (cmd *BalancesheetCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.Resolve(globals); err != nil {
		return err
	}

	runCtx, finish := withTelemetry(ctx, globals, "balancesheet", cmd.File.Filename)
	defer finish()

	result, err := cmd.File.Load(runCtx, globals)
	if err != nil {
		return err
	}

	rendered := report.BalanceSheet(runCtx, result.Journal)

	if cmd.Output == "" {
		_, _ = fmt.Fprintln(ctx.Stdout, rendered)
		return nil
	}

	if _, err := os.Stat(cmd.Output); err == nil {
		overwrite, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Output))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stdout, "skipped writing %s", cmd.Output)
			return nil
		}
	}

	if err := os.WriteFile(cmd.Output, []byte(rendered+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", cmd.Output))
	return nil
}
