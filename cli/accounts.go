package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/ledger/report"
)

type AccountsCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin)." arg:"" optional:"" env:"LEDGER_FILE"`
}

func (cmd *AccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.Resolve(globals); err != nil {
		return err
	}

	runCtx, finish := withTelemetry(ctx, globals, "accounts", cmd.File.Filename)
	defer finish()

	result, err := cmd.File.Load(runCtx, globals)
	if err != nil {
		return err
	}

	for _, account := range report.Accounts(result.Journal) {
		_, _ = fmt.Fprintln(ctx.Stdout, account)
	}

	return nil
}
