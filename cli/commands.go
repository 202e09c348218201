package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Config    string `help:"Path to the config file." type:"path"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Accounts     AccountsCmd     `cmd:"" help:"List all accounts referenced by transactions."`
	Balancesheet BalancesheetCmd `cmd:"" aliases:"bs" help:"Render the per-account, per-month balance table."`
	Check        CheckCmd        `cmd:"" help:"Parse a ledger file and report lines that were skipped."`
	Web          WebCmd          `cmd:"" help:"Start a web server for the journal."`
}
