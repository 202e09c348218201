package cli

import (
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/ledger/web"
)

type WebCmd struct {
	File    string `help:"Ledger input filename." arg:"" optional:"" env:"LEDGER_FILE" type:"existingfile"`
	Port    int    `help:"Port to listen on." default:"8080"`
	NoWatch bool   `help:"Disable reloading the journal when the file changes."`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	if cmd.File == "" {
		config, err := loadConfig(globals.Config)
		if err != nil {
			return err
		}
		cmd.File = config.File
	}

	runCtx, finish := withTelemetry(ctx, globals, "web", cmd.File)
	defer finish()

	runCtx, stop := signal.NotifyContext(runCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := web.New(cmd.Port, cmd.File)
	server.Version = Version
	server.WatchEnabled = !cmd.NoWatch

	printInfof(ctx.Stdout, "serving http://%s:%d", server.Host, server.Port)

	return server.Start(runCtx)
}
