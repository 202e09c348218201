// Package cli provides the command-line interface for the ledger engine.
// The core packages return plain data and strings; everything process
// related (usage text, exit codes, prompts, styling) lives here.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/robinvdvleuten/ledger/loader"
	"github.com/robinvdvleuten/ledger/output"
	"github.com/robinvdvleuten/ledger/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// FileOrStdin accepts either a ledger file path or "-" for stdin.
// For stdin: Filename="<stdin>", Contents populated.
// For files: Filename set, Contents nil (read by loader).
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = nil

	return nil
}

// Resolve fills in the filename when none was given on the command line or
// through LEDGER_FILE: the config file's default is consulted first, and as
// a last resort stdin is read.
func (f *FileOrStdin) Resolve(globals *Globals) error {
	if f.Filename != "" {
		return nil
	}

	config, err := loadConfig(globals.Config)
	if err != nil {
		return err
	}
	if config.File != "" {
		f.Filename = config.File
		return nil
	}

	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	f.Filename = "<stdin>"
	f.Contents = contents
	return nil
}

// Load reads and parses the resolved input.
func (f *FileOrStdin) Load(ctx context.Context, globals *Globals) (*loader.Result, error) {
	if err := f.Resolve(globals); err != nil {
		return nil, err
	}

	if f.Contents != nil {
		return loader.LoadBytes(ctx, f.Filename, f.Contents)
	}
	return loader.Load(ctx, f.Filename)
}

// withTelemetry wires a timing collector into the context when the global
// telemetry flag is set. The returned finish function reports collected
// timings to stderr; it is safe to call more than once.
func withTelemetry(ctx *kong.Context, globals *Globals, name string, filename string) (context.Context, func()) {
	runCtx := context.Background()

	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)

	rootTimer := collector.Start(fmt.Sprintf("%s %s", name, filepath.Base(filename)))
	runCtx = telemetry.WithRootTimer(runCtx, rootTimer)

	reported := false
	finish := func() {
		if reported {
			return
		}
		reported = true
		rootTimer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
	}
	return runCtx, finish
}
