/*
main.go - Application entry point

PURPOSE:
  Starts the interactive payroll tracker on stdin/stdout.
  Handles configuration, store selection and logger setup.

STARTUP SEQUENCE:
  1. Load config (defaults, PAYROLL_CONFIG_PATH YAML, PAYROLL_* env)
  2. Apply command-line flags on top
  3. Build the stderr logger, tagged with a per-run session ID
  4. Open the session store
  5. Run the menu loop until "5 - Exit" or end of input
  6. Close the store (every record is released)

COMMAND-LINE FLAGS:
  -store      Session store backend: memory (default) or sqlite
              sqlite always uses ":memory:", nothing is written to disk
  -log-level  zerolog level for stderr diagnostics (default: warn)
  -summary    Print a grand total line in the payroll report

EXIT CODES:
  0  Normal termination
  1  Startup failure (bad config, store could not be opened)
  2  Bad command-line flags

EXAMPLES:
  # Plain session
  ./payroll

  # SQLite-backed session with debug logs on stderr
  ./payroll -store=sqlite -log-level=debug

SEE ALSO:
  - console/session.go: Menu loop
  - config/config.go: Configuration sources
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/warp/payroll-tracker/config"
	"github.com/warp/payroll-tracker/console"
	"github.com/warp/payroll-tracker/generic"
	"github.com/warp/payroll-tracker/generic/store"
	"github.com/warp/payroll-tracker/store/sqlite"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("payroll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	driver := fs.String("store", cfg.Store.Driver, "Session store backend (memory|sqlite)")
	level := fs.String("log-level", cfg.Log.Level, "Log level for stderr diagnostics")
	summary := fs.Bool("summary", cfg.Report.Summary, "Print a grand total line in the report")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg.Store.Driver = *driver
	cfg.Log.Level = *level
	cfg.Report.Summary = *summary

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, cfg)

	st, err := openStore(cfg.Store.Driver)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize session store")
		return 1
	}
	logger.Info().Str("driver", cfg.Store.Driver).Msg("session store opened")

	session := console.NewSession(st, stdin, stdout, logger, console.ReportOptions{
		Summary: cfg.Report.Summary,
	})
	runErr := session.Run(context.Background())

	if err := st.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close session store")
	}
	logger.Info().Msg("session store closed")

	if runErr != nil {
		logger.Error().Err(runErr).Msg("session aborted")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, cfg config.Config) zerolog.Logger {
	// Validate already checked the level.
	level, _ := cfg.LogLevel()

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// isTerminal reports whether w is an interactive terminal. Colors are only
// used there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func openStore(driver string) (generic.Store, error) {
	switch driver {
	case config.DriverSQLite:
		s, err := sqlite.New()
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}
