package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/hinter/internal/feedback"
	"github.com/robalobadob/wordle/apps/hinter/internal/solver"
	"github.com/robalobadob/wordle/apps/hinter/internal/words"
)

// Exit statuses.
const (
	exitOK       = 0
	exitUsage    = 1
	exitWordList = 3
	exitInternal = 4
)

func main() {
	_ = godotenv.Load()
	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := execute(ctx, newRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs root and reports its error: usage of the failing command for
// usage errors, a log line for everything else.
func execute(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	c, err := root.ExecuteContextC(ctx)
	code := exitCode(err)
	if code == exitUsage {
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, c.UsageString())
	} else if err != nil {
		log.Error().Err(err).Msg("hinter failed")
	}
	return code
}

// setupLogger configures the global zerolog logger: human-readable on a
// terminal, JSON otherwise, always on stderr so results on stdout stay clean.
func setupLogger() {
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var fe *words.FileError
	var pe *feedback.ParseError
	var ue *usageError
	switch {
	case errors.As(err, &fe):
		return exitWordList
	case errors.As(err, &pe), errors.As(err, &ue), errors.Is(err, solver.ErrInvalidWord):
		return exitUsage
	}
	return exitInternal
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
