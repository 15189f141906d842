// Command bitline evaluates bit-line operations, checks their algebraic laws
// and reports the CPU instructions backing them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hupe1980/bittersweet"
	"github.com/hupe1980/bittersweet/verify"
)

const envPrefix = "BITLINE_"

func main() {
	os.Exit(run(context.Background(), filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) int {
	var cfg struct {
		logLevel  string
		logFormat string
	}

	app := kingpin.New(name, "Diagnostics for bittersweet, the fixed-width bit-line algebra.").UsageWriter(stdout).ErrorWriter(stderr)
	app.Version(bittersweet.Version)
	app.HelpFlag.Short('h')
	app.Flag("log-level", "Minimum log level (debug, info, warn, error).").Default("info").Envar(envPrefix + "LOG_LEVEL").StringVar(&cfg.logLevel)
	app.Flag("log-format", "Log output format.").Default("text").Envar(envPrefix+"LOG_FORMAT").EnumVar(&cfg.logFormat, "text", "json")

	evalCmd := app.Command("eval", "Evaluate one operation on a word.")
	evalParams := addEvalParams(evalCmd)

	verifyCmd := app.Command("verify", "Check the algebraic laws over exhaustive or sampled words.")
	verifyParams := addVerifyParams(verifyCmd)

	infoCmd := app.Command("info", "Print the CPU bit-manipulation support.")

	// parse command line arguments
	parsedCmd, err := app.Parse(args)
	if err != nil {
		return checkError(stderr, err)
	}

	level, err := bittersweet.ParseLevel(cfg.logLevel)
	if err != nil {
		return checkError(stderr, err)
	}
	logger := newLogger(stderr, cfg.logFormat, level)

	ctx = withLogger(ctx, logger)
	ctx = withOutput(ctx, stdout)

	switch parsedCmd {
	case evalCmd.FullCommand():
		err = eval(ctx, evalParams)
	case verifyCmd.FullCommand():
		err = runVerify(ctx, verifyParams)
	case infoCmd.FullCommand():
		err = info(ctx)
	default:
		logger.Error("unknown command", "cmd", parsedCmd)
		return 1
	}
	return checkError(stderr, err)
}

func newLogger(w io.Writer, format string, level slog.Level) *bittersweet.Logger {
	if format == "json" {
		return bittersweet.NewJSONLogger(w, level)
	}
	return bittersweet.NewTextLogger(w, level)
}

func checkError(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, verify.ErrLawViolated):
		// The violation is already part of the printed report.
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

type contextKey uint8

const (
	contextKeyOutput contextKey = iota
	contextKeyLogger
)

func withOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, contextKeyOutput, w)
}

func output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(contextKeyOutput).(io.Writer); ok {
		return w
	}
	return os.Stdout
}

func withLogger(ctx context.Context, l *bittersweet.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, l)
}

func loggerFrom(ctx context.Context) *bittersweet.Logger {
	if l, ok := ctx.Value(contextKeyLogger).(*bittersweet.Logger); ok {
		return l
	}
	return bittersweet.NoopLogger()
}
