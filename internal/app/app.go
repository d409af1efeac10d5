// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"fastats-core/fasta"
	"fastats/internal/cli"
	"fastats/internal/logging"
	"fastats/internal/output"
	"fastats/internal/report"
	"fastats/internal/version"
)

const prog = "fastats"

// Exit codes as documented in the usage text.
const (
	ExitOK       = 0 // success
	ExitFileErr  = 1 // a named input could not be opened
	ExitCLIErr   = 2 // bad command-line arguments
	ExitParseErr = 3 // malformed FASTA input
)

// RunContext parses argv, runs the orchestrator against stdin/stdout, and
// maps any failure to the process exit code. It never calls os.Exit and
// never prints from below this boundary.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(prog)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return ExitOK
		}
		fmt.Fprintf(stderr, "%s ERROR: %v\n", prog, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitCLIErr
	}

	if opts.Version {
		fmt.Fprintf(outw, "%s version %s\n", prog, version.Version)
		return ExitOK
	}

	logger := logging.Discard()
	if opts.LogFile != "" {
		lg, closer, lerr := logging.Open(opts.LogFile)
		if lerr != nil {
			fmt.Fprintf(stderr, "%s ERROR: %v\n", prog, lerr)
			return ExitFileErr
		}
		defer func() { _ = closer.Close() }()
		logger = lg
	}
	logger.Info("program started")
	logger.Info("command line: " + prog + " " + strings.Join(argv, " "))

	w := output.NewWriter(outw)
	ropts := report.Options{Files: opts.Files, MinLen: opts.MinLen}
	if err := report.Run(ctx, ropts, stdin, w, logger); err != nil {
		// Rows already produced stay; flush them before reporting.
		_ = outw.Flush()
		if output.IsBrokenPipe(err) {
			return ExitOK
		}
		if errors.Is(err, context.Canceled) {
			return 130
		}
		logger.Error(err.Error())
		fmt.Fprintf(stderr, "%s ERROR: %v\n", prog, err)
		return exitCode(err)
	}

	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintf(stderr, "%s ERROR: %v\n", prog, e)
		return ExitFileErr
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// exitCode translates a typed failure into its documented exit code.
func exitCode(err error) int {
	var oe *report.OpenError
	if errors.As(err, &oe) {
		return ExitFileErr
	}
	var pe *fasta.ParseError
	if errors.As(err, &pe) {
		return ExitParseErr
	}
	return ExitFileErr
}
