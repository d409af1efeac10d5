// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.MinLen != 0 || o.LogFile != "" || len(o.Files) != 0 || o.Version {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestPositionalFiles(t *testing.T) {
	o := mustParse(t, "a.fa", "b.fa")
	if len(o.Files) != 2 || o.Files[0] != "a.fa" || o.Files[1] != "b.fa" {
		t.Errorf("bad files %+v", o.Files)
	}
}

func TestInterleavedFlagsAndFiles(t *testing.T) {
	o := mustParse(t, "a.fa", "--minlen", "2", "b.fa")
	if o.MinLen != 2 || len(o.Files) != 2 {
		t.Errorf("bad interleaved parse %+v", o)
	}
}

func TestMinlenShorthand(t *testing.T) {
	o := mustParse(t, "-m", "5", "x.fa")
	if o.MinLen != 5 {
		t.Errorf("want minlen 5, got %+v", o)
	}
}

func TestLogFile(t *testing.T) {
	o := mustParse(t, "--log", "run.log")
	if o.LogFile != "run.log" {
		t.Errorf("want log file, got %+v", o)
	}
}

func TestDashIsStdin(t *testing.T) {
	o := mustParse(t, "-")
	if len(o.Files) != 1 || o.Files[0] != "-" {
		t.Errorf("want '-' passthrough, got %+v", o.Files)
	}
}

func TestVersionFlag(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Errorf("want Version set, got %+v", o)
	}
}

func TestHelpFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestErrorNegativeMinlen(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--minlen", "-1"})
	if err == nil {
		t.Fatalf("expected error for negative --minlen")
	}
}

func TestErrorUnknownFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--bogus"})
	if err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
