// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fastats/internal/cliutil"
	"fastats/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Files   []string // positional FASTA paths; empty means read stdin
	MinLen  int
	LogFile string
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – FASTA statistics\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [options] [FASTA_FILE ...]\n\n", name)
		fmt.Fprintln(out, "Reads each FASTA file (or standard input when none are named) and prints")
		fmt.Fprintln(out, "one tab-separated summary row per input: total bases, sequence count and")
		fmt.Fprintln(out, "min/avg/max sequence length. Use '-' to name standard input explicitly.")
		fmt.Fprintln(out, "\nOptions:")
		fmt.Fprintln(out, "  -m, --minlen int      minimum length a sequence must have to be counted [0]")
		fmt.Fprintln(out, "      --log FILE        record program progress in FILE")
		fmt.Fprintln(out, "  -v, --version         print version and exit")
		fmt.Fprintln(out, "  -h, --help            show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and positionals may be interleaved; globs among positionals are
// expanded. Zero positionals is valid and selects stdin mode.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.MinLen, "minlen", 0, "minimum sequence length to count [0]")
	fs.IntVar(&opt.MinLen, "m", 0, "alias of --minlen")
	fs.StringVar(&opt.LogFile, "log", "", "record program progress in FILE")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files

	if opt.MinLen < 0 {
		return opt, errors.New("--minlen must be ≥ 0")
	}
	return opt, nil
}
