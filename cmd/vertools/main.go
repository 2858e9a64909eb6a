// Package main implements a CLI tool that prints, and optionally bumps, the
// version declared in a Python package's __init__.py.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pkgtools/vertools/internal/cli"
	"github.com/pkgtools/vertools/pkg/vertools"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)

// kindFlag restricts --increment to the valid kinds while flags are parsed.
type kindFlag struct {
	kind vertools.Kind
}

func (f *kindFlag) String() string {
	if f.kind == 0 {
		return ""
	}
	return f.kind.String()
}

func (f *kindFlag) Set(value string) error {
	k, err := vertools.ParseKind(value)
	if err != nil {
		return err
	}
	f.kind = k
	return nil
}

func (f *kindFlag) Type() string {
	return "kind"
}

func usage(w io.Writer, fs *pflag.FlagSet) func() {
	return func() {
		msg := `Usage:
  vertools [options] <path>

Prints the version assigned to __version__ in <path> (typically a package's __init__.py),
optionally incrementing one component first. The result is printed without a trailing newline.

Examples:
  vertools mypkg/__init__.py
  vertools --increment minor mypkg/__init__.py
  vertools -i major -w mypkg/__init__.py

Positional arguments:
  <path>     File containing a line such as: __version__ = "1.2.3"

Options:
`
		fmt.Fprint(w, msg)
		fmt.Fprint(w, fs.FlagUsages())
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("vertools", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var increment kindFlag
	fs.VarP(&increment, "increment", "i", "Component to increment before printing: "+kindChoices())
	write := fs.BoolP("write", "w", false, "Write the incremented version back to <path>")
	verbose := fs.BoolP("verbose", "v", false, "Log diagnostics to stderr")
	showVersion := fs.Bool("version", false, "Show CLI version and exit")
	fs.Usage = usage(stderr, fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}
		fmt.Fprintln(stderr, "Error:", err)
		fs.Usage()
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, "vertools CLI version", cli.Version)
		return exitSuccess
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(stderr, "Error: <path> positional argument is required")
		fs.Usage()
		return exitUsage
	}
	path := rest[0]

	log := cli.NewLogger(stderr, *verbose)
	log.Debug().Str("path", path).Stringer("increment", increment.kind).Bool("write", *write).Msg("reading version")

	if *write && increment.kind == 0 {
		log.Warn().Msg("--write has no effect without --increment")
	}

	res, err := vertools.Run(path, increment.kind, *write)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	log.Debug().
		Stringer("old", res.Old).
		Stringer("new", res.New).
		Bool("written", res.Written).
		Msg("version resolved")

	fmt.Fprint(stdout, res.New.String())
	return exitSuccess
}

func kindChoices() string {
	names := make([]string, len(vertools.Kinds))
	for i, k := range vertools.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
