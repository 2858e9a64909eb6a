package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/pkgtools/vertools/internal/cli"
	"github.com/pkgtools/vertools/pkg/commitlint"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)

func usage(w io.Writer, fs *pflag.FlagSet) func() {
	return func() {
		msg := `Usage:
  commit-msg [options] <commit-msg-file>

Git commit-msg hook. On the main branch the commit message must start with a
conventional-commit tag, e.g. "feat: add thing" or "fix(parser)!: breaking change".
Commits on any other branch are accepted unchecked.

Install:
  ln -s "$(command -v commit-msg)" .git/hooks/commit-msg

Options:
`
		fmt.Fprint(w, msg)
		fmt.Fprint(w, fs.FlagUsages())
	}
}

func main() {
	os.Exit(run(os.Args[1:], ".", os.Stdout, os.Stderr))
}

// run lints the commit message named in args for the repository at dir.
func run(args []string, dir string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("commit-msg", pflag.ContinueOnError)
	fs.SetOutput(stderr)
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
		fmt.Fprintln(stdout, "commit-msg CLI version", cli.Version)
		return exitSuccess
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(stderr, "Error: <commit-msg-file> positional argument is required")
		fs.Usage()
		return exitUsage
	}
	msgFile := rest[0]

	log := cli.NewLogger(stderr, *verbose)

	branch, err := commitlint.CurrentBranch(dir)
	if err != nil {
		fmt.Fprintln(stderr, "Error: failed to determine current branch:", err)
		return exitError
	}
	if !commitlint.IsMainBranch(branch) {
		log.Debug().Str("branch", branch).Msg("not on main, skipping commit message check")
		return exitSuccess
	}

	data, err := os.ReadFile(msgFile)
	if err != nil {
		fmt.Fprintln(stderr, "Error: failed to read commit message:", err)
		return exitError
	}

	if err := commitlint.Check(branch, string(data)); err != nil {
		var lintErr *commitlint.LintError
		if errors.As(err, &lintErr) {
			fmt.Fprintf(stderr, "Error: Commit message must start with one of the following tags: %s.\n", lintErr.TagList())
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return exitError
	}

	log.Debug().Str("branch", branch).Str("file", msgFile).Msg("commit message ok")
	return exitSuccess
}
