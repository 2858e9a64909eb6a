// Package cli holds the plumbing shared by the vertools and commit-msg
// commands: the tool version and diagnostic logging.
package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w. Only warnings and errors
// are shown unless verbose is set, so normal runs keep stderr quiet.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
