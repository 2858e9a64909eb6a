// Package main implements the vertools CLI.
//
// vertools reads the version assigned to __version__ in a Python source
// file (usually a package's __init__.py), optionally increments one
// component, and prints the result to standard output without a trailing
// newline, ready to be captured by a build script.
//
// Command Usage:
//
//	vertools [flags] <path>
//
// Flags:
//
//	-i, --increment: Component to bump before printing: major, minor or micro.
//	                 Case-insensitive. Lower-order components reset to zero.
//	-w, --write:     Write the bumped version back to <path>, changing only the
//	                 version digits.
//	-v, --verbose:   Log diagnostics to stderr.
//	--version:       Displays the version of the vertools CLI and exits.
//
// Examples:
//
//	# Print the current version (e.g. 2.4.8)
//	vertools mypkg/__init__.py
//
//	# Bump the major version (e.g. 2.4.8 → 3.0.0)
//	vertools --increment major mypkg/__init__.py
//
//	# Bump the micro version and save it (e.g. 2.4.8 → 2.4.9)
//	vertools -i micro -w mypkg/__init__.py
//
// A missing file or a file without a well-formed __version__ line exits
// with status 1; usage errors, including an unknown increment kind, exit
// with status 2.
package main
