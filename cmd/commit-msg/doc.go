// Package main implements the commit-msg git hook.
//
// Git invokes the hook with the path of the file holding the proposed
// commit message. When the repository's current branch is main, the
// message must match
//
//	^(build|chore|ci|docs|feat|fix|perf|style|refactor|test)(\([a-z0-9\-_]+\))?(!)?:\s.*
//
// otherwise the hook lists the accepted tags and exits with status 1,
// aborting the commit. On every other branch the hook exits 0 without
// reading the message. If the current branch cannot be determined the hook
// fails.
//
// Command Usage:
//
//	commit-msg [flags] <commit-msg-file>
//
// Flags:
//
//	-v, --verbose: Log diagnostics to stderr.
//	--version:     Displays the version of the hook and exits.
package main
