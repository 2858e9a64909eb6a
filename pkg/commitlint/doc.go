// Package commitlint validates commit messages against the conventional
// commit format used on the main branch:
//
//	type(scope)!: subject
//
// where type is one of build, chore, ci, docs, feat, fix, perf, style,
// refactor or test, the scope is lowercase alphanumerics, "-" or "_", and
// both the scope and the "!" breaking-change marker are optional.
//
// Only commits on the main branch are checked; feature branches may carry
// work-in-progress messages that get squashed or reworded before landing.
package commitlint
