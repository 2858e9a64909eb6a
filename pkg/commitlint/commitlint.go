package commitlint

import (
	"fmt"
	"regexp"
	"strings"
)

// MainBranch is the only branch whose commits are linted.
const MainBranch = "main"

// Tags lists the accepted commit types in the order they are reported.
var Tags = []string{"build", "chore", "ci", "docs", "feat", "fix", "perf", "style", "refactor", "test"}

// messagePattern is type(scope)!: subject with scope and "!" optional.
var messagePattern = regexp.MustCompile(`^(` + strings.Join(Tags, "|") + `)(\([a-z0-9\-_]+\))?(!)?:\s.*`)

// LintError reports a commit message that does not start with a valid tag.
type LintError struct {
	Tags []string
}

func (e *LintError) Error() string {
	return "commit message must start with one of the following tags: " + e.TagList()
}

// TagList renders the accepted tags as "build:, chore:, ...".
func (e *LintError) TagList() string {
	list := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		list[i] = tag + ":"
	}
	return strings.Join(list, ", ")
}

// IsMainBranch reports whether name is the linted branch.
func IsMainBranch(name string) bool {
	return name == MainBranch
}

// Validate checks message against the conventional-commit grammar.
func Validate(message string) error {
	if messagePattern.MatchString(message) {
		return nil
	}
	return &LintError{Tags: append([]string(nil), Tags...)}
}

// Check applies the hook policy: messages are only validated on the main
// branch, every other branch passes unconditionally.
func Check(branch, message string) error {
	if !IsMainBranch(branch) {
		return nil
	}
	if err := Validate(message); err != nil {
		return fmt.Errorf("branch %s: %w", branch, err)
	}
	return nil
}
