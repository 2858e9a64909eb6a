package commitlint

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when dir is not inside a git working tree.
var ErrNotRepository = errors.New("not a git repository")

// CurrentBranch returns the short name of the branch checked out in the
// repository containing dir. A detached HEAD is reported as "HEAD", the
// same answer `git rev-parse --abbrev-ref HEAD` gives. An unborn branch
// still reports its name.
func CurrentBranch(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return "", fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return plumbing.HEAD.String(), nil
}
