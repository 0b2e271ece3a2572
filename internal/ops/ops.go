// Package ops implements the journal operations behind the CLI commands and
// MCP tools: Ensure, Update, Status, Show, and List. Every operation threads
// the repository root explicitly; nothing reads ambient process state beyond
// the injected git client.
package ops

import (
	"path/filepath"

	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// GitClient is the surface of the git query client the operations need.
// *gitx.Client satisfies it; tests substitute a fake.
type GitClient interface {
	RepoRoot() (string, error)
	CurrentBranch() (string, error)
	UserName() string
	HeadSHA() string
	StatusSummary() string
	DiffStat() string
}

// repoContext is the state every operation resolves first: the repository
// root, the raw branch name, and its normalized form.
type repoContext struct {
	Root       string
	Branch     string
	Normalized string
}

// resolveRepo resolves the repository root and current branch, mapping
// failures to the coded errors the callers surface. Each underlying git
// query runs at most once.
func resolveRepo(g GitClient) (*repoContext, error) {
	root, err := g.RepoRoot()
	if err != nil {
		return nil, errors.NewNotRepository()
	}

	branch, err := g.CurrentBranch()
	if err != nil {
		return nil, errors.NewNoBranch()
	}

	return &repoContext{
		Root:       root,
		Branch:     branch,
		Normalized: journal.NormalizeBranch(branch),
	}, nil
}

// branchesDir returns the absolute path of the journal folder root.
func (rc *repoContext) branchesDir(dir string) string {
	return filepath.Join(rc.Root, dir)
}

// relPath renders path relative to the repository root for reporting;
// falls back to the absolute path when a relative form can't be built.
func (rc *repoContext) relPath(path string) string {
	rel, err := filepath.Rel(rc.Root, path)
	if err != nil {
		return path
	}
	return rel
}
