// Package gitx wraps the handful of read-only git queries gitjournal needs.
// Every helper runs its command exactly once; failures degrade to sentinel
// values where the caller can live with a default, and to an error where the
// field is essential (repository root, branch name).
package gitx

import (
	"fmt"
	"strings"
)

// Client issues git queries scoped to a working directory.
type Client struct {
	// Dir is the directory the git commands run in. Empty means the
	// process working directory.
	Dir string

	// Exec runs the actual commands. Defaults to ExecExecutor.
	Exec CommandExecutor
}

// New creates a Client for the given working directory.
func New(dir string) *Client {
	return &Client{Dir: dir, Exec: NewExecExecutor()}
}

// git runs one git query and reports whether it succeeded.
func (c *Client) git(args ...string) (string, bool) {
	out, err := c.Exec.Output(c.Dir, args...)
	if err != nil {
		return "", false
	}
	return out, true
}

// RepoRoot returns the absolute path of the repository's top-level working
// directory.
func (c *Client) RepoRoot() (string, error) {
	out, ok := c.git("rev-parse", "--show-toplevel")
	if !ok || out == "" {
		return "", fmt.Errorf("not in a git repository")
	}
	return out, nil
}

// CurrentBranch returns the current branch's short name. On a detached HEAD
// it falls back to a descriptive tag-based name prefixed "detached-".
func (c *Client) CurrentBranch() (string, error) {
	if out, ok := c.git("symbolic-ref", "--short", "HEAD"); ok && out != "" {
		return out, nil
	}
	if out, ok := c.git("describe", "--tags", "--always"); ok && out != "" {
		return "detached-" + out, nil
	}
	return "", fmt.Errorf("could not determine current branch")
}

// UserName returns the configured git user name, or "Unknown".
func (c *Client) UserName() string {
	out, _ := c.git("config", "user.name")
	if out == "" {
		return "Unknown"
	}
	return out
}

// HeadSHA returns the short hash of HEAD, or "unknown".
func (c *Client) HeadSHA() string {
	out, ok := c.git("rev-parse", "--short", "HEAD")
	if !ok || out == "" {
		return "unknown"
	}
	return out
}

// StatusSummary returns a compact human summary of the working tree status,
// e.g. "2 added, 1 modified", or "No changes".
func (c *Client) StatusSummary() string {
	out, ok := c.git("status", "--porcelain")
	if !ok || out == "" {
		return "No changes"
	}
	return summarizeStatus(out)
}

// DiffStat returns staged and unstaged diff --stat output labelled by
// section, or "No diff".
func (c *Client) DiffStat() string {
	staged, _ := c.git("diff", "--cached", "--stat", "--stat-width=60")
	unstaged, _ := c.git("diff", "--stat", "--stat-width=60")

	var parts []string
	if staged != "" {
		parts = append(parts, "Staged:\n"+staged)
	}
	if unstaged != "" {
		parts = append(parts, "Unstaged:\n"+unstaged)
	}

	if len(parts) == 0 {
		return "No diff"
	}
	return strings.Join(parts, "\n\n")
}

// summarizeStatus counts porcelain status lines by kind and joins the
// non-zero counts. Staged additions count as added, "??" as untracked, and
// modifications/deletions count whether staged or not.
func summarizeStatus(porcelain string) string {
	var added, modified, deleted, untracked int

	for _, line := range strings.Split(porcelain, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "??"):
			untracked++
		case strings.HasPrefix(line, "A"):
			added++
		case strings.HasPrefix(line, "M"), strings.HasPrefix(line, " M"):
			modified++
		case strings.HasPrefix(line, "D"), strings.HasPrefix(line, " D"):
			deleted++
		}
	}

	var parts []string
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}
	if deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", deleted))
	}
	if untracked > 0 {
		parts = append(parts, fmt.Sprintf("%d untracked", untracked))
	}

	if len(parts) == 0 {
		return "No changes"
	}
	return strings.Join(parts, ", ")
}
