package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// fakeGit is a canned GitClient for tests. Zero-valued error fields mean
// the repository queries succeed.
type fakeGit struct {
	root      string
	branch    string
	rootErr   error
	branchErr error

	user   string
	sha    string
	status string
	diff   string
}

func (f *fakeGit) RepoRoot() (string, error) {
	if f.rootErr != nil {
		return "", f.rootErr
	}
	return f.root, nil
}

func (f *fakeGit) CurrentBranch() (string, error) {
	if f.branchErr != nil {
		return "", f.branchErr
	}
	return f.branch, nil
}

func (f *fakeGit) UserName() string {
	if f.user == "" {
		return "Unknown"
	}
	return f.user
}

func (f *fakeGit) HeadSHA() string {
	if f.sha == "" {
		return "unknown"
	}
	return f.sha
}

func (f *fakeGit) StatusSummary() string {
	if f.status == "" {
		return "No changes"
	}
	return f.status
}

func (f *fakeGit) DiffStat() string {
	if f.diff == "" {
		return "No diff"
	}
	return f.diff
}

// newTestRepo returns a fake git client rooted at a temp dir.
func newTestRepo(t *testing.T, branch string) *fakeGit {
	t.Helper()
	return &fakeGit{
		root:   t.TempDir(),
		branch: branch,
		user:   "Ada Lovelace",
		sha:    "abc1234",
	}
}

// writeStaleJournal plants a journal created on an earlier date, so update
// tests can observe entry insertion without same-day suppression.
func writeStaleJournal(t *testing.T, g *fakeGit, cfg *config.Config, narrative string) string {
	t.Helper()

	normalized := journal.NormalizeBranch(g.branch)
	folder := filepath.Join(g.root, cfg.BranchesDir, "2024-01-10_"+normalized)
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatal(err)
	}

	content := journal.Render(journal.LoadTemplate(""), journal.Values{
		UserName:    "Ada Lovelace",
		Created:     "2024-01-10 09:00",
		LastUpdated: "2024-01-10 09:00",
		Branch:      g.branch,
		HeadSHA:     "abc1234",
	})
	if narrative != "" {
		content = strings.Replace(content, "- [What problem is being solved?]", "- "+narrative, 1)
	}

	path := filepath.Join(folder, cfg.JournalFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
