package ops

import (
	"os"
	"path/filepath"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// StatusOutput contains the result of the Status operation.
type StatusOutput struct {
	Root             string `json:"root"`
	Branch           string `json:"branch"`
	NormalizedBranch string `json:"normalized_branch"`
	HeadSHA          string `json:"head_sha"`
	UserName         string `json:"user_name"`
	StatusSummary    string `json:"status_summary"`
	DiffStat         string `json:"diff_stat"`
	JournalPath      string `json:"journal_path,omitempty"`
	HasJournal       bool   `json:"has_journal"`
}

// Status reports the live repository state the journal operations would
// record, plus whether a journal already exists for the current branch.
// Read-only: nothing on disk changes.
func Status(g GitClient, cfg *config.Config) (*StatusOutput, error) {
	rc, err := resolveRepo(g)
	if err != nil {
		return nil, err
	}

	out := &StatusOutput{
		Root:             rc.Root,
		Branch:           rc.Branch,
		NormalizedBranch: rc.Normalized,
		HeadSHA:          g.HeadSHA(),
		UserName:         g.UserName(),
		StatusSummary:    g.StatusSummary(),
		DiffStat:         g.DiffStat(),
	}

	if path, found := journal.FindFile(rc.branchesDir(cfg.BranchesDir), rc.Normalized, cfg.JournalFile); found {
		out.JournalPath = rc.relPath(path)
		out.HasJournal = true
	}

	return out, nil
}

// journalExists reports whether any file exists at the given path.
func journalExists(folder, fileName string) bool {
	_, err := os.Stat(filepath.Join(folder, fileName))
	return err == nil
}
