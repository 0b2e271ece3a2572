package ops

import (
	"os"
	"time"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Path             string `json:"path"`
	RelPath          string `json:"rel_path"`
	Branch           string `json:"branch"`
	NormalizedBranch string `json:"normalized_branch"`
	UserName         string `json:"user_name"`
	HeadSHA          string `json:"head_sha"`
	StatusSummary    string `json:"status_summary"`
	DiffStat         string `json:"diff_stat"`
	EntryAdded       bool   `json:"entry_added"`
}

// Update refreshes the metadata fields of the current branch's journal and
// appends a dated log entry unless one for today already exists. Narrative
// sections are preserved byte for byte.
func Update(g GitClient, cfg *config.Config) (*UpdateOutput, error) {
	rc, err := resolveRepo(g)
	if err != nil {
		return nil, err
	}

	path, found := journal.FindFile(rc.branchesDir(cfg.BranchesDir), rc.Normalized, cfg.JournalFile)
	if !found {
		return nil, errors.NewJournalNotFound(rc.Branch)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now()
	userName := g.UserName()
	headSHA := g.HeadSHA()
	statusSummary := g.StatusSummary()

	content := journal.UpdateMetadata(string(data), journal.Metadata{
		UserName:  userName,
		Branch:    rc.Branch,
		HeadSHA:   headSHA,
		UpdatedAt: now,
	})
	content, entryAdded := journal.InsertLogEntry(content, now, statusSummary)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &UpdateOutput{
		Path:             path,
		RelPath:          rc.relPath(path),
		Branch:           rc.Branch,
		NormalizedBranch: rc.Normalized,
		UserName:         userName,
		HeadSHA:          headSHA,
		StatusSummary:    statusSummary,
		DiffStat:         g.DiffStat(),
		EntryAdded:       entryAdded,
	}, nil
}
