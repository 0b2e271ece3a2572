package ops

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// EnsureOutput contains the result of the Ensure operation.
type EnsureOutput struct {
	Path             string `json:"path"`
	RelPath          string `json:"rel_path"`
	Branch           string `json:"branch"`
	NormalizedBranch string `json:"normalized_branch"`
	Created          bool   `json:"created"`
}

// Ensure guarantees a journal file exists for the current branch. An
// existing journal is never overwritten; a folder from an earlier date
// without a journal file is reused. Exactly one file write happens when
// creating, zero otherwise.
func Ensure(g GitClient, cfg *config.Config) (*EnsureOutput, error) {
	rc, err := resolveRepo(g)
	if err != nil {
		return nil, err
	}

	branchesDir := rc.branchesDir(cfg.BranchesDir)
	now := time.Now()

	folder, found := journal.FindFolder(branchesDir, rc.Normalized)
	if found {
		path := filepath.Join(folder, cfg.JournalFile)
		if _, err := os.Stat(path); err == nil {
			return &EnsureOutput{
				Path:             path,
				RelPath:          rc.relPath(path),
				Branch:           rc.Branch,
				NormalizedBranch: rc.Normalized,
				Created:          false,
			}, nil
		}
		// Folder exists but the journal file is missing; reuse it.
	} else {
		folder = filepath.Join(branchesDir, journal.FolderName(now, rc.Normalized))
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, errors.NewInternal(err)
	}

	timestamp := now.Format(journal.TimestampLayout)
	content := journal.Render(journal.LoadTemplate(cfg.TemplatePath), journal.Values{
		UserName:    g.UserName(),
		Created:     timestamp,
		LastUpdated: timestamp,
		Branch:      rc.Branch, // raw name, normalization is for the folder only
		HeadSHA:     g.HeadSHA(),
	})

	path := filepath.Join(folder, cfg.JournalFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &EnsureOutput{
		Path:             path,
		RelPath:          rc.relPath(path),
		Branch:           rc.Branch,
		NormalizedBranch: rc.Normalized,
		Created:          true,
	}, nil
}
