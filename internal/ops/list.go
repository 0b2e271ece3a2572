package ops

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/hpungsan/gitjournal/internal/config"
)

// folderNamePattern splits a journal folder name into its date prefix and
// normalized branch suffix.
var folderNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_(.+)$`)

// ListItem describes one journal folder.
type ListItem struct {
	Folder     string `json:"folder"`
	Date       string `json:"date"`
	Branch     string `json:"branch"` // normalized form, as encoded in the folder name
	Path       string `json:"path"`
	HasJournal bool   `json:"has_journal"`
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	BranchesDir string     `json:"branches_dir"`
	Items       []ListItem `json:"items"`
}

// List enumerates the journal folders in the repository. A missing branches
// directory is an empty listing, not an error. Items come back sorted by
// folder name (date first, so chronologically within a branch).
func List(g GitClient, cfg *config.Config) (*ListOutput, error) {
	rc, err := resolveRepo(g)
	if err != nil {
		return nil, err
	}

	branchesDir := rc.branchesDir(cfg.BranchesDir)
	out := &ListOutput{
		BranchesDir: branchesDir,
		Items:       []ListItem{},
	}

	entries, err := os.ReadDir(branchesDir)
	if err != nil {
		return out, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := folderNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		folderPath := filepath.Join(branchesDir, entry.Name())
		out.Items = append(out.Items, ListItem{
			Folder:     entry.Name(),
			Date:       m[1],
			Branch:     m[2],
			Path:       folderPath,
			HasJournal: journalExists(folderPath, cfg.JournalFile),
		})
	}

	return out, nil
}
