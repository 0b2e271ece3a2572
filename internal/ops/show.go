package ops

import (
	"bytes"
	"os"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/journal"
)

// ShowInput contains parameters for the Show operation.
type ShowInput struct {
	// HTML renders the journal markdown to HTML instead of returning the
	// raw content.
	HTML bool
}

// ShowOutput contains the result of the Show operation.
type ShowOutput struct {
	Path    string `json:"path"`
	RelPath string `json:"rel_path"`
	Branch  string `json:"branch"`
	Content string `json:"content"`
}

// Show returns the current branch's journal content, raw or rendered.
func Show(g GitClient, cfg *config.Config, input ShowInput) (*ShowOutput, error) {
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

	content := string(data)
	if input.HTML {
		var buf bytes.Buffer
		if err := goldmark.Convert(data, &buf); err != nil {
			return nil, errors.NewInternal(err)
		}
		content = buf.String()
	}

	return &ShowOutput{
		Path:    path,
		RelPath: rc.relPath(path),
		Branch:  rc.Branch,
		Content: content,
	}, nil
}
