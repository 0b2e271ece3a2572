package journal

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
)

// Placeholder tokens recognized inside journal templates. None is a
// substring of another, so replacement order does not matter.
const (
	PlaceholderUserName    = "{{GIT_USER_NAME}}"
	PlaceholderCreated     = "{{CREATED_DATE}}"
	PlaceholderLastUpdated = "{{LAST_UPDATED}}"
	PlaceholderBranch      = "{{BRANCH_NAME}}"
	PlaceholderHeadSHA     = "{{HEAD_SHA}}"
)

//go:embed assets/git-journal-template.md
var defaultTemplate string

// Values holds the live values substituted into a journal template.
type Values struct {
	UserName    string
	Created     string
	LastUpdated string
	Branch      string
	HeadSHA     string
}

// LoadTemplate returns the journal template text. Resolution order: the
// explicitly configured path, a template asset next to the executable, and
// finally the embedded fallback. It never fails; an unreadable path falls
// through to the next candidate.
func LoadTemplate(override string) string {
	if override != "" {
		if data, err := os.ReadFile(override); err == nil {
			return string(data)
		}
	}

	if exe, err := os.Executable(); err == nil {
		assetPath := filepath.Join(filepath.Dir(exe), "assets", "git-journal-template.md")
		if data, err := os.ReadFile(assetPath); err == nil {
			return string(data)
		}
	}

	return defaultTemplate
}

// Render substitutes every occurrence of the placeholder tokens with the
// given values.
func Render(template string, v Values) string {
	return strings.NewReplacer(
		PlaceholderUserName, v.UserName,
		PlaceholderCreated, v.Created,
		PlaceholderLastUpdated, v.LastUpdated,
		PlaceholderBranch, v.Branch,
		PlaceholderHeadSHA, v.HeadSHA,
	).Replace(template)
}
