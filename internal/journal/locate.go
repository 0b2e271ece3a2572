package journal

import (
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// folderPattern builds the matcher for journal folder names belonging to a
// normalized branch: YYYY-MM-DD_<normalized>, exact suffix match.
func folderPattern(normalized string) *regexp.Regexp {
	return regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_` + regexp.QuoteMeta(normalized) + `$`)
}

// FindFolder scans the immediate subdirectories of branchesDir for a journal
// folder belonging to the normalized branch. The date prefix may differ from
// today, so matching is on the branch suffix. When stale folders from
// earlier dates remain, the most recent date wins: directory entries sort
// lexicographically and the date prefix is fixed-width.
func FindFolder(branchesDir, normalized string) (string, bool) {
	entries, err := os.ReadDir(branchesDir)
	if err != nil {
		return "", false
	}

	pattern := folderPattern(normalized)
	found := ""
	for _, entry := range entries {
		if entry.IsDir() && pattern.MatchString(entry.Name()) {
			found = entry.Name()
		}
	}

	if found == "" {
		return "", false
	}
	return filepath.Join(branchesDir, found), true
}

// FindFile locates the journal file for the normalized branch: like
// FindFolder, but only folders that actually contain fileName qualify.
func FindFile(branchesDir, normalized, fileName string) (string, bool) {
	entries, err := os.ReadDir(branchesDir)
	if err != nil {
		return "", false
	}

	pattern := folderPattern(normalized)
	found := ""
	for _, entry := range entries {
		if !entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		candidate := filepath.Join(branchesDir, entry.Name(), fileName)
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
		}
	}

	if found == "" {
		return "", false
	}
	return found, true
}

// FolderName builds a journal folder name for the given creation date and
// normalized branch.
func FolderName(date time.Time, normalized string) string {
	return date.Format(DateLayout) + "_" + normalized
}
