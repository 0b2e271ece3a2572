package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindFolder(t *testing.T) {
	branchesDir := t.TempDir()
	mkdirs(t, branchesDir,
		"2024-01-15_feature-login-fix",
		"2024-01-15_other-branch",
	)

	got, ok := FindFolder(branchesDir, "feature-login-fix")
	if !ok {
		t.Fatal("FindFolder() not found")
	}
	want := filepath.Join(branchesDir, "2024-01-15_feature-login-fix")
	if got != want {
		t.Errorf("FindFolder() = %q, want %q", got, want)
	}
}

func TestFindFolderMissingRoot(t *testing.T) {
	if _, ok := FindFolder(filepath.Join(t.TempDir(), "nope"), "main"); ok {
		t.Error("FindFolder() found a folder under a missing root")
	}
}

func TestFindFolderExactSuffix(t *testing.T) {
	branchesDir := t.TempDir()
	mkdirs(t, branchesDir,
		"2024-01-15_feature-login",
		"2024-01-15_feature-login-fix-extra",
	)

	// "feature-login-fix" is a prefix of one suffix and an extension of the
	// other; neither is an exact match.
	if _, ok := FindFolder(branchesDir, "feature-login-fix"); ok {
		t.Error("FindFolder() matched a non-exact branch suffix")
	}
}

func TestFindFolderIgnoresFiles(t *testing.T) {
	branchesDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(branchesDir, "2024-01-15_main"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok := FindFolder(branchesDir, "main"); ok {
		t.Error("FindFolder() matched a plain file")
	}
}

func TestFindFolderPrefersMostRecentDate(t *testing.T) {
	branchesDir := t.TempDir()
	mkdirs(t, branchesDir,
		"2024-01-10_main",
		"2024-03-02_main",
		"2023-12-31_main",
	)

	got, ok := FindFolder(branchesDir, "main")
	if !ok {
		t.Fatal("FindFolder() not found")
	}
	want := filepath.Join(branchesDir, "2024-03-02_main")
	if got != want {
		t.Errorf("FindFolder() = %q, want most recent %q", got, want)
	}
}

func TestFindFile(t *testing.T) {
	branchesDir := t.TempDir()
	mkdirs(t, branchesDir, "2024-01-15_main")
	journalPath := filepath.Join(branchesDir, "2024-01-15_main", "git-journal.md")
	if err := os.WriteFile(journalPath, []byte("# journal"), 0644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindFile(branchesDir, "main", "git-journal.md")
	if !ok {
		t.Fatal("FindFile() not found")
	}
	if got != journalPath {
		t.Errorf("FindFile() = %q, want %q", got, journalPath)
	}
}

func TestFindFileSkipsFolderWithoutJournal(t *testing.T) {
	branchesDir := t.TempDir()
	mkdirs(t, branchesDir, "2024-01-15_main")

	if _, ok := FindFile(branchesDir, "main", "git-journal.md"); ok {
		t.Error("FindFile() found a journal in an empty folder")
	}
}

func TestFolderName(t *testing.T) {
	date := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got := FolderName(date, "feature-login-fix")
	if got != "2024-01-15_feature-login-fix" {
		t.Errorf("FolderName() = %q", got)
	}
}
