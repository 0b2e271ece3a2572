package gitx

import (
	"fmt"
	"strings"
	"testing"
)

// fakeExecutor returns canned output keyed by the joined argument list.
// Missing keys behave like a failed git invocation.
type fakeExecutor struct {
	responses map[string]string
	calls     []string
}

func (f *fakeExecutor) Output(dir string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	out, ok := f.responses[key]
	if !ok {
		return "", fmt.Errorf("git %s: exit status 128", key)
	}
	return out, nil
}

func newFakeClient(responses map[string]string) (*Client, *fakeExecutor) {
	exec := &fakeExecutor{responses: responses}
	return &Client{Exec: exec}, exec
}

func TestRepoRoot(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"rev-parse --show-toplevel": "/home/dev/project",
	})
	root, err := c.RepoRoot()
	if err != nil {
		t.Fatalf("RepoRoot() error: %v", err)
	}
	if root != "/home/dev/project" {
		t.Errorf("RepoRoot() = %q", root)
	}
}

func TestRepoRootNotARepo(t *testing.T) {
	c, _ := newFakeClient(nil)
	if _, err := c.RepoRoot(); err == nil {
		t.Error("RepoRoot() = nil error outside a repository")
	}
}

func TestCurrentBranch(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string]string
		want      string
		wantErr   bool
	}{
		{
			name: "on a branch",
			responses: map[string]string{
				"symbolic-ref --short HEAD": "feature/login-fix",
			},
			want: "feature/login-fix",
		},
		{
			name: "detached HEAD falls back to describe",
			responses: map[string]string{
				"describe --tags --always": "v1.2.0-3-gabc1234",
			},
			want: "detached-v1.2.0-3-gabc1234",
		},
		{
			name:      "both queries fail",
			responses: nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newFakeClient(tt.responses)
			got, err := c.CurrentBranch()
			if tt.wantErr {
				if err == nil {
					t.Fatal("CurrentBranch() = nil error, want failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("CurrentBranch() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CurrentBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserName(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"config user.name": "Ada Lovelace",
	})
	if got := c.UserName(); got != "Ada Lovelace" {
		t.Errorf("UserName() = %q", got)
	}
}

func TestUserNameFallback(t *testing.T) {
	// No user.name configured resolves to the literal "Unknown".
	c, _ := newFakeClient(nil)
	if got := c.UserName(); got != "Unknown" {
		t.Errorf("UserName() = %q, want %q", got, "Unknown")
	}
}

func TestHeadSHA(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"rev-parse --short HEAD": "abc1234",
	})
	if got := c.HeadSHA(); got != "abc1234" {
		t.Errorf("HeadSHA() = %q", got)
	}
}

func TestHeadSHAFallback(t *testing.T) {
	c, _ := newFakeClient(nil)
	if got := c.HeadSHA(); got != "unknown" {
		t.Errorf("HeadSHA() = %q, want %q", got, "unknown")
	}
}

func TestStatusSummary(t *testing.T) {
	tests := []struct {
		name      string
		porcelain string
		want      string
	}{
		{
			name:      "one added two modified",
			porcelain: "A  new.go\nM  a.go\n M b.go",
			want:      "1 added, 2 modified",
		},
		{
			name:      "all kinds",
			porcelain: "A  new.go\nM  a.go\nD  gone.go\n?? scratch.txt",
			want:      "1 added, 1 modified, 1 deleted, 1 untracked",
		},
		{
			name:      "untracked only",
			porcelain: "?? one.txt\n?? two.txt",
			want:      "2 untracked",
		},
		{
			name:      "staged and unstaged modification on one file",
			porcelain: "MM a.go",
			want:      "1 modified",
		},
		{
			name:      "worktree deletion",
			porcelain: " D gone.go",
			want:      "1 deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newFakeClient(map[string]string{
				"status --porcelain": tt.porcelain,
			})
			if got := c.StatusSummary(); got != tt.want {
				t.Errorf("StatusSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusSummaryClean(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"status --porcelain": "",
	})
	if got := c.StatusSummary(); got != "No changes" {
		t.Errorf("StatusSummary() = %q, want %q", got, "No changes")
	}
}

func TestStatusSummaryGitFailure(t *testing.T) {
	c, _ := newFakeClient(nil)
	if got := c.StatusSummary(); got != "No changes" {
		t.Errorf("StatusSummary() = %q, want %q on failure", got, "No changes")
	}
}

func TestDiffStat(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"diff --cached --stat --stat-width=60": "a.go | 2 +-",
		"diff --stat --stat-width=60":          "b.go | 5 ++---",
	})
	got := c.DiffStat()
	want := "Staged:\na.go | 2 +-\n\nUnstaged:\nb.go | 5 ++---"
	if got != want {
		t.Errorf("DiffStat() = %q, want %q", got, want)
	}
}

func TestDiffStatEmpty(t *testing.T) {
	c, _ := newFakeClient(map[string]string{
		"diff --cached --stat --stat-width=60": "",
		"diff --stat --stat-width=60":          "",
	})
	if got := c.DiffStat(); got != "No diff" {
		t.Errorf("DiffStat() = %q, want %q", got, "No diff")
	}
}

func TestEachQueryRunsOnce(t *testing.T) {
	c, exec := newFakeClient(map[string]string{
		"status --porcelain": "M  a.go",
	})
	c.StatusSummary()
	if len(exec.calls) != 1 {
		t.Errorf("StatusSummary() issued %d git calls, want 1", len(exec.calls))
	}
}
