package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/gitjournal/internal/config"
)

func TestStatusWithoutJournal(t *testing.T) {
	g := newTestRepo(t, "feature/login-fix")
	g.status = "1 added, 2 modified"

	out, err := Status(g, config.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, g.root, out.Root)
	require.Equal(t, "feature/login-fix", out.Branch)
	require.Equal(t, "feature-login-fix", out.NormalizedBranch)
	require.Equal(t, "abc1234", out.HeadSHA)
	require.Equal(t, "1 added, 2 modified", out.StatusSummary)
	require.False(t, out.HasJournal)
	require.Empty(t, out.JournalPath)
}

func TestStatusWithJournal(t *testing.T) {
	g := newTestRepo(t, "main")
	cfg := config.DefaultConfig()
	writeStaleJournal(t, g, cfg, "")

	out, err := Status(g, cfg)
	require.NoError(t, err)
	require.True(t, out.HasJournal)
	require.Contains(t, out.JournalPath, "2024-01-10_main")
}
