package gitx

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandExecutor runs git and captures its output. The indirection exists
// so tests can substitute canned responses without a git binary or a
// repository on disk.
type CommandExecutor interface {
	// Output runs git with the given arguments in dir and returns trimmed
	// stdout. A non-zero exit, or a missing git binary, is an error.
	Output(dir string, args ...string) (string, error)
}

// ExecExecutor is the default CommandExecutor backed by os/exec.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Output implements CommandExecutor.
func (e *ExecExecutor) Output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
