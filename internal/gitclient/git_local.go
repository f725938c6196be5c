package gitclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/huangsam/gitplots/core/agg"
	"github.com/huangsam/gitplots/internal/contract"
)

// SubprocessError carries the exit code and stderr of a failed git command.
type SubprocessError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *SubprocessError) Error() string {
	cmd := "git " + strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", cmd, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", cmd, e.ExitCode)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// LocalReader implements the LogReader interface by executing the
// local 'git' binary installed on the machine.
type LocalReader struct{}

var _ contract.LogReader = &LocalReader{} // Compile-time check

// NewLocalReader creates a new instance of the local git reader.
func NewLocalReader() *LocalReader {
	return &LocalReader{}
}

// targetArgs picks how git is pointed at a repository. A directory holding
// a .git entry is a working tree; anything else is a metadata directory.
func targetArgs(repoPath string) []string {
	if _, err := os.Stat(filepath.Join(repoPath, ".git")); err == nil {
		return []string{"-C", repoPath}
	}
	return []string{"--git-dir=" + repoPath}
}

// Run executes a git command against a repository and returns its stdout.
func (r *LocalReader) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append(targetArgs(repoPath), args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &SubprocessError{
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// hasCommits reports whether HEAD resolves to a commit.
func (r *LocalReader) hasCommits(ctx context.Context, repoPath string) (bool, error) {
	_, err := r.Run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "HEAD")
	var subErr *SubprocessError
	if errors.As(err, &subErr) && subErr.ExitCode == 1 {
		return false, nil
	}
	return err == nil, err
}

// ReadTimestamps implements the LogReader interface.
func (r *LocalReader) ReadTimestamps(ctx context.Context, repoPath string) ([]int64, error) {
	if _, err := r.Run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}

	ok, err := r.hasCommits(ctx, repoPath)
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}
	if !ok {
		return []int64{}, nil
	}

	out, err := r.Run(ctx, repoPath, "log", "--format=%at")
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}
	timestamps, err := agg.ParseTimestamps(out)
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}
	return timestamps, nil
}
