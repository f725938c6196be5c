package gitclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitWithGoGit builds a repository without the git binary.
func commitWithGoGit(t *testing.T, dir string, times ...time.Time) {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, when := range times {
		name := fmt.Sprintf("file%d.txt", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
		_, err := wt.Add(name)
		require.NoError(t, err)
		sig := &object.Signature{Name: "Test", Email: "test@example.com", When: when}
		_, err = wt.Commit(fmt.Sprintf("commit %d", i), &git.CommitOptions{Author: sig, Committer: sig})
		require.NoError(t, err)
	}
}

func TestGoGitReaderWithoutBinary(t *testing.T) {
	dir := t.TempDir()
	commitWithGoGit(t, dir, fixedTimes...)

	ts, err := NewGoGitReader().ReadTimestamps(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, unixTimes(fixedTimes), sorted(ts))
}

func TestGoGitReaderEmptyRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	ts, err := NewGoGitReader().ReadTimestamps(context.Background(), dir)
	require.NoError(t, err)
	assert.Empty(t, ts)
}

func TestGoGitReaderCanceled(t *testing.T) {
	dir := t.TempDir()
	commitWithGoGit(t, dir, fixedTimes...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGoGitReader().ReadTimestamps(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}
