package gitclient

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/huangsam/gitplots/internal/contract"
)

// GoGitReader implements the LogReader interface in-process with go-git.
// It reads the same history as LocalReader without a git binary.
type GoGitReader struct{}

var _ contract.LogReader = &GoGitReader{} // Compile-time check

// NewGoGitReader creates a new instance of the go-git reader.
func NewGoGitReader() *GoGitReader {
	return &GoGitReader{}
}

// ReadTimestamps implements the LogReader interface.
func (r *GoGitReader) ReadTimestamps(ctx context.Context, repoPath string) ([]int64, error) {
	// PlainOpen accepts a working tree or a bare metadata directory.
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return []int64{}, nil
	} else if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}
	defer iter.Close()

	timestamps := []int64{}
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		timestamps = append(timestamps, c.Author.When.Unix())
		return nil
	})
	if err != nil {
		return nil, &contract.ExtractionError{Path: repoPath, Err: err}
	}
	return timestamps, nil
}
