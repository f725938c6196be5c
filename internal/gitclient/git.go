// Package gitclient has the commit log readers.
package gitclient

import (
	"fmt"

	"github.com/huangsam/gitplots/internal/contract"
	"github.com/huangsam/gitplots/schema"
)

// NewReader returns the LogReader for the configured backend.
func NewReader(kind schema.ReaderKind) (contract.LogReader, error) {
	switch kind {
	case schema.GitReader, "":
		return NewLocalReader(), nil
	case schema.GoGitReader:
		return NewGoGitReader(), nil
	default:
		return nil, fmt.Errorf("unknown reader %q", kind)
	}
}
