package contract

import (
	"fmt"

	"github.com/huangsam/gitplots/schema"
)

// ExtractionError reports that commit timestamps could not be read from a repository.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot read commits from %q: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// StructureError reports a root or category layout that cannot be walked.
type StructureError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid layout at %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid layout at %q: %s", e.Path, e.Reason)
}

func (e *StructureError) Unwrap() error { return e.Err }

// RenderError reports that a chart could not be drawn or encoded.
type RenderError struct {
	Chart schema.ChartKind
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render %s chart: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
