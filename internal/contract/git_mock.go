package contract

import (
	"context"
	"fmt"
	"slices"

	"github.com/stretchr/testify/mock"
)

// MockLogReader is a mock type for the LogReader type.
type MockLogReader struct {
	mock.Mock
}

var _ LogReader = &MockLogReader{} // Compile-time check

// ReadTimestamps implements the LogReader interface.
func (m *MockLogReader) ReadTimestamps(ctx context.Context, repoPath string) ([]int64, error) {
	ret := m.Called(ctx, repoPath)
	ts, _ := ret.Get(0).([]int64)
	return ts, ret.Error(1)
}

// StaticLogReader serves fixed timestamps keyed by repository path.
// Unknown paths fail with an ExtractionError, like an unreadable repository.
type StaticLogReader map[string][]int64

var _ LogReader = StaticLogReader{} // Compile-time check

// ReadTimestamps implements the LogReader interface.
func (s StaticLogReader) ReadTimestamps(ctx context.Context, repoPath string) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ExtractionError{Path: repoPath, Err: err}
	}
	ts, ok := s[repoPath]
	if !ok {
		return nil, &ExtractionError{Path: repoPath, Err: fmt.Errorf("not a git repository")}
	}
	return slices.Clone(ts), nil
}
