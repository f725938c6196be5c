package agg

import (
	"strconv"
	"strings"
	"time"
)

// generateTestLog creates a `git log --format=%at` fixture for testing.
func generateTestLog(times ...time.Time) []byte {
	lines := make([]string, len(times))
	for i, t := range times {
		lines[i] = strconv.FormatInt(t.Unix(), 10)
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
