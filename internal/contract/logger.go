package contract

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostic logger. Verbose runs log at debug level,
// other runs only surface warnings. Output goes to stderr so it never mixes
// with tables written to stdout.
func NewLogger(verbose bool) *logrus.Logger {
	return newLoggerTo(os.Stderr, verbose)
}

// DiscardLogger returns a logger that drops everything, for tests and MCP stdio.
func DiscardLogger() *logrus.Logger {
	return newLoggerTo(io.Discard, false)
}

func newLoggerTo(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
