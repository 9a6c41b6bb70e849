package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/momentum/internal/logger"
)

// swapped in tests
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr and exits with status 1. A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exit(1)
}

// Fatalf is Fatal for a formatted message.
func Fatalf(format string, args ...interface{}) {
	logger.Error("command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintln(stderr, Formatf(format, args...))
	exit(1)
}
