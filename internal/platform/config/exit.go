package config

import (
	"fmt"
	"io"
	"os"
)

// Exit codes used by command entry points.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with ExitFailure.
func Exitf(format string, args ...any) {
	ExitWithCode(ExitFailure, format, args...)
}

// ExitWithCode writes a formatted error message to stderr and exits with code.
func ExitWithCode(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(code)
}
