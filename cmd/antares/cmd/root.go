// Package cmd implements the antares command-line tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. Usage errors come from cobra itself (bad flags, wrong arity).
const (
	ExitOK         = 0
	ExitFindings   = 1
	ExitLoadFailed = 2
	ExitUsage      = 3
)

// exitError carries a process exit code through cobra's RunE plumbing.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func exitf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:           "antares",
	Short:         "Antares campaign content tool",
	Long:          "Antares loads, validates, formats, and merges RON campaign content.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, "antares:", ee.err)
			}
			return ee.code
		}
		// Anything cobra surfaces itself is a usage problem.
		fmt.Fprintln(os.Stderr, "antares:", err)
		return ExitUsage
	}
	return ExitOK
}
