package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chimera-tools/chimera-format/internal/fs"
)

// Run executes the command line in args (including the program name). A
// non-zero status from the formatting helper is returned as *ExitCodeError.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	if envProvider == nil {
		envProvider = fs.NewEnvProvider()
	}

	st := &state{
		env:    envProvider,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		level:  logLevel,
	}
	defer st.Close()

	rootCmd := NewLaunchCmd(st)
	if IsSubcommand(args[1:]) {
		rootCmd = NewRootCmd(st)
	}
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *ExitCodeError
		if !errors.As(err, &exitErr) {
			// The helper reports its own failures; everything else is ours to print.
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return err
	}

	return nil
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
