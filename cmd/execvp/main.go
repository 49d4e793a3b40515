// Command execvp replaces itself with the program given on its command
// line, passing on all remaining arguments. Unless told otherwise, argv[0]
// of the new program is the program name as given.
//
//   execvp [--argv0 NAME] [-v] PROGRAM [ARG...]
//
// If the replacement fails, execvp exits with 127 when PROGRAM could not be
// found, with 126 when it could not be executed, and with 2 on usage errors.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thediveo/execvp"
	"golang.org/x/sys/unix"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// Exit codes, as used by shells for commands failing to execute.
const (
	exitUsage         = 2
	exitCannotExecute = 126
	exitNotFound      = 127
)

var (
	argv0   string
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "execvp [flags] PROGRAM [ARG...]",
	Short:         "Replace this process with PROGRAM",
	Version:       version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
	},
	RunE: runExecvp,
}

func init() {
	// Everything following PROGRAM belongs to PROGRAM, not to us.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVar(&argv0, "argv0", "", "argv[0] to pass instead of PROGRAM")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runExecvp(cmd *cobra.Command, args []string) error {
	program := args[0]
	argv := newArgv(program, args[1:], argv0)
	logger.Debug("replacing process", slog.String("program", program),
		slog.Any("argv", argv), slog.Int("pid", unix.Getpid()))
	return execvp.Execvp(program, argv)
}

// newArgv returns the argument vector for program: args, preceded by either
// program itself or the explicitly given name.
func newArgv(program string, args []string, name string) []string {
	if name == "" {
		name = program
	}
	return append([]string{name}, args...)
}

// exitCode maps an error to the exit code to terminate with.
func exitCode(err error) int {
	var execerr *execvp.ExecError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &execerr):
		if execerr.Errno == unix.ENOENT {
			return exitNotFound
		}
		return exitCannotExecute
	}
	return exitUsage
}

// execute runs the root command with the given CLI arguments, reporting any
// error to stderr, and returns the exit code.
func execute(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "execvp: %s\n", err)
	}
	return exitCode(err)
}

func main() {
	os.Exit(execute(os.Args[1:]))
}
