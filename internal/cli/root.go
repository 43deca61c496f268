package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learngit",
	Short: "Practice git one command at a time",
	Long: `learngit walks you through short git exercises.

Pick an activity from the menu and learngit fetches its practice repository,
explains each step and checks the command you type. Commands run for real in
the lesson directory, which is removed again when the activity ends.

While a lesson is running:
  !hint      show a hint for the current step
  !history   list everything you've typed
  !exit      clean up and quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags(&globalFlags)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTutor(cmd, &globalFlags)
	},
}

func init() {
	addGlobalFlags(rootCmd, &globalFlags)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := interruptContext(context.Background())
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if isUnknownCommandError(err) {
			err = errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("learngit doesn't have a %q command", extractUnknownCommand(err)),
				"Run 'learngit --help' to see what's available.")
		}
		fmt.Fprint(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

// interruptContext is cancelled by the first SIGINT or SIGTERM. After that
// the default handlers are restored, so a second Ctrl-C kills the process.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}

// isUnknownCommandError reports whether cobra rejected the arguments or flags.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls foo out of `unknown command "foo" for "learngit"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
