// Package cli implements the learngit command-line interface.
//
// The root command runs the tutor itself; there is one subcommand:
//
//	learngit            - show the lesson menu and run lessons
//	learngit version    - print build information
//
// # Flag Handling
//
// Global flags (--config, --catalog, --no-color, --verbose, --pick) are
// persistent flags on the root command. They are applied in
// PersistentPreRun, before any command body runs.
//
// Settings are resolved in this order, later entries winning:
//
//  1. Built-in defaults
//  2. .learngit.yaml in the current directory, or
//     ~/.config/learngit/config.yaml (or the file named by --config)
//  3. LEARNGIT_* environment variables
//  4. --catalog
//
// Execute installs a signal handler so Ctrl-C cancels the command context;
// the tutor stops at its next prompt and cleans up the running lesson.
package cli
