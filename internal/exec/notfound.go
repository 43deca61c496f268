package exec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/learngit/internal/errors"
)

// ExitCommandNotFound is the shell's exit status for an unknown command.
const ExitCommandNotFound = 127

// commandNotFoundPatterns match the "command not found" messages of common
// shells. Only consulted for exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (?:line \d+: )?(\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// IsCommandNotFound reports whether output and exitCode describe a missing
// command, and returns its name when the message names it.
func IsCommandNotFound(output string, exitCode int) (string, bool) {
	if exitCode != ExitCommandNotFound {
		return "", false
	}
	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(output); len(matches) > 1 {
			return matches[1], true
		}
	}
	return "", true
}

// NotFound returns the name of the missing command if e failed because the
// shell couldn't find it. Falls back to the first word of the command line.
func (e *CommandError) NotFound() (string, bool) {
	name, ok := IsCommandNotFound(e.Output, e.ExitCode)
	if !ok {
		return "", false
	}
	if name == "" {
		name = firstWord(e.Command)
	}
	return name, true
}

// HandleHookError turns a failed setup or cleanup command into a structured
// error, with install advice when the command itself was missing.
// Returns nil for exit code 0.
func HandleHookError(cmd string, exitCode int) error {
	if exitCode == 0 {
		return nil
	}
	if exitCode == ExitCommandNotFound {
		name := firstWord(cmd)
		return errors.New(errors.ErrExec,
			fmt.Sprintf("'%s' wasn't found in your PATH", name),
			fmt.Sprintf("This lesson needs '%s' installed. Install it, or check `which %s` in a new terminal.", name, name))
	}
	return errors.New(errors.ErrExec,
		fmt.Sprintf("Command %q exited with status %d", cmd, exitCode),
		"")
}

func firstWord(cmd string) string {
	if fields := strings.Fields(cmd); len(fields) > 0 {
		return fields[0]
	}
	return "command"
}
