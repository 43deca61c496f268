package exec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rileyhilliard/learngit/internal/errors"
)

// Result is the captured outcome of a command that ran to completion.
type Result struct {
	Output   string // Combined stdout and stderr, in the order written
	ExitCode int
}

// CommandError is returned when a command ran but exited non-zero.
// Output holds everything the command printed before it failed.
type CommandError struct {
	Command  string
	Output   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// Shell returns the interpreter used for commands: $SHELL, or /bin/sh.
func Shell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

func shellCommand(cmd, workDir string) *exec.Cmd {
	command := exec.Command(Shell(), "-c", cmd)
	if workDir != "" {
		command.Dir = workDir
	}
	return command
}

// Execute runs cmd through the shell in workDir and captures combined output.
// A non-zero exit yields a *CommandError carrying the captured output.
// There is no timeout: a command that never exits blocks the caller.
func Execute(cmd string, workDir string) (Result, error) {
	var buf bytes.Buffer
	command := shellCommand(cmd, workDir)
	command.Stdout = &buf
	command.Stderr = &buf

	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return Result{Output: buf.String(), ExitCode: exitErr.ExitCode()}, &CommandError{
				Command:  cmd,
				Output:   buf.String(),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return Result{Output: buf.String(), ExitCode: -1}, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command",
			"Make sure the shell "+Shell()+" exists and the lesson directory is still there.")
	}

	return Result{Output: buf.String(), ExitCode: 0}, nil
}

// ExecuteLocal runs a command, streaming output to the provided writers.
// Returns the exit code and any execution error; a non-zero exit is not an error.
func ExecuteLocal(cmd string, workDir string, stdout, stderr io.Writer) (exitCode int, err error) {
	command := shellCommand(cmd, workDir)
	command.Stdout = stdout
	command.Stderr = stderr

	runErr := command.Run()
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure the command exists and is executable.")
	}

	return 0, nil
}

// LocalShell adapts Execute to the interface the lesson runner consumes.
type LocalShell struct{}

// Run executes cmd in workDir and returns its combined output.
func (LocalShell) Run(cmd, workDir string) (string, error) {
	res, err := Execute(cmd, workDir)
	return res.Output, err
}
