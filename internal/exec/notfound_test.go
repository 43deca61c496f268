package exec

import (
	"testing"

	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		exitCode int
		wantName string
		wantOK   bool
	}{
		{name: "bash", output: "bash: gti: command not found\n", exitCode: 127, wantName: "gti", wantOK: true},
		{name: "bash -c line", output: "bash: line 1: gti: command not found\n", exitCode: 127, wantName: "gti", wantOK: true},
		{name: "zsh", output: "zsh: command not found: gti\n", exitCode: 127, wantName: "gti", wantOK: true},
		{name: "dash", output: "/bin/sh: 1: gti: not found\n", exitCode: 127, wantName: "gti", wantOK: true},
		{name: "127 without message", output: "", exitCode: 127, wantOK: true},
		{name: "other exit code", output: "bash: gti: command not found\n", exitCode: 1},
		{name: "success", output: "", exitCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := IsCommandNotFound(tt.output, tt.exitCode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestCommandError_NotFound(t *testing.T) {
	e := &CommandError{Command: "gti status", Output: "", ExitCode: 127}
	name, ok := e.NotFound()
	assert.True(t, ok)
	assert.Equal(t, "gti", name)

	e = &CommandError{Command: "git push", Output: "fatal: no remote\n", ExitCode: 128}
	_, ok = e.NotFound()
	assert.False(t, ok)
}

func TestCommandError_NotFoundFromShell(t *testing.T) {
	_, err := Execute("learngit-no-such-command-xyz", "")

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	name, ok := cmdErr.NotFound()
	assert.True(t, ok)
	assert.Equal(t, "learngit-no-such-command-xyz", name)
}

func TestHandleHookError(t *testing.T) {
	assert.NoError(t, HandleHookError("true", 0))

	err := HandleHookError("npm install", 127)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.Contains(t, err.Error(), "'npm' wasn't found")

	err = HandleHookError("false", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"false" exited with status 1`)
}
