package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		verbose   bool
		expectLog bool
	}{
		{name: "logs when LEARNGIT_DEBUG is set", envValue: "1", expectLog: true},
		{name: "logs when verbose is on", verbose: true, expectLog: true},
		{name: "silent by default", expectLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.envValue)
			SetVerbose(tt.verbose)
			defer SetVerbose(false)

			l := NewEnvLogger("[test]")
			l.Debug("step %d", 2)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] step 2")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)
	l := NewEnvLogger("[lesson]")

	l.Info("started %s", "intro")
	l.Warn("slow")
	l.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "[lesson] started intro")
	assert.Contains(t, out, "[lesson] WARN: slow")
	assert.Contains(t, out, "[lesson] ERROR: failed")
}

func TestNoop(t *testing.T) {
	buf := captureLog(t)
	l := Noop()
	l.Info("ignored")
	l.Error("ignored")
	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Debug("d %d", 1)
	l.Warn("w")

	require.Len(t, l.Messages, 2)
	assert.Equal(t, "d 1", l.Messages[0].Message)
	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefault(t *testing.T) {
	buf := captureLog(t)

	Default().Info("hello")

	assert.Contains(t, buf.String(), "[learngit] hello")
}
