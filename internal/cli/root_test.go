package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lgerrors "github.com/rileyhilliard/learngit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs rootCmd with fresh flag values and returns its output.
func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	globalFlags = GlobalFlags{}
	versionShort = false
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".availablelessons")
	require.NoError(t, os.WriteFile(path, []byte(`[
	{"title": "First commit", "difficulty": "Easy", "url": "https://example.com/first.git", "to": "first", "setup_commands": [], "cleanup_commands": []},
	{"title": "Branching", "difficulty": "Medium", "url": "https://example.com/branching.git", "to": "branching", "setup_commands": [], "cleanup_commands": []}
]`), 0644))
	return path
}

func TestRoot_QuitFromMenu(t *testing.T) {
	catalog := writeCatalog(t)

	out, err := executeRoot(t, "abc\nq\n", "--catalog", catalog, "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "1. First commit - Easy")
	assert.Contains(t, out, "2. Branching - Medium")
	assert.Contains(t, out, "Please enter the activity number.")
	assert.Contains(t, out, "Quitting")
}

func TestRoot_EOFQuits(t *testing.T) {
	catalog := writeCatalog(t)

	out, err := executeRoot(t, "", "--catalog", catalog)

	require.NoError(t, err)
	assert.Contains(t, out, "Quitting")
}

func TestRoot_MissingCatalog(t *testing.T) {
	_, err := executeRoot(t, "q\n", "--catalog", filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.True(t, lgerrors.IsCode(err, lgerrors.ErrConfig))
	assert.Contains(t, err.Error(), "Lesson catalog not found")
}

func TestRoot_CatalogFromSettingsFile(t *testing.T) {
	catalog := writeCatalog(t)
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("catalog: "+catalog+"\n"), 0644))

	out, err := executeRoot(t, "q\n", "--config", settings)

	require.NoError(t, err)
	assert.Contains(t, out, "First commit")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "", "extra")

	assert.Error(t, err)
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "learngit"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "unknown shorthand",
			err:  errors.New(`unknown shorthand flag: 'x' in -x`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("catalog not found"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "learngit"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "first-commit" for "learngit"`),
			want: "first-commit",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestInterruptContext_CancelledByFirstSignal(t *testing.T) {
	ctx, stop := interruptContext(context.Background())
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by SIGINT")
	}
}

func TestInterruptContext_FollowsParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := interruptContext(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled with its parent")
	}
}
