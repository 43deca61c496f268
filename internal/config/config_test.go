package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, ".availablelessons", s.Catalog)
	assert.Equal(t, ".lessonplan", s.PlanFile)
	assert.Equal(t, "!", s.Sentinel)
	assert.Equal(t, []string{"ls", "cat", "git status", "git log"}, s.NeutralPrefixes)
	assert.Equal(t, FetcherGoGit, s.Fetcher)
	assert.False(t, s.Transcripts.Enabled)
	assert.Equal(t, 20, s.Transcripts.Keep)

	// Defaults must not alias the package-level slice.
	s.NeutralPrefixes[0] = "rm"
	assert.Equal(t, "ls", DefaultNeutralPrefixes[0])
}

func TestLoadCatalog_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".availablelessons", `[
	{
		"title": "First commit",
		"difficulty": "Easy",
		"url": "https://github.com/example/first-commit.git",
		"to": "first-commit",
		"setup_commands": ["echo setup"],
		"cleanup_commands": []
	},
	{
		"title": "Branching",
		"difficulty": "Medium",
		"url": "https://github.com/example/branching.git",
		"to": "branching",
		"setup_commands": [],
		"cleanup_commands": ["echo bye"]
	}
]`)

	lessons, err := LoadCatalog(path)

	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "First commit", lessons[0].Title)
	assert.Equal(t, "Easy", lessons[0].Difficulty)
	assert.Equal(t, "first-commit", lessons[0].To)
	assert.Equal(t, []string{"echo setup"}, lessons[0].SetupCommands)
	assert.Equal(t, []string{"echo bye"}, lessons[1].CleanupCommands)
}

func TestLoadCatalog_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lessons.yaml", `
- title: First commit
  difficulty: Easy
  url: https://github.com/example/first-commit.git
  to: first-commit
`)

	lessons, err := LoadCatalog(path)

	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Empty(t, lessons[0].SetupCommands)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty list", content: `[]`, want: "empty"},
		{name: "not a list", content: `{"title": "x"}`, want: "not a valid list"},
		{name: "missing url", content: `[{"title": "x", "to": "x"}]`, want: "missing url"},
		{name: "missing title and to", content: `[{"url": "u"}]`, want: "missing title, to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), ".availablelessons", tt.content)

			_, err := LoadCatalog(path)

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCatalog_NotFound(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--catalog")
}

func TestLoadPlan(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".lessonplan", `[
  {"explanation": "Create a repository", "expected_command": "git init", "allow_equivalents": ["git init\\s*"], "hint": "init"},
  {"explanation": "Stage everything", "expected_command": "git add \\.", "end": true}
]`)

	steps, err := LoadPlan(path)

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "git init", steps[0].ExpectedCommand)
	assert.Equal(t, []string{`git init\s*`}, steps[0].AllowEquivalents)
	assert.Equal(t, "init", steps[0].Hint)
	assert.False(t, steps[0].End)
	assert.Empty(t, steps[1].Hint)
	assert.Nil(t, steps[1].AllowEquivalents)
	assert.True(t, steps[1].End)
}

func TestLoadPlan_Errors(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), ".lessonplan"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLesson))

	path := writeFile(t, t.TempDir(), ".lessonplan", `[{"explanation": "nothing to type"}]`)
	_, err = LoadPlan(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Step 1 has no expected_command")

	path = writeFile(t, t.TempDir(), ".lessonplan", `[]`)
	_, err = LoadPlan(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no steps")
}

func TestLoadSettings_DefaultsWithoutFile(t *testing.T) {
	s, err := LoadSettings("")

	require.NoError(t, err)
	assert.Equal(t, ".availablelessons", s.Catalog)
	assert.Equal(t, DefaultNeutralPrefixes, s.NeutralPrefixes)
	assert.NotContains(t, s.Transcripts.Dir, "~")
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), SettingsFileName, `
catalog: lessons.json
sentinel: ":"
neutral_prefixes: [ls, git diff]
fetcher: git-cli
transcripts:
  enabled: true
  dir: /tmp/learngit-transcripts
  keep: 3
`)
	t.Setenv("LEARNGIT_PLAN_FILE", "plan.yaml")

	s, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "lessons.json", s.Catalog)
	assert.Equal(t, ":", s.Sentinel)
	assert.Equal(t, []string{"ls", "git diff"}, s.NeutralPrefixes)
	assert.Equal(t, FetcherGitCLI, s.Fetcher)
	assert.Equal(t, "plan.yaml", s.PlanFile)
	assert.True(t, s.Transcripts.Enabled)
	assert.Equal(t, "/tmp/learngit-transcripts", s.Transcripts.Dir)
	assert.Equal(t, 3, s.Transcripts.Keep)
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   string
	}{
		{name: "empty sentinel", modify: func(s *Settings) { s.Sentinel = " " }, want: "sentinel"},
		{name: "unknown fetcher", modify: func(s *Settings) { s.Fetcher = "svn" }, want: "Unknown fetcher 'svn'"},
		{name: "empty prefix", modify: func(s *Settings) { s.NeutralPrefixes = []string{"ls", ""} }, want: "neutral_prefixes[1]"},
		{name: "empty plan file", modify: func(s *Settings) { s.PlanFile = "" }, want: "plan_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)

			err := ValidateSettings(s)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, ValidateSettings(DefaultSettings()))
}

func TestFindSettings_Explicit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "catalog: x\n")

	found, err := FindSettings(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = FindSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/base/lesson", ResolvePath("/base", "lesson"))
	assert.Equal(t, "/abs/lesson", ResolvePath("/base", "/abs/lesson"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x"), ResolvePath("/base", "~/x"))
}

func TestExpand(t *testing.T) {
	t.Setenv("USER", "learner")
	home, _ := os.UserHomeDir()

	assert.Equal(t, home+"/t", Expand("${HOME}/t"))
	assert.Equal(t, "/tmp/learner", Expand("/tmp/${USER}"))
	assert.Equal(t, "", Expand(""))
}
