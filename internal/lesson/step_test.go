package lesson

import (
	"testing"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStep(t *testing.T, s config.Step) Step {
	t.Helper()
	cs, err := CompileStep(s)
	require.NoError(t, err)
	return cs
}

func TestStepMatches(t *testing.T) {
	step := mustStep(t, config.Step{
		ExpectedCommand:  "git init",
		AllowEquivalents: []string{`git init\s*`},
	})

	tests := []struct {
		input string
		want  bool
	}{
		{"git init", true},
		{"git init ", true},
		{"git init   ", true},
		{"GIT INIT", false},
		{"git init --bare", false},
		{" git init", false},
		{"please git init", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, step.Matches(tt.input))
		})
	}
}

func TestStepMatches_AnchorsAlternation(t *testing.T) {
	// Without grouping, ^a|b$ would match "axxx" and "xxxb".
	step := mustStep(t, config.Step{ExpectedCommand: "git add \\.|git add -A"})

	assert.True(t, step.Matches("git add ."))
	assert.True(t, step.Matches("git add -A"))
	assert.False(t, step.Matches("git add . && rm -rf x"))
	assert.False(t, step.Matches("echo git add -A"))
}

func TestStepMatches_EquivalentOnly(t *testing.T) {
	step := mustStep(t, config.Step{
		ExpectedCommand:  `git commit -m "first"`,
		AllowEquivalents: []string{`git commit -m '.+'`, `git commit --message[= ]".+"`},
	})

	assert.True(t, step.Matches(`git commit -m "first"`))
	assert.True(t, step.Matches(`git commit -m 'anything'`))
	assert.True(t, step.Matches(`git commit --message="x"`))
	assert.False(t, step.Matches(`git commit -m ''`))
}

func TestCompileStep_InvalidPattern(t *testing.T) {
	_, err := CompileStep(config.Step{ExpectedCommand: "git add ("})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLesson))
	assert.Contains(t, err.Error(), "git add (")
}

func TestCompileSteps_ReportsStepNumber(t *testing.T) {
	_, err := CompileSteps([]config.Step{
		{ExpectedCommand: "git init"},
		{ExpectedCommand: "ok", AllowEquivalents: []string{"[unclosed"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Step 2")
}

func TestHintText(t *testing.T) {
	assert.Equal(t, NoHint, mustStep(t, config.Step{ExpectedCommand: "ls"}).HintText())
	assert.Equal(t, "try init", mustStep(t, config.Step{ExpectedCommand: "ls", Hint: "try init"}).HintText())
}
