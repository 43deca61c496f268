package lesson

import (
	"fmt"
	"regexp"

	"github.com/rileyhilliard/learngit/internal/config"
	"github.com/rileyhilliard/learngit/internal/errors"
)

// NoHint is shown for !hint when a step has none.
const NoHint = "No hint available for this step."

// Step is a plan step with its patterns compiled.
type Step struct {
	config.Step
	patterns []*regexp.Regexp
}

// CompileStep compiles the expected command and every equivalent.
// Patterns are anchored at both ends so "git add" never matches "git add -A".
func CompileStep(s config.Step) (Step, error) {
	sources := make([]string, 0, 1+len(s.AllowEquivalents))
	sources = append(sources, s.ExpectedCommand)
	sources = append(sources, s.AllowEquivalents...)

	compiled := Step{Step: s, patterns: make([]*regexp.Regexp, 0, len(sources))}
	for _, src := range sources {
		re, err := regexp.Compile(`^(?:` + src + `)$`)
		if err != nil {
			return Step{}, errors.WrapWithCode(err, errors.ErrLesson,
				fmt.Sprintf("Invalid command pattern %q", src),
				"Patterns use RE2 syntax; escape literal characters such as . and *")
		}
		compiled.patterns = append(compiled.patterns, re)
	}
	return compiled, nil
}

// CompileSteps compiles a whole plan, reporting the first bad step.
func CompileSteps(plan []config.Step) ([]Step, error) {
	steps := make([]Step, 0, len(plan))
	for i, s := range plan {
		cs, err := CompileStep(s)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrLesson,
				fmt.Sprintf("Step %d of the lesson plan can't be loaded", i+1),
				"Fix the pattern in the lesson plan")
		}
		steps = append(steps, cs)
	}
	return steps, nil
}

// Matches reports whether input is the expected command or an allowed
// equivalent. Matching is case-sensitive and covers the whole input.
func (s Step) Matches(input string) bool {
	for _, re := range s.patterns {
		if re.MatchString(input) {
			return true
		}
	}
	return false
}

// HintText returns the hint, or NoHint when the step has none.
func (s Step) HintText() string {
	if s.Hint == "" {
		return NoHint
	}
	return s.Hint
}
