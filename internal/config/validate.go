package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/learngit/internal/errors"
)

// ValidateSettings checks the settings for values learngit can't work with.
func ValidateSettings(s *Settings) error {
	if strings.TrimSpace(s.Sentinel) == "" {
		return errors.New(errors.ErrConfig,
			"The in-app command sentinel can't be empty",
			"Set 'sentinel' to a single character such as '!'")
	}

	switch s.Fetcher {
	case FetcherGoGit, FetcherGitCLI:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown fetcher '%s'", s.Fetcher),
			fmt.Sprintf("Use '%s' or '%s'", FetcherGoGit, FetcherGitCLI))
	}

	for i, p := range s.NeutralPrefixes {
		if strings.TrimSpace(p) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("neutral_prefixes[%d] is empty", i),
				"An empty prefix would allow every command; remove it")
		}
	}

	if s.PlanFile == "" {
		return errors.New(errors.ErrConfig,
			"plan_file can't be empty",
			"Leave it unset to use .lessonplan")
	}

	return nil
}

// ValidateCatalog checks that every lesson has the fields needed to run it.
func ValidateCatalog(lessons []Lesson) error {
	if len(lessons) == 0 {
		return errors.New(errors.ErrConfig,
			"Lesson catalog is empty",
			"Add at least one lesson to the catalog")
	}

	for i, l := range lessons {
		var missing []string
		if l.Title == "" {
			missing = append(missing, "title")
		}
		if l.URL == "" {
			missing = append(missing, "url")
		}
		if l.To == "" {
			missing = append(missing, "to")
		}
		if len(missing) > 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Lesson %d is missing %s", i+1, strings.Join(missing, ", ")),
				"Every catalog entry needs title, url and to")
		}
	}
	return nil
}

// ValidatePlan checks that a lesson plan has steps and every step has a pattern.
func ValidatePlan(steps []Step) error {
	if len(steps) == 0 {
		return errors.New(errors.ErrLesson,
			"Lesson plan has no steps",
			"Add at least one step to the lesson plan")
	}
	for i, s := range steps {
		if s.ExpectedCommand == "" {
			return errors.New(errors.ErrLesson,
				fmt.Sprintf("Step %d has no expected_command", i+1),
				"Every step needs the command the learner should type")
		}
	}
	return nil
}
