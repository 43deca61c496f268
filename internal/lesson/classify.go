package lesson

import (
	"strings"
)

// Kind is how the runner treats one line of learner input.
type Kind int

const (
	// KindInApp is a tutor command such as !hint. Never touches the shell.
	KindInApp Kind = iota
	// KindExpected is the command the current step teaches.
	KindExpected
	// KindNeutral is a read-only inspection command, run without affecting progress.
	KindNeutral
	// KindRejected is anything else.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindInApp:
		return "in-app"
	case KindExpected:
		return "expected"
	case KindNeutral:
		return "neutral"
	default:
		return "rejected"
	}
}

// Classifier decides the Kind of an input line for a given step.
type Classifier struct {
	Sentinel        string
	NeutralPrefixes []string
}

// Classify applies the tiers in priority order: in-app, expected, neutral, rejected.
func (c Classifier) Classify(input string, step Step) Kind {
	if c.Sentinel != "" && strings.HasPrefix(input, c.Sentinel) {
		return KindInApp
	}
	if step.Matches(input) {
		return KindExpected
	}
	if c.IsNeutral(input) {
		return KindNeutral
	}
	return KindRejected
}

// IsNeutral reports whether input starts with one of the neutral prefixes,
// compared word by word: "ls -la" and "git log --oneline" qualify, "lsof"
// and "git logout" don't.
func (c Classifier) IsNeutral(input string) bool {
	fields := strings.Fields(input)
	for _, prefix := range c.NeutralPrefixes {
		pf := strings.Fields(prefix)
		if len(pf) == 0 || len(pf) > len(fields) {
			continue
		}
		match := true
		for i := range pf {
			if fields[i] != pf[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
