package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "step", Pluralize(1, "step", "steps"))
	assert.Equal(t, "steps", Pluralize(0, "step", "steps"))
	assert.Equal(t, "steps", Pluralize(3, "step", "steps"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"First commit", "first-commit"},
		{"  Branching & Merging!! ", "branching-merging"},
		{"git-101", "git-101"},
		{"***", "lesson"},
		{"", "lesson"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
