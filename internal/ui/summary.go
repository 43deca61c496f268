package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// LessonSummary holds what is shown after a lesson ends.
type LessonSummary struct {
	Title     string
	Outcome   string // "completed", "exited" or "aborted"
	StepsDone int
	Steps     int
	Commands  int
	Duration  time.Duration
}

// SummaryRenderer formats lesson summaries for terminal display.
type SummaryRenderer struct {
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	labelStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewSummaryRenderer creates a new summary renderer with default styles.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		successStyle: lipgloss.NewStyle().Foreground(ColorSuccess),
		warnStyle:    lipgloss.NewStyle().Foreground(ColorWarning),
		labelStyle:   lipgloss.NewStyle().Foreground(ColorSecondary),
		mutedStyle:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderLessonSummary renders s with the default styles.
func RenderLessonSummary(s LessonSummary) string {
	return NewSummaryRenderer().Render(s)
}

// Render generates the formatted summary string:
//
//	✓ First commit completed
//	  steps     2/2
//	  commands  5
//	  time      1m12s
func (r *SummaryRenderer) Render(s LessonSummary) string {
	var sb strings.Builder

	headline := fmt.Sprintf("%s %s", s.Title, s.Outcome)
	if s.Outcome == "completed" {
		sb.WriteString(r.successStyle.Render(SymbolSuccess + " " + headline))
	} else {
		sb.WriteString(r.warnStyle.Render(SymbolSkipped + " " + headline))
	}
	sb.WriteString("\n")

	r.row(&sb, "steps", fmt.Sprintf("%d/%d", s.StepsDone, s.Steps))
	r.row(&sb, "commands", fmt.Sprintf("%d", s.Commands))
	r.row(&sb, "time", formatDuration(s.Duration.Seconds()))

	return sb.String()
}

func (r *SummaryRenderer) row(sb *strings.Builder, label, value string) {
	sb.WriteString("  ")
	sb.WriteString(padRight(r.labelStyle.Render(label), 10))
	sb.WriteString(r.mutedStyle.Render(value))
	sb.WriteString("\n")
}

// padRight pads s with spaces to width. Longer strings are returned as-is.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
