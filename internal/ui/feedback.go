package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 64

// Feedback writes the tutor's messages to the learner.
// Command output is always passed through verbatim; only the tutor's own
// lines are styled.
type Feedback struct {
	w io.Writer
}

// NewFeedback creates a feedback writer on w.
func NewFeedback(w io.Writer) *Feedback {
	return &Feedback{w: w}
}

// Writer returns the underlying writer, for output that must bypass styling.
func (f *Feedback) Writer() io.Writer {
	return f.w
}

// Println writes an unstyled line.
func (f *Feedback) Println(msg string) {
	fmt.Fprintln(f.w, msg)
}

// Success renders: ✓ Correct!
func (f *Feedback) Success(msg string) {
	f.symbolLine(SymbolSuccess, ColorSuccess, msg)
}

// Fail renders: ✗ msg
func (f *Feedback) Fail(msg string) {
	f.symbolLine(SymbolFail, ColorError, msg)
}

// Warn renders a yellow line without a symbol.
func (f *Feedback) Warn(msg string) {
	fmt.Fprintln(f.w, lipgloss.NewStyle().Foreground(ColorWarning).Render(msg))
}

// Hint renders: ? Hint: msg
func (f *Feedback) Hint(msg string) {
	f.symbolLine(SymbolHint, ColorInfo, "Hint: "+msg)
}

// Muted renders a gray line.
func (f *Feedback) Muted(msg string) {
	fmt.Fprintln(f.w, lipgloss.NewStyle().Foreground(ColorMuted).Render(msg))
}

// Output writes captured command output as-is, adding a final newline if missing.
func (f *Feedback) Output(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(f.w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(f.w)
	}
}

// CommandError renders a failed command and the output it produced.
//
//	[!!] Command error:
//	fatal: not a git repository
func (f *Feedback) CommandError(output string) {
	label := lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render("[!!] Command error:")
	fmt.Fprintln(f.w, label)
	f.Output(output)
}

// StepHeader renders the 1-based step number and its explanation.
func (f *Feedback) StepHeader(number int, explanation string) {
	style := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	fmt.Fprintf(f.w, "\n%s\n%s\n", style.Render(fmt.Sprintf("Step %d:", number)), explanation)
}

// Divider renders a horizontal rule.
func (f *Feedback) Divider() {
	style := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(f.w, "\n%s\n\n", style.Render(strings.Repeat("━", DividerWidth)))
}

func (f *Feedback) symbolLine(symbol string, color lipgloss.Color, msg string) {
	style := lipgloss.NewStyle().Foreground(color)
	fmt.Fprintf(f.w, "%s %s\n", style.Render(symbol), msg)
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s", "1m12s").
func formatDuration(secs float64) string {
	switch {
	case secs < 0.1:
		return fmt.Sprintf("%.2fs", secs)
	case secs < 60:
		return fmt.Sprintf("%.1fs", secs)
	default:
		return (time.Duration(secs * float64(time.Second))).Round(time.Second).String()
	}
}
