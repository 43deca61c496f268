package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the welcome banner.
type HeaderInfo struct {
	Version string // e.g. "v0.2.0"
	Tagline string // Optional
	WorkDir string // Optional directory lessons are fetched into
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the program banner.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(ColorNeonCyan)
	taglineStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	dividerStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	var output strings.Builder

	output.WriteString(titleStyle.Render("learngit"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	if info.WorkDir != "" {
		output.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render(info.WorkDir))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}

// RenderLessonTitle renders the underlined title shown when a lesson starts:
//
//	Starting Lesson "First commit"
//	------------------------------
func RenderLessonTitle(title string) string {
	line := `Starting Lesson "` + title + `"`
	style := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	return style.Render(line) + "\n" + strings.Repeat("-", len([]rune(line))) + "\n"
}
