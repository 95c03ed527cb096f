// Package tui renders validation results for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swissqr/qrbill/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	fieldStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 50))
)

// RenderValidationReport formats a validation result as a styled TUI
// string: a verdict header plus one line per violation, grouped by field.
func RenderValidationReport(source string, result domain.ValidationResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("qrbill") + "  " + dimStyle.Render(source) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if result.OK() {
		b.WriteString("  " + passStyle.Render("✓ Bill is valid.") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		failStyle.Render("✗"),
		titleStyle.Render(fmt.Sprintf("%d violation(s)", len(result.Violations))),
	))

	lastField := ""
	for _, v := range result.Violations {
		if v.Field != lastField {
			b.WriteString("  " + fieldStyle.Render(v.Field) + "\n")
			lastField = v.Field
		}
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			failStyle.Render("●"),
			v.Message,
			faintStyle.Render(string(v.Rule)),
		))
	}
	return b.String()
}

// RenderPayload frames an encoded payload with its line numbers so the
// positional grammar is visible at a glance.
func RenderPayload(payload string) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, line := range strings.Split(payload, "\r\n") {
		text := line
		if text == "" {
			text = faintStyle.Render("·")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render(fmt.Sprintf("%2d", i+1)), text))
	}
	return b.String()
}
