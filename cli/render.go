package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder = lipgloss.Color("#2E6DA4")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorGreen  = lipgloss.Color("#28A745")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	replyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorGreen).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// Row is one label/value line of a result block.
type Row struct {
	Label string
	Value string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(50).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderResult renders a titled block of aligned label/value rows.
func RenderResult(title string, rows []Row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	for _, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Label))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(r.Label + pad))
		b.WriteString("   ")
		b.WriteString(valueStyle.Render(r.Value))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReply renders an assistant reply with a left rule.
func RenderReply(text string) string {
	return replyStyle.Render(text)
}

// RenderError renders an error line.
func RenderError(msg string) string {
	return errorStyle.Render("  " + msg)
}
