package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/epicycle/internal/fourier"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	// StatusRunning and StatusPaused color the animation state line.
	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusRecord  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")).Blink(true)
)

// Legend lists partial curves with their palette colors.
func Legend(partials []fourier.PartialCurve, theme Theme) string {
	var b strings.Builder
	for i, pc := range partials {
		swatch := lipgloss.NewStyle().Foreground(theme.PartialColor(i)).Render("━━")
		b.WriteString(fmt.Sprintf("%s %s  %d pts\n", swatch, pc.Label(), len(pc.Points)))
	}
	return b.String()
}

// Field renders one "label value" row of the stats panel.
func Field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
