package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rsahni/topiq/internal/ui/theme"
)

// ProgressBar visualizes a mastery value in [0,1] as a horizontal bar.
// The fill color tracks the value: red below 0.35, amber below 0.7,
// emerald above — the same bands the question generator uses for
// difficulty.
type ProgressBar struct {
	Label     string
	Value     float64
	ShowValue bool
	Width     int
}

// NewProgressBar creates a mastery bar. Width is the total rendered
// width including label and value readout.
func NewProgressBar(label string, value float64, showValue bool, width int) ProgressBar {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return ProgressBar{
		Label:     label,
		Value:     value,
		ShowValue: showValue,
		Width:     width,
	}
}

// fillColor maps the value onto the difficulty-band palette.
func (p ProgressBar) fillColor() color.Color {
	switch {
	case p.Value < 0.35:
		return theme.Error
	case p.Value < 0.7:
		return theme.Accent
	default:
		return theme.Secondary
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	readout := ""
	if p.ShowValue {
		readout = fmt.Sprintf("  %.2f", p.Value)
	}

	barWidth := p.Width - lipgloss.Width(b.String()) - len(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Value + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(p.fillColor()).
		Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", barWidth-filled)))

	if readout != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(readout))
	}

	return b.String()
}
