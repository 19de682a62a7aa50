package viz

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

	Improving = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	Stalled   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	Worsening = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

var levels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Accuracy is the share of decades the residual has dropped from the first
// iterate toward 10^-precision, clamped to [0, 1].
func Accuracy(residuals []float64, precision int) float64 {
	if len(residuals) == 0 {
		return 0
	}
	first, last := residuals[0], residuals[len(residuals)-1]
	floor := -float64(precision)
	if first <= floor {
		return 1
	}
	return math.Max(0, math.Min(1, (first-last)/(first-floor)))
}

// AccuracyBar renders Accuracy over width cells, coloured by the last step.
func AccuracyBar(residuals []float64, precision, width int) string {
	frac := Accuracy(residuals, precision)
	filled := int(math.Round(frac * float64(width)))
	bar := strings.Repeat("━", filled) + strings.Repeat("╌", width-filled)
	return trend(residuals).Render(bar) + Subtle.Render(fmt.Sprintf(" %3.0f%%", frac*100))
}

// trend styles the final step of residuals.
func trend(residuals []float64) lipgloss.Style {
	n := len(residuals)
	switch {
	case n < 2:
		return Subtle
	case residuals[n-1] < residuals[n-2]:
		return Improving
	case residuals[n-1] == residuals[n-2]:
		return Stalled
	}
	return Worsening
}

// ResidualStrip draws the last width residuals as one block each, scaled
// from the largest residual down to 10^-precision.
func ResidualStrip(residuals []float64, precision, width int) string {
	if len(residuals) == 0 {
		return Subtle.Render(strings.Repeat("·", width))
	}

	floor := -float64(precision)
	span := max(slices.Max(residuals)-floor, 1)

	var b strings.Builder
	for i := max(0, len(residuals)-width); i < len(residuals); i++ {
		idx := int(math.Round((residuals[i] - floor) / span * float64(len(levels)-1)))
		idx = max(0, min(idx, len(levels)-1))
		b.WriteString(trend(residuals[max(0, i-1) : i+1]).Render(string(levels[idx])))
	}
	return b.String()
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return Subtle.Render(left + " ◆ " + right)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "…"
}
