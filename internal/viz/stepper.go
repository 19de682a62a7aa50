package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/numkit/internal/calculus"
	"github.com/san-kum/numkit/internal/numeric"
)

const (
	visibleRows = 8
	digitWidth  = 28
	graphWidth  = 40
)

// Stepper is an interactive Newton root search.
type Stepper struct {
	name     string
	f        numeric.Func
	opts     calculus.Options
	guess    numeric.Scalar
	limit    int
	x        numeric.Scalar
	iterates []calculus.Iterate
	err      error
}

// NewStepper prepares a search from guess that stops after limit steps.
func NewStepper(name string, f numeric.Func, guess numeric.Scalar, limit int, opts calculus.Options) Stepper {
	return Stepper{
		name:  name,
		f:     f,
		opts:  opts,
		guess: guess,
		limit: limit,
		x:     guess,
	}
}

func (m Stepper) Init() tea.Cmd {
	return nil
}

func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ":
			m.step()
		case "a":
			for m.canStep() {
				m.step()
			}
		case "r":
			m.reset()
		}
	}
	return m, nil
}

func (m Stepper) canStep() bool {
	return m.err == nil && len(m.iterates) < m.limit
}

func (m *Stepper) step() {
	if !m.canStep() {
		return
	}
	it, err := calculus.NewtonStep(m.f, m.x, len(m.iterates)+1, m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.iterates = append(m.iterates, it)
	m.x = it.Next
}

func (m *Stepper) reset() {
	m.x = m.guess
	m.iterates = nil
	m.err = nil
}

// Iterates returns the steps taken so far.
func (m Stepper) Iterates() []calculus.Iterate {
	return m.iterates
}

// Current returns the latest estimate.
func (m Stepper) Current() numeric.Scalar {
	return m.x
}

func (m Stepper) Err() error {
	return m.err
}

// Residuals returns log10|f(x)| per iterate.
func (m Stepper) Residuals() []float64 {
	return Residuals(m.iterates, m.opts.Precision)
}

// Residuals returns log10|f(x)| for each iterate. An exact zero is drawn one
// decade below precision.
func Residuals(iterates []calculus.Iterate, precision int) []float64 {
	out := make([]float64, len(iterates))
	for i, it := range iterates {
		v := math.Abs(it.FX.Float64())
		if v == 0 {
			out[i] = -float64(precision + 1)
			continue
		}
		out[i] = math.Log10(v)
	}
	return out
}

func (m Stepper) View() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("NEWTON  "+m.name) + "\n\n")
	s.WriteString(MetricLabel.Render("Guess") + MetricValue.Render(Truncate(m.guess.String(), digitWidth)) + "\n")
	s.WriteString(MetricLabel.Render("Current") + MetricValue.Render(Truncate(m.x.String(), digitWidth)) + "\n")
	s.WriteString(MetricLabel.Render("Step") + MetricValue.Render(fmt.Sprintf("%d / %d", len(m.iterates), m.limit)) + "\n")

	res := m.Residuals()
	s.WriteString(MetricLabel.Render("Accuracy") + AccuracyBar(res, m.opts.Precision, 20) + "\n\n")

	s.WriteString(m.table())

	if len(res) > 1 {
		chart := asciigraph.Plot(res, asciigraph.Height(6), asciigraph.Width(graphWidth), asciigraph.Caption("log10 |f(x)|"))
		s.WriteString(graphStyle.Render(chart) + "\n")
		s.WriteString(MetricLabel.Render("Residual") + ResidualStrip(res, m.opts.Precision, graphWidth) + "\n")
	}

	switch {
	case m.err != nil:
		s.WriteString("\n" + StatusError.Render("✗ "+m.err.Error()) + "\n")
	case len(m.iterates) >= m.limit:
		s.WriteString("\n" + StatusOK.Render("✓ iteration limit reached") + "\n")
	}

	s.WriteString("\n" + Separator(graphWidth) + "\n")
	s.WriteString(KeyHint.Render("n/SP:Step  A:All  R:Reset  Q:Quit"))

	return Panel.Render(s.String())
}

func (m Stepper) table() string {
	if len(m.iterates) == 0 {
		return Subtle.Render("no steps yet") + "\n"
	}

	start := max(0, len(m.iterates)-visibleRows)
	rows := make([]string, 0, visibleRows+1)
	rows = append(rows, Title.Render(fmt.Sprintf("%3s  %-*s  %s", "n", digitWidth, "x", "f(x)")))
	for _, it := range m.iterates[start:] {
		rows = append(rows, fmt.Sprintf("%3d  %-*s  %s",
			it.N, digitWidth, Truncate(it.X.String(), digitWidth), Truncate(it.FX.String(), 16)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
