package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numkit/internal/calculus"
	"github.com/san-kum/numkit/internal/numeric"
)

func squareMinus4(c *numeric.Context, x numeric.Scalar) (numeric.Scalar, error) {
	sq, err := c.Mul(x, x)
	if err != nil {
		return numeric.Scalar{}, err
	}
	return c.Sub(sq, numeric.FromInt(4))
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Stepper, keys ...string) Stepper {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Stepper)
	}
	return m
}

func TestStepperSteps(t *testing.T) {
	g := NewWithT(t)
	m := NewStepper("x^2-4", squareMinus4, numeric.FromInt(3), 10, calculus.DefaultOptions())

	m = press(m, "n", " ")
	g.Expect(m.Iterates()).To(HaveLen(2))
	g.Expect(m.Iterates()[0].N).To(Equal(1))
	g.Expect(m.Current().Cmp(m.Iterates()[1].Next)).To(Equal(0))

	want, err := calculus.FindRoot(squareMinus4, numeric.FromInt(3), 2, calculus.DefaultOptions())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(m.Current().Cmp(want)).To(Equal(0))
}

func TestStepperRunAllAndReset(t *testing.T) {
	g := NewWithT(t)
	m := NewStepper("x^2-4", squareMinus4, numeric.FromInt(3), 6, calculus.DefaultOptions())

	m = press(m, "a")
	g.Expect(m.Iterates()).To(HaveLen(6))
	g.Expect(m.Current().Float64()).To(BeNumerically("~", 2, 1e-12))

	// Stepping past the limit is a no-op.
	m = press(m, "n")
	g.Expect(m.Iterates()).To(HaveLen(6))
	g.Expect(m.View()).To(ContainSubstring("iteration limit reached"))

	m = press(m, "r")
	g.Expect(m.Iterates()).To(BeEmpty())
	g.Expect(m.Current().Cmp(numeric.FromInt(3))).To(Equal(0))
}

func TestStepperStationaryGuess(t *testing.T) {
	g := NewWithT(t)
	constant := func(*numeric.Context, numeric.Scalar) (numeric.Scalar, error) {
		return numeric.FromInt(1), nil
	}
	m := NewStepper("const", constant, numeric.FromInt(0), 5, calculus.DefaultOptions())

	m = press(m, "n")
	g.Expect(m.Err()).To(MatchError(numeric.ErrDivisionByZero))
	g.Expect(m.Iterates()).To(BeEmpty())
	g.Expect(m.View()).To(ContainSubstring("derivative vanished"))

	m = press(m, "r")
	g.Expect(m.Err()).NotTo(HaveOccurred())
}

func TestStepperQuit(t *testing.T) {
	m := NewStepper("x^2-4", squareMinus4, numeric.FromInt(3), 5, calculus.DefaultOptions())
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestResiduals(t *testing.T) {
	m := NewStepper("x^2-4", squareMinus4, numeric.FromInt(3), 8, calculus.DefaultOptions())
	m = press(m, "a")

	res := m.Residuals()
	if len(res) != 8 {
		t.Fatalf("expected 8 residuals, got %d", len(res))
	}
	// f(3) = 5
	if res[0] < 0.69 || res[0] > 0.7 {
		t.Errorf("expected log10(5) first, got %v", res[0])
	}
	if res[len(res)-1] > -20 {
		t.Errorf("expected residual to fall below 1e-20, got %v", res[len(res)-1])
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("1.41421356", 5); got != "1.41…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("2", 5); got != "2" {
		t.Errorf("Truncate = %q", got)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		residuals []float64
		want      float64
	}{
		{"no steps", nil, 0},
		{"one step", []float64{2}, 0},
		{"halfway", []float64{2, -4}, 0.5},
		{"exact zero", []float64{2, -11}, 1},
		{"diverging", []float64{2, 5}, 0},
		{"already below precision", []float64{-12}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.residuals, 10); got != tt.want {
				t.Errorf("Accuracy(%v) = %v, want %v", tt.residuals, got, tt.want)
			}
		})
	}
}

func TestAccuracyBarTracksResidual(t *testing.T) {
	g := NewWithT(t)

	g.Expect(AccuracyBar([]float64{2, -4}, 10, 10)).To(ContainSubstring("━━━━━╌╌╌╌╌"))
	g.Expect(AccuracyBar([]float64{2, -4}, 10, 10)).To(ContainSubstring("50%"))
	g.Expect(AccuracyBar(nil, 10, 4)).To(ContainSubstring("╌╌╌╌"))

	// Nothing gained before the first step.
	m := NewStepper("const", func(*numeric.Context, numeric.Scalar) (numeric.Scalar, error) {
		return numeric.FromInt(1), nil
	}, numeric.FromInt(0), 2, calculus.DefaultOptions())
	g.Expect(m.View()).To(ContainSubstring("  0%"))

	m = NewStepper("x^2-4", squareMinus4, numeric.FromInt(3), 8, calculus.DefaultOptions())
	m = press(m, "a")
	g.Expect(Accuracy(m.Residuals(), calculus.DefaultOptions().Precision)).To(BeNumerically(">", 0.3))
}

func TestResidualStrip(t *testing.T) {
	g := NewWithT(t)

	g.Expect(ResidualStrip(nil, 10, 4)).To(ContainSubstring("····"))
	g.Expect(stripPlain(ResidualStrip([]float64{2, -4, -11}, 10, 8))).To(Equal("█▅▁"))
	// Only the latest width residuals are drawn.
	g.Expect([]rune(stripPlain(ResidualStrip([]float64{2, 1, 0, -1, -2}, 10, 3)))).To(HaveLen(3))
}

func stripPlain(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune("▁▂▃▄▅▆▇█", r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
