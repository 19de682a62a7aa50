package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/calculus"
	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/numeric"
	"github.com/san-kum/numkit/internal/storage"
	"github.com/san-kum/numkit/internal/viz"
)

func runDerivative(cmd *cobra.Command, args []string) error {
	f, err := funcs.Get(args[0])
	if err != nil {
		return err
	}
	x, err := numeric.Parse(args[1])
	if err != nil {
		return err
	}
	opts, err := cfg.DerivativeOptions()
	if err != nil {
		return err
	}

	d, err := calculus.Derivative(f, x, opts)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	name, guessText, n := "", "", cfg.Iterations

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		name, guessText = p.Function, p.Guess
		if !cmd.Flags().Changed("iterations") {
			n = p.Iterations
		}
	}
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		guessText = args[1]
	}
	if name == "" || guessText == "" {
		return fmt.Errorf("need a function and a guess, or --preset")
	}

	f, err := funcs.Get(name)
	if err != nil {
		return err
	}
	guess, err := numeric.Parse(guessText)
	if err != nil {
		return err
	}
	opts, err := cfg.DerivativeOptions()
	if err != nil {
		return err
	}

	res, err := calculus.Trace(f, guess, n, opts)
	if err != nil {
		return err
	}

	if showTrace {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "N\tX\tF(X)\tF'(X)")
		for _, it := range res.Iterates {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", it.N, it.X, it.FX, it.DFX)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Println(res.Root)

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, opts, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved: %s\n", runID)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	f, err := funcs.Get(args[0])
	if err != nil {
		return err
	}
	opts, err := cfg.DerivativeOptions()
	if err != nil {
		return err
	}

	samples, err := calculus.Sample(context.Background(), f, from, to, points, opts)
	if err != nil {
		return err
	}

	values := make([]float64, len(samples))
	slopes := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
		slopes[i] = s.Slope
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s on [%g, %g]", args[0], from, to)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(slopes,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("derivative"),
	))
	return nil
}

func runStepper(cmd *cobra.Command, args []string) error {
	f, err := funcs.Get(args[0])
	if err != nil {
		return err
	}
	guess, err := numeric.Parse(args[1])
	if err != nil {
		return err
	}
	opts, err := cfg.DerivativeOptions()
	if err != nil {
		return err
	}

	m := viz.NewStepper(args[0], f, guess, cfg.Iterations, opts)
	_, err = tea.NewProgram(m).Run()
	return err
}
