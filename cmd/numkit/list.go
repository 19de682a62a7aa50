package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/storage"
	"github.com/san-kum/numkit/internal/viz"
)

func listFunctions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, e := range funcs.List() {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tGUESS\tITER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", name, p.Function, p.Guess, p.Iterations, p.Description)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCTION\tTIME\tGUESS\tITER\tPREC\tSTEP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Function,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Guess,
			run.Iterations,
			run.Precision,
			run.Step,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	iterates, err := st.LoadIterates(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("function: %s\n", meta.Function)
	fmt.Printf("guess: %s\n", meta.Guess)
	fmt.Printf("root: %s\n", meta.Root)
	fmt.Printf("iterations: %d\n\n", meta.Iterations)

	if len(iterates) < 2 {
		return nil
	}

	residuals := viz.Residuals(iterates, meta.Precision)

	graph := asciigraph.Plot(residuals,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 |f(x)| per iteration"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	if err := st.ExportJSON(args[0], outPath); err != nil {
		return err
	}
	if outPath != "-" {
		fmt.Printf("exported to %s\n", outPath)
	}
	return nil
}
