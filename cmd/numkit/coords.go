package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/coords"
)

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func runToCartesian(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	p, err := coords.ToCartesian(vals[0], vals[1:])
	if err != nil {
		return err
	}
	fmt.Println(formatFloats(p))
	return nil
}

func runToSpherical(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	s, err := coords.ToSpherical(vals)
	var degenerate *coords.DegenerateInputError
	if errors.As(err, &degenerate) {
		slog.Warn("undefined angle set to 0", "index", degenerate.Index)
	} else if err != nil {
		return err
	}

	fmt.Printf("r: %s\n", strconv.FormatFloat(s.R, 'g', -1, 64))
	fmt.Printf("angles: %s\n", formatFloats(s.Angles))
	return nil
}
