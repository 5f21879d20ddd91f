package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sociogram/internal/analysis"
	"sociogram/internal/codec"
	"sociogram/internal/domain"
	"sociogram/internal/render"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		format    string
		colorMode string
		minClique int
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Compute metrics, statuses and cliques for a nomination file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, nil)
			if err != nil {
				return err
			}
			result, err := a.analyzeFile(s, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format != "table" {
				exporter, err := exporterFor(format)
				if err != nil {
					return err
				}
				report := codec.NewReport(result, nil)
				report.SessionID = s.ID()
				return exporter.Export(report, out)
			}

			if !cmd.Flags().Changed("min-clique-size") {
				minClique = a.cfg.Analysis.MinCliqueSize
			}
			printAnalysis(out, result, s.Cliques(minClique), minClique)

			if colorMode != "" {
				mode, err := render.ParseColorMode(colorMode)
				if err != nil {
					return err
				}
				return printColors(out, result, mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().StringVar(&colorMode, "color-mode", "", "Also print node colors: status, preferencesReceived, nonPreferencesReceived, degree, betweenness or default")
	cmd.Flags().IntVar(&minClique, "min-clique-size", 2, "Smallest clique to list")
	return cmd
}

func printAnalysis(w io.Writer, result *analysis.Result, cliques []domain.Clique, minClique int) {
	nodes := result.Nodes()
	fmt.Fprintln(w, render.MetricsTable(nodes))
	fmt.Fprintln(w, render.StatusSummary(nodes))
	fmt.Fprintln(w)
	fmt.Fprint(w, render.CliqueList(cliques, result.Graph, minClique, nil))
}

func printColors(w io.Writer, result *analysis.Result, mode render.ColorMode) error {
	nodes := result.Nodes()
	cache := render.NewScaleCache()

	fmt.Fprintln(w)
	fmt.Fprint(w, render.Legend(mode))
	for _, n := range nodes {
		color, err := cache.NodeColor(n, mode, nodes)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-8s %s\n", n.ID, color)
	}
	return nil
}
