package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sociogram/internal/codec"
	"sociogram/internal/render"
)

func newLayoutCmd(a *app) *cobra.Command {
	var (
		view   viewFlags
		format string
		ticks  int
		edges  bool
	)

	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Run the force layout over the filtered graph and print positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd, &view)
			if err != nil {
				return err
			}
			result, err := a.analyzeFile(s, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("ticks") {
				ticks = a.cfg.Run.MaxTicks
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			n, err := s.Run(ctx, ticks)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			sim := s.Simulation()
			a.logger.Debug("layout finished",
				zap.Int("ticks", n),
				zap.Float64("alpha", sim.Alpha()),
				zap.Stringer("state", sim.State()))

			out := cmd.OutOrStdout()
			if format != "table" {
				exporter, err := exporterFor(format)
				if err != nil {
					return err
				}
				report := codec.NewReport(result, s.Positions())
				report.SessionID = s.ID()
				return exporter.Export(report, out)
			}

			fmt.Fprintln(out, render.PositionsTable(s.Positions()))
			if edges {
				for _, e := range s.EdgePositions() {
					fmt.Fprintf(out, "%s %s (%.1f, %.1f) -> (%.1f, %.1f)\n", e.EdgeID, e.Type, e.X1, e.Y1, e.X2, e.Y2)
				}
			}
			fmt.Fprintf(out, "%d of %d people shown, %d nominations, %d ticks, layout %s\n",
				s.View().Len(), result.Graph.Len(), len(s.View().Edges), n, sim.State())
			return nil
		},
	}

	view.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or yaml")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Tick budget (0 runs until the layout settles)")
	cmd.Flags().BoolVar(&edges, "edges", false, "Also print nomination endpoints")
	return cmd
}
