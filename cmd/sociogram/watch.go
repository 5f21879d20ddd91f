package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sociogram/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var view viewFlags

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run the analysis whenever the nomination file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, err := a.newSession(cmd, &view)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			minClique := a.cfg.Analysis.MinCliqueSize

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			refresh := func() {
				result, err := a.analyzeFile(s, path)
				if err != nil {
					// keep showing the previous result
					a.logger.Warn("analysis failed", zap.String("path", path), zap.Error(err))
					return
				}
				n, err := s.Run(ctx, a.cfg.Run.MaxTicks)
				if err != nil {
					return
				}
				printAnalysis(out, result, s.Cliques(minClique), minClique)
				fmt.Fprintf(out, "layout settled after %d ticks\n\n", n)
			}
			refresh()

			w, err := watcher.New(a.logger, func(string) { refresh() }, path)
			if err != nil {
				return err
			}
			w.WithDebounce(a.cfg.Watch.Debounce.Duration())

			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	view.register(cmd)
	return cmd
}
