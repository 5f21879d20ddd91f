package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sociogram/internal/render"
)

func newCliquesCmd(a *app) *cobra.Command {
	var (
		view      viewFlags
		minSize   int
		highlight int
	)

	cmd := &cobra.Command{
		Use:   "cliques <file>",
		Short: "List maximal cliques of mutual preferred nominations",
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

			if !cmd.Flags().Changed("min-size") {
				minSize = a.cfg.Analysis.MinCliqueSize
			}
			cliques := s.Cliques(minSize)

			if highlight > 0 {
				if _, err := s.HighlightClique(highlight-1, minSize); err != nil {
					a.logger.Warn("clique not highlighted", zap.Int("clique", highlight), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), render.CliqueList(cliques, result.Graph, minSize, s.Highlighted()))
			return nil
		},
	}

	view.register(cmd)
	cmd.Flags().IntVar(&minSize, "min-size", 2, "Smallest clique to list")
	cmd.Flags().IntVar(&highlight, "highlight", 0, "Mark the n-th listed clique (1-based) if enough of it is visible")
	return cmd
}
