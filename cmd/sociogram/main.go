package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sociogram/internal/config"
)

// app carries state shared by every command
type app struct {
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A logger already set on a is kept.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sociogram",
		Short: "Sociometric analysis of peer nomination data",
		Long: `sociogram analyses peer nomination data: each person names up to three
peers they most prefer and three they least prefer.

It builds the nomination graph, classifies each person's sociometric status
(Popular, Rejected, Controversial, Neglected, Average), finds cliques of
mutual positive nominations, computes betweenness centrality and lays the
graph out with a force simulation.

Input rows are comma-separated: code, name, three preferred codes and three
non-preferred codes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: search standard locations)")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newLayoutCmd(a),
		newCliquesCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// init loads the config and builds the logger
func (a *app) init() error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if a.verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		a.logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	if path != "" {
		a.logger.Debug("config loaded", zap.String("path", path))
	}
	return nil
}
