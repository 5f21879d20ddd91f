package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sociogram/internal/analysis"
	"sociogram/internal/codec"
	"sociogram/internal/config"
	"sociogram/internal/loader"
	"sociogram/internal/session"
)

// viewFlags are the filter and layout overrides shared by the commands
type viewFlags struct {
	minPrefs     int
	hidePositive bool
	hideNegative bool
	preset       string
	linkDistance float64
	charge       float64
	collide      float64
	width        float64
	height       float64
}

func (f *viewFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&f.minPrefs, "min-prefs", 0, "Hide people with fewer preferred nominations received")
	flags.BoolVar(&f.hidePositive, "hide-positive", false, "Hide preferred nominations")
	flags.BoolVar(&f.hideNegative, "hide-negative", false, "Hide non-preferred nominations")
	flags.StringVar(&f.preset, "preset", "", "Layout preset: compact, balanced or spread")
	flags.Float64Var(&f.linkDistance, "link-distance", 0, "Target link length")
	flags.Float64Var(&f.charge, "charge", 0, "Many-body strength (negative repels)")
	flags.Float64Var(&f.collide, "collide", 0, "Collision radius factor")
	flags.Float64Var(&f.width, "width", 0, "Viewport width")
	flags.Float64Var(&f.height, "height", 0, "Viewport height")
}

// options applies the flags that were set on top of the config
func (f *viewFlags) options(cmd *cobra.Command, cfg *config.Config) session.Options {
	opts := cfg.SessionOptions()
	flags := cmd.Flags()

	if flags.Changed("min-prefs") {
		opts.Filter.MinPreferences = f.minPrefs
	}
	if f.hidePositive {
		opts.Filter.ShowPositive = false
	}
	if f.hideNegative {
		opts.Filter.ShowNegative = false
	}
	if flags.Changed("preset") {
		opts.Params = config.ParsePreset(f.preset).Params()
	}
	if flags.Changed("link-distance") {
		opts.Params.LinkDistance = f.linkDistance
	}
	if flags.Changed("charge") {
		opts.Params.ChargeStrength = f.charge
	}
	if flags.Changed("collide") {
		opts.Params.CollideFactor = f.collide
	}
	if flags.Changed("width") {
		opts.Viewport.Width = f.width
	}
	if flags.Changed("height") {
		opts.Viewport.Height = f.height
	}
	return opts
}

// newSession creates a session from the config and any flag overrides
func (a *app) newSession(cmd *cobra.Command, f *viewFlags) (*session.Session, error) {
	opts := a.cfg.SessionOptions()
	if f != nil {
		opts = f.options(cmd, a.cfg)
	}

	s := session.New(a.logger, opts)
	if _, err := s.SetFilter(opts.Filter); err != nil {
		return nil, err
	}
	if err := s.SetLayoutParams(opts.Params); err != nil {
		return nil, err
	}
	if err := s.Resize(opts.Viewport.Width, opts.Viewport.Height); err != nil {
		return nil, err
	}
	return s, nil
}

// analyzeFile loads rows from path into s
func (a *app) analyzeFile(s *session.Session, path string) (*analysis.Result, error) {
	rows, err := loader.LoadRows(path)
	if err != nil {
		return nil, err
	}

	result, err := s.Analyze(rows)
	if errors.Is(err, session.ErrEmptyDataset) {
		a.logger.Warn("no rows to analyze", zap.String("path", path))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err != nil {
		return nil, err
	}
	for stage, stageErr := range result.StageErrors {
		a.logger.Warn("analysis stage fell back to defaults",
			zap.String("stage", string(stage)), zap.Error(stageErr))
	}
	return result, nil
}

// exporterFor returns the report exporter for an output format
func exporterFor(format string) (codec.Exporter, error) {
	switch format {
	case "json":
		return codec.NewJSONCodec(), nil
	case "yaml", "yml":
		return codec.NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
