package analysis

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sociogram/internal/domain"
)

var (
	// ErrEmptyDataset is returned when an analysis is requested with no rows
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrGraphTooLarge is recorded when a stage is skipped by a size guard
	ErrGraphTooLarge = errors.New("graph too large")
)

// Stage names a pipeline step that can fail independently
type Stage string

const (
	StageCentrality Stage = "centrality"
	StageCliques    Stage = "cliques"
)

// Options bounds the expensive stages. Zero means unlimited.
type Options struct {
	MaxCliqueNodes     int
	MaxCentralityNodes int
}

// Result is the output of one analysis run
type Result struct {
	Graph   *domain.Graph     `json:"graph"`
	Scores  map[string]Scores `json:"scores"`
	Cliques []domain.Clique   `json:"cliques"`

	// StageErrors records stages that failed and fell back to defaults
	StageErrors map[Stage]error `json:"-"`
}

// Nodes returns the result's nodes in first-seen order
func (r *Result) Nodes() []*domain.Node {
	if r == nil || r.Graph == nil {
		return nil
	}
	return r.Graph.OrderedNodes()
}

// Failed reports whether the given stage fell back to its default
func (r *Result) Failed(stage Stage) bool {
	_, ok := r.StageErrors[stage]
	return ok
}

// Analyzer runs the analysis pipeline
type Analyzer struct {
	logger *zap.Logger
	opts   Options

	// Swappable for tests
	centrality  func(*domain.Graph) (map[string]float64, error)
	findCliques func(*domain.Graph) ([]domain.Clique, error)
}

// NewAnalyzer creates an analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger, opts Options) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		logger:      logger,
		opts:        opts,
		centrality:  Betweenness,
		findCliques: FindCliques,
	}
}

// Run builds the graph from rows and computes every metric in pipeline order.
// Failures in the centrality or clique stage do not fail the run.
func (a *Analyzer) Run(rows []domain.Row) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	g := Build(rows)
	result := &Result{
		Graph:       g,
		Scores:      make(map[string]Scores),
		Cliques:     []domain.Clique{},
		StageErrors: make(map[Stage]error),
	}
	if g.Len() == 0 {
		a.logger.Debug("no people found in rows", zap.Int("rows", len(rows)))
		return result, nil
	}

	nodes := g.OrderedNodes()

	if err := a.runStage(StageCentrality, a.opts.MaxCentralityNodes, g, func() error {
		scores, err := a.centrality(g)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			n.Betweenness = scores[n.ID]
		}
		return nil
	}); err != nil {
		result.StageErrors[StageCentrality] = err
		for _, n := range nodes {
			n.Betweenness = 0
		}
	}

	result.Scores = Classify(nodes)

	for _, n := range nodes {
		n.UpdateRadius()
	}

	if err := a.runStage(StageCliques, a.opts.MaxCliqueNodes, g, func() error {
		cliques, err := a.findCliques(g)
		if err != nil {
			return err
		}
		result.Cliques = cliques
		return nil
	}); err != nil {
		result.StageErrors[StageCliques] = err
		result.Cliques = []domain.Clique{}
	}

	a.logger.Info("analysis complete",
		zap.Int("rows", len(rows)),
		zap.Int("nodes", g.Len()),
		zap.Int("edges", len(g.Edges)),
		zap.Int("cliques", len(result.Cliques)),
		zap.Int("failed_stages", len(result.StageErrors)),
	)

	return result, nil
}

// runStage executes fn with the size guard applied and any panic recovered
// into an error. Failures are logged here.
func (a *Analyzer) runStage(stage Stage, limit int, g *domain.Graph, fn func() error) (err error) {
	if limit > 0 && g.Len() > limit {
		err = fmt.Errorf("%s: %d nodes exceeds limit %d: %w", stage, g.Len(), limit, ErrGraphTooLarge)
		a.logger.Warn("analysis stage skipped", zap.String("stage", string(stage)), zap.Error(err))
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", stage, r)
		}
		if err != nil {
			a.logger.Error("analysis stage failed", zap.String("stage", string(stage)), zap.Error(err))
		}
	}()

	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}
