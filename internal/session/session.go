package session

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sociogram/internal/analysis"
	"sociogram/internal/domain"
	"sociogram/internal/layout"
)

var (
	// ErrEmptyDataset is returned by Analyze when there are no rows
	ErrEmptyDataset = analysis.ErrEmptyDataset
	// ErrCliqueIndex is returned when a highlight index is out of range
	ErrCliqueIndex = errors.New("clique index out of range")
	// ErrCliqueNotVisible is returned when fewer than two members of a clique
	// are in the current view
	ErrCliqueNotVisible = errors.New("clique has fewer than two visible members")
	// ErrInvalidFilter is returned for a filter that fails validation
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidParams is returned for layout parameters that fail validation
	ErrInvalidParams = errors.New("invalid layout parameters")
)

// minVisibleMembers is the number of clique members that must be visible for
// a highlight to be meaningful
const minVisibleMembers = 2

// Options configures a new Session
type Options struct {
	Filter   Filter
	Params   layout.Params
	Viewport layout.Viewport
	Analysis analysis.Options
	// Seed makes layout jiggle reproducible
	Seed int64
}

// DefaultOptions returns options with every default applied
func DefaultOptions() Options {
	return Options{
		Filter:   DefaultFilter(),
		Params:   layout.DefaultParams(),
		Viewport: layout.DefaultViewport(),
		Analysis: analysis.Options{MaxCliqueNodes: 2000},
		Seed:     1,
	}
}

// Session is one analysis and layout session
type Session struct {
	id       string
	logger   *zap.Logger
	validate *validator.Validate
	analyzer *analysis.Analyzer
	bus      *EventBus

	result    *analysis.Result
	filter    Filter
	view      View
	sim       *layout.Simulation
	highlight domain.Clique
}

// New creates an empty session. A nil logger disables logging.
func New(logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()
	logger = logger.With(zap.String("session", id))

	return &Session{
		id:       id,
		logger:   logger,
		validate: validator.New(),
		analyzer: analysis.NewAnalyzer(logger, opts.Analysis),
		bus:      NewEventBus(),
		filter:   opts.Filter,
		view:     ApplyFilter(nil, opts.Filter),
		sim: layout.NewSimulation(opts.Viewport, opts.Params,
			layout.WithLogger(logger), layout.WithSeed(opts.Seed)),
	}
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Events returns the session event bus
func (s *Session) Events() *EventBus { return s.bus }

// Result returns the current analysis result, or nil before the first
// successful Analyze
func (s *Session) Result() *analysis.Result { return s.result }

// Filter returns the current filter
func (s *Session) Filter() Filter { return s.filter }

// View returns the current filtered view
func (s *Session) View() View { return s.view }

// Simulation returns the layout simulation
func (s *Session) Simulation() *layout.Simulation { return s.sim }

// Positions returns the current node positions
func (s *Session) Positions() []domain.NodePosition { return s.sim.Positions() }

// EdgePositions returns the current nomination endpoints
func (s *Session) EdgePositions() []domain.EdgePosition { return s.sim.EdgePositions() }

// Analyze runs the analysis pipeline over rows and swaps the result in. On
// error the previous result, view and layout are left untouched.
func (s *Session) Analyze(rows []domain.Row) (*analysis.Result, error) {
	result, err := s.analyzer.Run(rows)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	s.result = result
	s.highlight = nil
	diff := s.refresh(true)

	summary := AnalysisSummary{
		Nodes:   result.Graph.Len(),
		Edges:   len(result.Graph.Edges),
		Cliques: len(result.Cliques),
	}
	for stage := range result.StageErrors {
		summary.FailedStages = append(summary.FailedStages, string(stage))
	}
	sort.Strings(summary.FailedStages)
	s.publish(EventAnalysisCompleted, summary)
	s.logger.Debug("view after analysis",
		zap.Int("visible", s.view.Len()),
		zap.Int("added", len(diff.Added)),
		zap.Int("removed", len(diff.Removed)))

	return result, nil
}

// SetFilter replaces the filter and recomputes the view
func (s *Session) SetFilter(f Filter) (Diff, error) {
	if err := s.validate.Struct(f); err != nil {
		return Diff{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	s.filter = f
	return s.refresh(false), nil
}

// refresh recomputes the view from the current result and filter and feeds
// the layout. With force unset the layout is only updated when the visible
// set changed.
func (s *Session) refresh(force bool) Diff {
	var g *domain.Graph
	if s.result != nil {
		g = s.result.Graph
	}
	next := ApplyFilter(g, s.filter)
	diff := Reconcile(s.view, next)
	s.view = next

	if force || diff.Changed() {
		s.sim.SetView(viewNodes(next), viewLinks(next))
		s.publish(EventViewChanged, diff)
		if !s.sim.Running() {
			s.publish(EventLayoutStopped, nil)
		}
	}

	if s.highlight != nil && s.visibleMembers(s.highlight) < minVisibleMembers {
		s.ClearHighlight()
	}
	return diff
}

func viewNodes(v View) []layout.ViewNode {
	out := make([]layout.ViewNode, len(v.Nodes))
	for i, n := range v.Nodes {
		out[i] = layout.ViewNode{ID: n.ID, Radius: n.Radius}
	}
	return out
}

func viewLinks(v View) []layout.ViewLink {
	out := make([]layout.ViewLink, len(v.Edges))
	for i, e := range v.Edges {
		out[i] = layout.ViewLink{ID: e.ID, Source: e.Source, Target: e.Target, Type: e.Type}
	}
	return out
}

// SetLayoutParams replaces the layout controls
func (s *Session) SetLayoutParams(p layout.Params) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	s.sim.SetParams(p)
	return nil
}

// Resize recenters the layout on a new viewport
func (s *Session) Resize(width, height float64) error {
	return s.sim.Resize(width, height)
}

// Tick advances the layout one step and reports whether it is still running
func (s *Session) Tick() bool {
	if !s.sim.Running() {
		return false
	}
	running := s.sim.Tick()
	s.publish(EventTick, TickInfo{Tick: s.sim.Ticks(), Alpha: s.sim.Alpha()})
	if !running {
		s.publish(EventLayoutStopped, nil)
	}
	return running
}

// Run ticks until the layout stops, ctx is done or maxTicks ticks have been
// applied. A non-positive maxTicks means no budget. It returns the number of
// ticks applied.
func (s *Session) Run(ctx context.Context, maxTicks int) (int, error) {
	ticks := 0
	for maxTicks <= 0 || ticks < maxTicks {
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		default:
		}
		if !s.sim.Running() {
			break
		}
		ticks++
		if !s.Tick() {
			break
		}
	}
	return ticks, nil
}

// Cliques returns the current cliques with at least minSize members
func (s *Session) Cliques(minSize int) []domain.Clique {
	if s.result == nil {
		return []domain.Clique{}
	}
	return analysis.FilterCliques(s.result.Cliques, minSize)
}

// HighlightClique selects the clique at index in Cliques(minSize). The
// highlight is cleared when the index is out of range or fewer than two of
// its members are visible.
func (s *Session) HighlightClique(index, minSize int) (domain.Clique, error) {
	cliques := s.Cliques(minSize)
	if index < 0 || index >= len(cliques) {
		s.ClearHighlight()
		return nil, fmt.Errorf("highlight %d of %d: %w", index, len(cliques), ErrCliqueIndex)
	}
	c := cliques[index]
	if s.visibleMembers(c) < minVisibleMembers {
		s.ClearHighlight()
		return nil, fmt.Errorf("highlight %v: %w", []string(c), ErrCliqueNotVisible)
	}
	s.highlight = c
	s.publish(EventHighlightChanged, c)
	return c, nil
}

// Highlighted returns the highlighted clique, or nil
func (s *Session) Highlighted() domain.Clique { return s.highlight }

// IsHighlighted reports whether id belongs to the highlighted clique
func (s *Session) IsHighlighted(id string) bool {
	return s.highlight.Contains(id)
}

// ClearHighlight removes the clique highlight
func (s *Session) ClearHighlight() {
	if s.highlight == nil {
		return
	}
	s.highlight = nil
	s.publish(EventHighlightChanged, nil)
}

func (s *Session) visibleMembers(c domain.Clique) int {
	visible := 0
	for _, id := range c {
		if s.view.HasNode(id) {
			visible++
		}
	}
	return visible
}

// Clear tears down the layout and drops the result, view and highlight
func (s *Session) Clear() {
	s.sim.Teardown()
	s.result = nil
	s.view = ApplyFilter(nil, s.filter)
	s.highlight = nil
	s.publish(EventCleared, nil)
	s.logger.Debug("session cleared")
}

func (s *Session) publish(t EventType, payload interface{}) {
	s.bus.Publish(Event{Type: t, SessionID: s.id, Payload: payload})
}
