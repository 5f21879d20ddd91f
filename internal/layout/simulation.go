package layout

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"sociogram/internal/domain"
)

// State of the simulation
type State int

const (
	Stopped State = iota
	Running
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// ViewNode is a visible node handed to the simulation
type ViewNode struct {
	ID     string
	Radius float64
}

// ViewLink is a visible nomination handed to the simulation
type ViewLink struct {
	ID     string
	Source string
	Target string
	Type   domain.NominationType
}

// body is the mutable per-node layout state
type body struct {
	id     string
	radius float64
	pos    r2.Vec
	vel    r2.Vec
	fixed  *r2.Vec
}

// Coord2 implements barneshut.Particle2
func (b *body) Coord2() r2.Vec { return b.pos }

// Mass implements barneshut.Particle2
func (b *body) Mass() float64 { return 1 }

func (b *body) position() domain.NodePosition {
	return domain.NodePosition{NodeID: b.id, X: b.pos.X, Y: b.pos.Y, Pinned: b.fixed != nil}
}

type link struct {
	id     string
	typ    domain.NominationType
	source int
	target int
	bias   float64
}

// Simulation is a tick-driven force layout over the current view
type Simulation struct {
	logger *zap.Logger
	params Params
	center r2.Vec

	bodies []*body
	index  map[string]int
	links  []link

	state       State
	alpha       float64
	alphaTarget float64
	ticks       int

	rng *rand.Rand
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the simulation logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed makes jiggle offsets reproducible
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSimulation creates a stopped simulation centered on the viewport
func NewSimulation(viewport Viewport, params Params, opts ...Option) *Simulation {
	if !viewport.Valid() {
		viewport = DefaultViewport()
	}
	s := &Simulation{
		logger: zap.NewNop(),
		params: params,
		center: r2.Vec{X: viewport.Width / 2, Y: viewport.Height / 2},
		index:  make(map[string]int),
		state:  Stopped,
		alpha:  AlphaInitial,
		rng:    rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state
func (s *Simulation) State() State { return s.state }

// Running reports whether the simulation is running
func (s *Simulation) Running() bool { return s.state == Running }

// Alpha returns the current energy
func (s *Simulation) Alpha() float64 { return s.alpha }

// AlphaTarget returns the value alpha decays toward
func (s *Simulation) AlphaTarget() float64 { return s.alphaTarget }

// Params returns the current layout controls
func (s *Simulation) Params() Params { return s.params }

// Center returns the point the centering force pulls toward
func (s *Simulation) Center() r2.Vec { return s.center }

// Len returns the number of nodes in the layout
func (s *Simulation) Len() int { return len(s.bodies) }

// Ticks returns the number of ticks applied since the last restart
func (s *Simulation) Ticks() int { return s.ticks }

// SetView replaces the visible nodes and links. Positions of nodes that
// survive the change are kept; new nodes are placed on a phyllotaxis spiral
// around the center. An empty view stops the simulation.
func (s *Simulation) SetView(nodes []ViewNode, links []ViewLink) {
	prev := make(map[string]*body, len(s.bodies))
	for _, b := range s.bodies {
		prev[b.id] = b
	}

	bodies := make([]*body, 0, len(nodes))
	index := make(map[string]int, len(nodes))
	placed := 0
	for _, n := range nodes {
		if _, dup := index[n.ID]; dup {
			continue
		}
		b, ok := prev[n.ID]
		if ok {
			b.radius = n.Radius
		} else {
			b = &body{id: n.ID, radius: n.Radius, pos: s.phyllotaxis(placed)}
			placed++
		}
		index[n.ID] = len(bodies)
		bodies = append(bodies, b)
	}
	s.bodies = bodies
	s.index = index
	s.links = s.resolveLinks(links)

	if len(s.bodies) == 0 {
		s.Stop()
		return
	}
	if s.alpha < reheatBelow {
		s.alpha = AlphaViewRestart
	}
	s.restart()
}

// resolveLinks maps link endpoints to body indices and computes the link
// bias from endpoint degrees. Self-loops and links to absent nodes are
// dropped.
func (s *Simulation) resolveLinks(links []ViewLink) []link {
	out := make([]link, 0, len(links))
	count := make([]int, len(s.bodies))
	for _, l := range links {
		src, ok := s.index[l.Source]
		if !ok {
			s.logger.Debug("link endpoint not in view", zap.String("link", l.ID), zap.String("node", l.Source))
			continue
		}
		dst, ok := s.index[l.Target]
		if !ok {
			s.logger.Debug("link endpoint not in view", zap.String("link", l.ID), zap.String("node", l.Target))
			continue
		}
		if src == dst {
			continue
		}
		out = append(out, link{id: l.ID, typ: l.Type, source: src, target: dst})
		count[src]++
		count[dst]++
	}
	for i := range out {
		cs, ct := count[out[i].source], count[out[i].target]
		out[i].bias = float64(cs) / float64(cs+ct)
	}
	return out
}

// phyllotaxis returns the i-th point of a sunflower spiral around the center
func (s *Simulation) phyllotaxis(i int) r2.Vec {
	const initialRadius = 10.0
	angle := math.Pi * (3 - math.Sqrt(5))
	r := initialRadius * math.Sqrt(0.5+float64(i))
	a := float64(i) * angle
	return r2.Add(s.center, r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)})
}

// SetParams replaces the layout controls and reheats when nodes are present
func (s *Simulation) SetParams(p Params) {
	s.params = p
	if len(s.bodies) == 0 {
		return
	}
	s.alpha = AlphaRestart
	s.restart()
}

// Resize recenters the centering force on a new viewport. Accumulated
// positions are kept.
func (s *Simulation) Resize(width, height float64) error {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return fmt.Errorf("resize to %gx%g: %w", width, height, ErrInvalidViewport)
	}
	s.center = r2.Vec{X: width / 2, Y: height / 2}
	if len(s.bodies) == 0 {
		return nil
	}
	s.alpha = AlphaRestart
	s.restart()
	return nil
}

func (s *Simulation) restart() {
	if s.state != Running {
		s.ticks = 0
	}
	s.state = Running
}

// Stop halts the simulation without clearing state
func (s *Simulation) Stop() {
	s.state = Stopped
}

// Tick advances the layout by one step and reports whether it is still
// running afterwards. It is a no-op when stopped.
func (s *Simulation) Tick() bool {
	if s.state != Running {
		return false
	}
	s.alpha += (s.alphaTarget - s.alpha) * AlphaDecay

	s.applyCenter()
	s.applyLinks()
	s.applyManyBody()
	s.applyCollide()

	keep := 1 - VelocityDecay
	for _, b := range s.bodies {
		if b.fixed != nil {
			b.pos = *b.fixed
			b.vel = r2.Vec{}
			continue
		}
		b.vel = r2.Scale(keep, b.vel)
		b.pos = r2.Add(b.pos, b.vel)
	}
	s.ticks++

	if s.alpha < AlphaMin {
		s.state = Stopped
		s.logger.Debug("layout settled", zap.Int("ticks", s.ticks), zap.Int("nodes", len(s.bodies)))
	}
	return s.state == Running
}

// DragStart pins a node at its current position and keeps the layout warm
// while it is held
func (s *Simulation) DragStart(id string) error {
	b, err := s.body(id)
	if err != nil {
		return err
	}
	pos := b.pos
	b.fixed = &pos
	s.alphaTarget = AlphaDragTarget
	s.restart()
	return nil
}

// Drag moves a pinned node
func (s *Simulation) Drag(id string, x, y float64) error {
	b, err := s.body(id)
	if err != nil {
		return err
	}
	pos := r2.Vec{X: x, Y: y}
	b.fixed = &pos
	return nil
}

// DragEnd releases a node back into the free simulation
func (s *Simulation) DragEnd(id string) error {
	b, err := s.body(id)
	if err != nil {
		return err
	}
	b.fixed = nil
	s.alphaTarget = 0
	return nil
}

// Pinned reports whether a node is currently held
func (s *Simulation) Pinned(id string) bool {
	b, err := s.body(id)
	return err == nil && b.fixed != nil
}

func (s *Simulation) body(id string) (*body, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("layout node %q: %w", id, domain.ErrUnknownNode)
	}
	return s.bodies[i], nil
}

// Teardown stops the simulation and clears all nodes and links
func (s *Simulation) Teardown() {
	s.state = Stopped
	s.bodies = nil
	s.links = nil
	s.index = make(map[string]int)
	s.alpha = AlphaInitial
	s.alphaTarget = 0
	s.ticks = 0
}

// Positions returns node positions in view order
func (s *Simulation) Positions() []domain.NodePosition {
	out := make([]domain.NodePosition, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.position()
	}
	return out
}

// Position returns the current position of one node
func (s *Simulation) Position(id string) (domain.NodePosition, bool) {
	b, err := s.body(id)
	if err != nil {
		return domain.NodePosition{}, false
	}
	return b.position(), true
}

// EdgePositions returns the resolved endpoint coordinates of every drawn link
func (s *Simulation) EdgePositions() []domain.EdgePosition {
	out := make([]domain.EdgePosition, len(s.links))
	for i, l := range s.links {
		src, dst := s.bodies[l.source].pos, s.bodies[l.target].pos
		out[i] = domain.EdgePosition{
			EdgeID: l.id,
			Type:   l.typ,
			X1:     src.X,
			Y1:     src.Y,
			X2:     dst.X,
			Y2:     dst.Y,
		}
	}
	return out
}

// jiggle returns a tiny non-zero offset used to separate coincident points
func (s *Simulation) jiggle() float64 {
	return (s.rng.Float64() - 0.5) * 1e-6
}
