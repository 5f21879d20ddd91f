package layout

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"
)

// minDistance2 bounds the many-body force for very close pairs
const minDistance2 = 1.0

// applyCenter translates all nodes so their mean sits on the center
func (s *Simulation) applyCenter() {
	if len(s.bodies) == 0 {
		return
	}
	var sum r2.Vec
	for _, b := range s.bodies {
		sum = r2.Add(sum, b.pos)
	}
	shift := r2.Sub(r2.Scale(1/float64(len(s.bodies)), sum), s.center)
	for _, b := range s.bodies {
		b.pos = r2.Sub(b.pos, shift)
	}
}

// applyLinks pulls linked nodes toward the configured link distance. The
// correction is split between endpoints by their relative degree.
func (s *Simulation) applyLinks() {
	for _, l := range s.links {
		src, dst := s.bodies[l.source], s.bodies[l.target]
		d := r2.Sub(r2.Add(dst.pos, dst.vel), r2.Add(src.pos, src.vel))
		if d.X == 0 {
			d.X = s.jiggle()
		}
		if d.Y == 0 {
			d.Y = s.jiggle()
		}
		dist := r2.Norm(d)
		k := (dist - s.params.LinkDistance) / dist * s.alpha * LinkStrength
		d = r2.Scale(k, d)
		dst.vel = r2.Sub(dst.vel, r2.Scale(l.bias, d))
		src.vel = r2.Add(src.vel, r2.Scale(1-l.bias, d))
	}
}

// applyManyBody applies the pairwise charge between all nodes, approximated
// with a Barnes-Hut quadtree
func (s *Simulation) applyManyBody() {
	if len(s.bodies) < 2 || s.params.ChargeStrength == 0 {
		return
	}
	s.separateCoincident()

	particles := make([]barneshut.Particle2, len(s.bodies))
	for i, b := range s.bodies {
		particles[i] = b
	}
	charge := s.chargeForce()

	plane, err := barneshut.NewPlane(particles)
	if err != nil {
		s.logger.Debug("barnes-hut plane unavailable, using exact charge", zap.Error(err))
		s.applyManyBodyExact(charge)
		return
	}
	for _, b := range s.bodies {
		f := plane.ForceOn(b, Theta, charge)
		b.vel = r2.Add(b.vel, r2.Scale(s.alpha, f))
	}
}

// applyManyBodyExact is the quadratic fallback for applyManyBody
func (s *Simulation) applyManyBodyExact(charge barneshut.Force2) {
	for _, b := range s.bodies {
		var f r2.Vec
		for _, o := range s.bodies {
			if o == b {
				continue
			}
			f = r2.Add(f, charge(b, o, b.Mass(), o.Mass(), r2.Sub(o.pos, b.pos)))
		}
		b.vel = r2.Add(b.vel, r2.Scale(s.alpha, f))
	}
}

// chargeForce returns the inverse-square charge. v points from the node
// toward the other mass, so a negative strength repels.
func (s *Simulation) chargeForce() barneshut.Force2 {
	strength := s.params.ChargeStrength
	return func(_, _ barneshut.Particle2, _, m2 float64, v r2.Vec) r2.Vec {
		d2 := r2.Norm2(v)
		if d2 == 0 {
			return r2.Vec{}
		}
		if d2 < minDistance2 {
			d2 = math.Sqrt(minDistance2 * d2)
		}
		return r2.Scale(strength*m2/d2, v)
	}
}

// separateCoincident nudges nodes sharing exact coordinates apart so the
// quadtree can split them
func (s *Simulation) separateCoincident() {
	seen := make(map[r2.Vec]struct{}, len(s.bodies))
	for _, b := range s.bodies {
		for {
			if _, dup := seen[b.pos]; !dup {
				break
			}
			b.pos.X += s.jiggle()
			b.pos.Y += s.jiggle()
		}
		seen[b.pos] = struct{}{}
	}
}

// applyCollide pushes apart nodes whose collision circles overlap
func (s *Simulation) applyCollide() {
	n := len(s.bodies)
	for i := 0; i < n; i++ {
		a := s.bodies[i]
		ra := s.params.collideRadius(a.radius)
		pa := r2.Add(a.pos, a.vel)
		for j := i + 1; j < n; j++ {
			b := s.bodies[j]
			rb := s.params.collideRadius(b.radius)
			d := r2.Sub(pa, r2.Add(b.pos, b.vel))
			r := ra + rb
			l := r2.Norm2(d)
			if l >= r*r {
				continue
			}
			if d.X == 0 {
				d.X = s.jiggle()
				l += d.X * d.X
			}
			if d.Y == 0 {
				d.Y = s.jiggle()
				l += d.Y * d.Y
			}
			dist := math.Sqrt(l)
			d = r2.Scale((r-dist)/dist*CollideStrength, d)
			w := rb * rb / (ra*ra + rb*rb)
			a.vel = r2.Add(a.vel, r2.Scale(w, d))
			b.vel = r2.Sub(b.vel, r2.Scale(1-w, d))
		}
	}
}
