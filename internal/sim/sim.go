// Package sim animates a single launch along its closed-form flight path.
package sim

import (
	"math"

	"trajview/internal/physics"
)

// Simulation holds the state of the currently animated launch. One value is
// owned by the game loop; nothing here is safe for concurrent use.
type Simulation struct {
	Running bool
	Paused  bool
	Time    float64
	Pos     physics.Point
	VX, VY  float64

	vi       float64
	angleDeg float64
	g        float64

	impactTime float64
	rangeM     float64
	deltaY     float64

	// trail ring, most recent sample at next-1
	trail []physics.Point
	next  int
	count int
}

// New returns a stopped simulation whose trail keeps at most maxTrail points.
func New(maxTrail int) *Simulation {
	if maxTrail < 1 {
		maxTrail = 1
	}
	return &Simulation{trail: make([]physics.Point, maxTrail)}
}

// Launch resets the simulation and starts animating the given solved flight.
// Invalid results are ignored.
func (s *Simulation) Launch(vi, angleDeg, g float64, res physics.Result) {
	if !res.Valid {
		return
	}
	s.Stop()
	s.Time = 0
	s.vi = vi
	s.angleDeg = angleDeg
	s.g = g
	s.impactTime = res.TimeOfFlight
	s.rangeM = res.Range
	s.deltaY = res.DeltaY
	s.Pos = physics.Point{}
	s.VX, s.VY = res.VX, res.VY
	s.next = 0
	s.count = 0
	s.record(s.Pos)
	s.Running = true
}

// Step advances the animation by dt seconds scaled by speedMult. It reports
// whether the projectile reached the landing point during this step.
func (s *Simulation) Step(dt, speedMult float64) bool {
	if !s.Running || s.Paused {
		return false
	}

	s.Time += dt * speedMult
	if s.Time >= s.impactTime {
		s.Time = s.impactTime
		s.Pos = physics.Point{X: s.rangeM, Y: s.deltaY}
		s.VX, s.VY = physics.VelocityAt(s.vi, s.angleDeg, s.g, s.impactTime)
		s.record(s.Pos)
		s.Running = false
		return true
	}

	s.Pos = physics.PositionAt(s.vi, s.angleDeg, s.g, s.Time)
	s.VX, s.VY = physics.VelocityAt(s.vi, s.angleDeg, s.g, s.Time)
	s.record(s.Pos)
	return false
}

// TogglePause flips the paused flag while a launch is running.
func (s *Simulation) TogglePause() {
	if s.Running {
		s.Paused = !s.Paused
	}
}

// Stop halts the animation and clears the trail.
func (s *Simulation) Stop() {
	s.Running = false
	s.Paused = false
	s.Time = 0
	s.Pos = physics.Point{}
	s.VX, s.VY = 0, 0
	s.next = 0
	s.count = 0
}

// Speed returns the current velocity magnitude.
func (s *Simulation) Speed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY)
}

// Launched reports whether there is anything to draw: a running animation or
// a finished one still showing its landing point.
func (s *Simulation) Launched() bool {
	return s.Running || s.count > 0
}

func (s *Simulation) record(p physics.Point) {
	s.trail[s.next] = p
	s.next++
	if s.next >= len(s.trail) {
		s.next = 0
	}
	if s.count < len(s.trail) {
		s.count++
	}
}

// Trail returns the recorded flight positions in chronological order, oldest
// first. The returned slice is a copy.
func (s *Simulation) Trail() []physics.Point {
	out := make([]physics.Point, 0, s.count)
	start := 0
	if s.count == len(s.trail) {
		start = s.next
	}
	for i := 0; i < s.count; i++ {
		out = append(out, s.trail[(start+i)%len(s.trail)])
	}
	return out
}
