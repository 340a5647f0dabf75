// Package physics solves closed-form projectile kinematics: given launch and
// landing speeds and a launch angle it derives the landing-height offset,
// time of flight and horizontal range.
package physics

import "math"

// Reasons attached to invalid results. Shown to the user verbatim.
const (
	ReasonNegativeSpeed  = "initial speed must be non-negative"
	ReasonNoRealSolution = "no solution for given angle and speeds"
	ReasonNoPositiveRoot = "landing is never reached for given angle and speeds"
)

// Result describes one evaluated launch. When Valid is false only Reason is
// meaningful; otherwise the kinematic outputs are set and immutable.
type Result struct {
	Valid  bool
	Reason string

	TimeOfFlight float64 // s, smallest strictly positive root
	Range        float64 // m, horizontal distance at landing
	DeltaY       float64 // m, landing height relative to launch
	VX           float64 // m/s, horizontal launch velocity
	VY           float64 // m/s, vertical launch velocity
}

// Point is a position on the flight path, in world meters.
type Point struct {
	X, Y float64
}

// Roots this close to zero are rounding noise from the discriminant square
// root, not flights.
const timeEpsilon = 1e-9

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// DeltaY derives the landing-height offset implied by the initial and final
// speeds: vf^2 = vi^2 + 2*g*deltaY, so deltaY = (vf^2 - vi^2) / (2*g).
// Positive means the landing point is above the launch point.
func DeltaY(vi, vf, g float64) float64 {
	return (vf*vf - vi*vi) / (2.0 * g)
}

// Solve evaluates a launch with initial speed vi, landing speed vf and launch
// angle angleDeg under gravity g. If vfSet is false the landing speed is
// assumed equal to vi (same-height landing, DeltaY exactly zero).
//
// The time of flight is the smallest strictly positive root of the vertical
// displacement equation 0.5*g*t^2 - vy*t + deltaY = 0. With a zero
// discriminant the single tangent root is used; with two positive roots the
// smaller one (first crossing of the landing height) wins; a negative
// discriminant or no positive root yields an invalid result.
func Solve(vi, vf float64, vfSet bool, angleDeg, g float64) Result {
	if vi < 0 {
		return invalid(ReasonNegativeSpeed)
	}

	deltaY := 0.0
	if vfSet {
		deltaY = DeltaY(vi, vf, g)
	}

	rad := angleDeg * math.Pi / 180.0
	vx := vi * math.Cos(rad)
	vy := vi * math.Sin(rad)

	disc := vy*vy - 2.0*g*deltaY
	if disc < 0 {
		return invalid(ReasonNoRealSolution)
	}

	sqrtDisc := math.Sqrt(disc)
	tFirst := (vy - sqrtDisc) / g
	tSecond := (vy + sqrtDisc) / g

	var t float64
	switch {
	case tFirst > timeEpsilon:
		t = tFirst
	case tSecond > timeEpsilon:
		t = tSecond
	default:
		return invalid(ReasonNoPositiveRoot)
	}

	// A (near) vertical launch still lands; its range is simply zero.
	return Result{
		Valid:        true,
		TimeOfFlight: t,
		Range:        vx * t,
		DeltaY:       deltaY,
		VX:           vx,
		VY:           vy,
	}
}

// PositionAt returns the projectile position t seconds after launch.
func PositionAt(vi, angleDeg, g, t float64) Point {
	rad := angleDeg * math.Pi / 180.0
	vx := vi * math.Cos(rad)
	vy := vi * math.Sin(rad)
	return Point{
		X: vx * t,
		Y: vy*t - 0.5*g*t*t,
	}
}

// VelocityAt returns the velocity components t seconds after launch.
func VelocityAt(vi, angleDeg, g, t float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180.0
	return vi * math.Cos(rad), vi*math.Sin(rad) - g*t
}

// SamplePath samples the flight path at n+1 evenly spaced times in [0, tEnd]
// for plotting. n must be at least 1.
func SamplePath(vi, angleDeg, g, tEnd float64, n int) []Point {
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := tEnd * float64(i) / float64(n)
		points = append(points, PositionAt(vi, angleDeg, g, t))
	}
	return points
}
