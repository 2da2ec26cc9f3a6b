package treecorr3

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Point is a position in the metric's coordinate space. For Euclidean and
// Periodic metrics it is a flat (X, Y[, Z]) coordinate; for Arc it is a
// Cartesian unit vector on the sphere (Z may be 0 for points confined to a
// great circle, but callers normally populate all three coordinates).
type Point struct {
	X, Y, Z float64
}

// Metric is the size-aware distance and orientation collaborator THE CORE
// calls (spec.md §4.1, §6.2). Implementations never see cell internals,
// only positions and bounding sizes.
type Metric interface {
	// DistSq returns the squared distance between a and b under this
	// metric. sa, sb are the bounding sizes of the cells a and b came
	// from; implementations may use them to adjust for coordinate-
	// dependent scaling (all three metrics here ignore them).
	DistSq(a, b Point, sa, sb float64) float64

	// CCW reports whether (p1, p2, p3) are in counter-clockwise order
	// under this metric's orientation convention. Used only to sign v.
	CCW(p1, p2, p3 Point) bool
}

// EuclideanMetric is flat-space L2 distance.
type EuclideanMetric struct{}

func (EuclideanMetric) DistSq(a, b Point, _, _ float64) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

func (EuclideanMetric) CCW(p1, p2, p3 Point) bool {
	return crossZ(p1, p2, p3) > 0
}

// PeriodicMetric is flat-space L2 distance on a torus of the given box
// dimensions. A zero dimension means that axis is not periodic.
type PeriodicMetric struct {
	Xp, Yp, Zp float64
}

func (m PeriodicMetric) DistSq(a, b Point, _, _ float64) float64 {
	dx := wrapPeriodic(a.X-b.X, m.Xp)
	dy := wrapPeriodic(a.Y-b.Y, m.Yp)
	dz := wrapPeriodic(a.Z-b.Z, m.Zp)
	return dx*dx + dy*dy + dz*dz
}

func (m PeriodicMetric) CCW(p1, p2, p3 Point) bool {
	// Orientation is evaluated in the minimum-image frame centered on p1,
	// so a wraparound near the box edge does not flip the sign.
	q2 := Point{p1.X + wrapPeriodic(p2.X-p1.X, m.Xp), p1.Y + wrapPeriodic(p2.Y-p1.Y, m.Yp), p1.Z}
	q3 := Point{p1.X + wrapPeriodic(p3.X-p1.X, m.Xp), p1.Y + wrapPeriodic(p3.Y-p1.Y, m.Yp), p1.Z}
	return crossZ(p1, q2, q3) > 0
}

func wrapPeriodic(d, period float64) float64 {
	if period <= 0 {
		return d
	}
	d = math.Mod(d, period)
	if d > period/2 {
		d -= period
	} else if d < -period/2 {
		d += period
	}
	return d
}

func crossZ(p1, p2, p3 Point) float64 {
	ux, uy := p2.X-p1.X, p2.Y-p1.Y
	vx, vy := p3.X-p1.X, p3.Y-p1.Y
	return ux*vy - uy*vx
}

// ArcMetric is great-circle distance on the unit sphere, expressed in
// chord-space: DistSq returns the squared straight-line (chord) distance
// between the two Cartesian unit vectors, not the squared arc length. All
// separation/ratio thresholds derived from minsep/maxsep/b/bu/bv are
// likewise chord-space, per the Open Question in spec.md §9: both sides of
// every size-inflation inequality must live in the same space, and chord
// distance composes the way Euclidean distance does (the triangle
// inequality on chords holds directly), which is why this implementation
// keeps everything in chord-space rather than converting to arc length.
type ArcMetric struct{}

func (ArcMetric) DistSq(a, b Point, _, _ float64) float64 {
	ca := s2.ChordAngleBetweenPoints(toS2(a), toS2(b))
	return float64(ca)
}

func (ArcMetric) CCW(p1, p2, p3 Point) bool {
	return s2.Sign(toS2(p1), toS2(p2), toS2(p3))
}

func toS2(p Point) s2.Point {
	return s2.Point{Vector: r3.Vector{X: p.X, Y: p.Y, Z: p.Z}}
}
