package treecorr3

import (
	"math"
	"math/cmplx"
)

// Projector rotates a triangle's three spin-2 values into a shared,
// orientation-consistent frame before the spin-2 kernel combines them
// into the four natural products gamma0..gamma3 (spec.md §4.9, §6.3).
// Implementations must preserve each |g_i|; only the phase changes.
//
// No reference projection routine was available to ground this against
// directly, so both implementations below follow the one contract the
// natural-components convention requires: rotate each g_i into the
// frame whose real axis points from that vertex toward the triangle's
// centroid. A spin-2 quantity picks up a phase of exp(-2i*theta) under
// a frame rotation by theta, which is the only place the factor of 2
// below comes from.
type Projector interface {
	Project(c1, c2, c3 Cell, g1, g2, g3 complex128) (complex128, complex128, complex128)
}

// EuclideanProjector projects in the flat tangent plane of Point.
type EuclideanProjector struct{}

func (EuclideanProjector) Project(c1, c2, c3 Cell, g1, g2, g3 complex128) (complex128, complex128, complex128) {
	cx := (c1.Pos().X + c2.Pos().X + c3.Pos().X) / 3
	cy := (c1.Pos().Y + c2.Pos().Y + c3.Pos().Y) / 3

	rot := func(p Point, g complex128) complex128 {
		dx, dy := cx-p.X, cy-p.Y
		if dx == 0 && dy == 0 {
			return g
		}
		phase := cmplx.Exp(complex(0, -2*math.Atan2(dy, dx)))
		return g * phase
	}
	return rot(c1.Pos(), g1), rot(c2.Pos(), g2), rot(c3.Pos(), g3)
}

// SphericalProjector projects using each vertex's local east/north
// tangent frame on the unit sphere, the spherical analogue of pointing
// the real axis at the centroid.
type SphericalProjector struct{}

func (SphericalProjector) Project(c1, c2, c3 Cell, g1, g2, g3 complex128) (complex128, complex128, complex128) {
	cx := (c1.Pos().X + c2.Pos().X + c3.Pos().X) / 3
	cy := (c1.Pos().Y + c2.Pos().Y + c3.Pos().Y) / 3
	cz := (c1.Pos().Z + c2.Pos().Z + c3.Pos().Z) / 3
	centroid := normalize(Point{cx, cy, cz})

	rot := func(p Point, g complex128) complex128 {
		p = normalize(p)
		east, north := tangentFrame(p)
		dir := Point{centroid.X - p.X, centroid.Y - p.Y, centroid.Z - p.Z}
		de := dir.X*east.X + dir.Y*east.Y + dir.Z*east.Z
		dn := dir.X*north.X + dir.Y*north.Y + dir.Z*north.Z
		if de == 0 && dn == 0 {
			return g
		}
		phase := cmplx.Exp(complex(0, -2*math.Atan2(dn, de)))
		return g * phase
	}
	return rot(c1.Pos(), g1), rot(c2.Pos(), g2), rot(c3.Pos(), g3)
}

// tangentFrame returns orthonormal east/north vectors tangent to the
// unit sphere at p, using the standard ENU convention (north toward
// +Z, east = north x p handedness).
func tangentFrame(p Point) (east, north Point) {
	nx, ny, nz := -p.X*p.Z, -p.Y*p.Z, p.X*p.X+p.Y*p.Y
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl == 0 {
		// p is a pole; any consistent tangent frame works.
		return Point{1, 0, 0}, Point{0, 1, 0}
	}
	north = Point{nx / nl, ny / nl, nz / nl}
	ex, ey, ez := -p.Y, p.X, 0.0
	el := math.Sqrt(ex*ex + ey*ey + ez*ez)
	if el == 0 {
		return Point{1, 0, 0}, north
	}
	east = Point{ex / el, ey / el, ez / el}
	return east, north
}

func normalize(p Point) Point {
	l := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l, p.Z / l}
}
