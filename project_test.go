package treecorr3

import (
	"math/cmplx"
	"testing"
)

func TestEuclideanProjectorPreservesMagnitude(t *testing.T) {
	c1 := leaf(0, 0, 1, Payload{})
	c2 := leaf(3, 0, 1, Payload{})
	c3 := leaf(0, 4, 1, Payload{})

	g1, g2, g3 := complex(1, 2), complex(-0.5, 0.3), complex(0, -1)
	p1, p2, p3 := EuclideanProjector{}.Project(c1, c2, c3, g1, g2, g3)

	for _, pair := range [][2]complex128{{g1, p1}, {g2, p2}, {g3, p3}} {
		if got, want := cmplx.Abs(pair[1]), cmplx.Abs(pair[0]); got < want-1e-9 || got > want+1e-9 {
			t.Fatalf("magnitude changed: got %v, want %v", got, want)
		}
	}
}

func TestSphericalProjectorPreservesMagnitude(t *testing.T) {
	c1 := leaf(1, 0, 1, Payload{})
	c1.pos.Z = 0
	c2 := &fakeCell{pos: Point{0, 1, 0}, weight: 1, count: 1}
	c3 := &fakeCell{pos: Point{0, 0, 1}, weight: 1, count: 1}

	g1, g2, g3 := complex(1, 2), complex(-0.5, 0.3), complex(0, -1)
	p1, p2, p3 := SphericalProjector{}.Project(c1, c2, c3, g1, g2, g3)

	for _, pair := range [][2]complex128{{g1, p1}, {g2, p2}, {g3, p3}} {
		if got, want := cmplx.Abs(pair[1]), cmplx.Abs(pair[0]); got < want-1e-9 || got > want+1e-9 {
			t.Fatalf("magnitude changed: got %v, want %v", got, want)
		}
	}
}
