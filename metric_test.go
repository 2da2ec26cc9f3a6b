package treecorr3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEuclideanMetricDistSq(t *testing.T) {
	m := EuclideanMetric{}
	got := m.DistSq(Point{0, 0, 0}, Point{3, 4, 0}, 0, 0)
	if got != 25 {
		t.Fatalf("DistSq = %v, want 25", got)
	}
}

func TestEuclideanMetricCCW(t *testing.T) {
	m := EuclideanMetric{}
	if !m.CCW(Point{0, 0, 0}, Point{1, 0, 0}, Point{0, 1, 0}) {
		t.Fatal("expected CCW triangle to report true")
	}
	if m.CCW(Point{0, 0, 0}, Point{0, 1, 0}, Point{1, 0, 0}) {
		t.Fatal("expected CW triangle to report false")
	}
}

func TestPeriodicMetricWrapsAroundBox(t *testing.T) {
	m := PeriodicMetric{Xp: 10, Yp: 10}
	got := m.DistSq(Point{0.5, 0, 0}, Point{9.5, 0, 0}, 0, 0)
	if !scalar.EqualWithinAbs(got, 1, 1e-9) {
		t.Fatalf("DistSq across wraparound = %v, want 1", got)
	}
}

func TestPeriodicMetricNonPeriodicAxisIsPlain(t *testing.T) {
	m := PeriodicMetric{Xp: 10}
	got := m.DistSq(Point{0, 0, 0}, Point{0, 100, 0}, 0, 0)
	if got != 10000 {
		t.Fatalf("DistSq on non-periodic axis = %v, want 10000", got)
	}
}

func TestArcMetricDistSqZeroForSamePoint(t *testing.T) {
	m := ArcMetric{}
	p := Point{1, 0, 0}
	if got := m.DistSq(p, p, 0, 0); got != 0 {
		t.Fatalf("DistSq(p, p) = %v, want 0", got)
	}
}

func TestArcMetricDistSqOrthogonalPoints(t *testing.T) {
	m := ArcMetric{}
	// Orthogonal unit vectors are sqrt(2) apart in chord space, so the
	// squared chord distance is exactly 2.
	got := m.DistSq(Point{1, 0, 0}, Point{0, 1, 0}, 0, 0)
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("DistSq(orthogonal) = %v, want 2", got)
	}
}
