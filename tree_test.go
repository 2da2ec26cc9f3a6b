package treecorr3

import "testing"

func TestBuildFieldEmptyInput(t *testing.T) {
	f := BuildField(nil, EuclideanMetric{}, KernelCount, 4)
	if len(f.Top) != 0 {
		t.Fatalf("expected no top-level cells for an empty input, got %d", len(f.Top))
	}
}

func TestBuildFieldSingleLeaf(t *testing.T) {
	pts := []PointData{{Pos: Point{X: 1, Y: 2}, W: 1}}
	f := BuildField(pts, EuclideanMetric{}, KernelCount, 4)
	if len(f.Top) != 1 {
		t.Fatalf("expected one top-level cell, got %d", len(f.Top))
	}
	root := f.Top[0]
	if root.Left() != nil || root.Right() != nil {
		t.Fatal("a single-point field should build a leaf, not an internal node")
	}
	if root.Weight() != 1 || root.Count() != 1 {
		t.Fatalf("leaf weight/count = %v/%v, want 1/1", root.Weight(), root.Count())
	}
}

func TestBuildFieldBoundingRadiusContainsAllPoints(t *testing.T) {
	pts := []PointData{
		{Pos: Point{X: 0, Y: 0}, W: 1},
		{Pos: Point{X: 10, Y: 0}, W: 1},
		{Pos: Point{X: 0, Y: 10}, W: 1},
		{Pos: Point{X: -5, Y: -5}, W: 1},
	}
	f := BuildField(pts, EuclideanMetric{}, KernelCount, 1)
	root := f.Top[0]
	for _, pt := range pts {
		if d := dist(root.Pos(), pt.Pos); d > root.Size()+1e-9 {
			t.Fatalf("point %v at distance %v exceeds root size %v", pt.Pos, d, root.Size())
		}
	}
}

func TestBuildFieldWeightAndCountAggregate(t *testing.T) {
	pts := []PointData{
		{Pos: Point{X: 0, Y: 0}, W: 2},
		{Pos: Point{X: 1, Y: 0}, W: 3},
	}
	f := BuildField(pts, EuclideanMetric{}, KernelCount, 1)
	root := f.Top[0]
	if root.Weight() != 5 {
		t.Fatalf("Weight() = %v, want 5", root.Weight())
	}
	if root.Count() != 2 {
		t.Fatalf("Count() = %v, want 2", root.Count())
	}
}

func TestBuildFieldArcMetricMarksSphereCoord(t *testing.T) {
	pts := []PointData{{Pos: Point{X: 1, Y: 0, Z: 0}, W: 1}}
	f := BuildField(pts, ArcMetric{}, KernelCount, 4)
	if f.Coord != CoordSphere {
		t.Fatalf("Coord = %v, want CoordSphere", f.Coord)
	}
}

func TestBuildFieldScalarPayloadAggregates(t *testing.T) {
	pts := []PointData{
		{Pos: Point{X: 0, Y: 0}, W: 2, K: 3},
		{Pos: Point{X: 1, Y: 0}, W: 1, K: -1},
	}
	f := BuildField(pts, EuclideanMetric{}, KernelScalar, 1)
	root := f.Top[0]
	if want := 2.0*3 + 1.0*-1; root.Data().WK != want {
		t.Fatalf("Data().WK = %v, want %v", root.Data().WK, want)
	}
}
