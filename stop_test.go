package treecorr3

import "testing"

func TestStop111StopsWhenBeyondMaxSep(t *testing.T) {
	p := smallParams(t) // MaxSep = 100
	d1, d2, d3 := 500.0, 490.0, 480.0
	stop, _ := stop111(d1*d1, d2*d2, d3*d3, 0, 0, 0, p)
	if !stop {
		t.Fatal("expected stop111 to prune a triangle far beyond maxsep")
	}
}

func TestStop111StopsWhenBelowMinSep(t *testing.T) {
	p := smallParams(t) // MinSep = 1
	d1, d2, d3 := 0.01, 0.009, 0.008
	stop, _ := stop111(d1*d1, d2*d2, d3*d3, 0, 0, 0, p)
	if !stop {
		t.Fatal("expected stop111 to prune a triangle far below minsep")
	}
}

func TestStop111DoesNotStopInRangeTriangle(t *testing.T) {
	p := smallParams(t) // sep in [1,100], u,v in [0,1]
	d1, d2, d3 := 10.0, 9.0, 4.0
	stop, d2got := stop111(d1*d1, d2*d2, d3*d3, 0, 0, 0, p)
	if stop {
		t.Fatal("expected an in-range triangle with zero cell sizes to survive stop111")
	}
	if d2got != d2 {
		t.Fatalf("returned d2 = %v, want %v", d2got, d2)
	}
}

func TestStop111StopsOnDegenerateZeroSideWithPointCells(t *testing.T) {
	p := smallParams(t)
	d1 := 10.0
	stop, _ := stop111(d1*d1, d1*d1, 0, 0, 0, 0, p)
	if !stop {
		t.Fatal("expected a degenerate zero-d3 triangle with point cells to be pruned")
	}
}
