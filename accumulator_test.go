package treecorr3

import "testing"

func smallParams(t *testing.T) *Params {
	t.Helper()
	p, err := NewParams(baseConfig())
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	return p
}

func TestAccumulatorClear(t *testing.T) {
	p := smallParams(t)
	a := NewAccumulator(p, KernelScalar)
	a.Weight[0] = 5
	a.Zeta[0] = 2
	a.coord = CoordFlat

	a.Clear()

	if a.Weight[0] != 0 || a.Zeta[0] != 0 {
		t.Fatal("Clear left nonzero values behind")
	}
	if a.coord != CoordUnset {
		t.Fatal("Clear did not unset the coord tag")
	}
}

func TestAccumulatorAdd(t *testing.T) {
	p := smallParams(t)
	a := NewAccumulator(p, KernelCount)
	b := NewAccumulator(p, KernelCount)
	a.Weight[3] = 1
	b.Weight[3] = 2
	b.Ntri[3] = 4

	if err := a.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Weight[3] != 3 {
		t.Fatalf("Weight[3] = %v, want 3", a.Weight[3])
	}
	if a.Ntri[3] != 4 {
		t.Fatalf("Ntri[3] = %v, want 4", a.Ntri[3])
	}
}

func TestAccumulatorAddRejectsKernelMismatch(t *testing.T) {
	p := smallParams(t)
	a := NewAccumulator(p, KernelCount)
	b := NewAccumulator(p, KernelScalar)
	if err := a.Add(b); err == nil {
		t.Fatal("expected kernel mismatch error")
	}
}

func TestAccumulatorAddRejectsShapeMismatch(t *testing.T) {
	p1 := smallParams(t)
	cfg2 := baseConfig()
	cfg2.NBins = 7
	p2, err := NewParams(cfg2)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	a := NewAccumulator(p1, KernelCount)
	b := NewAccumulator(p2, KernelCount)
	if err := a.Add(b); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestAccumulatorDuplicateIsIndependentAndZeroed(t *testing.T) {
	p := smallParams(t)
	a := NewAccumulator(p, KernelScalar)
	a.Zeta[0] = 9

	dup := a.Duplicate()
	if dup.Zeta[0] != 0 {
		t.Fatal("Duplicate should start zeroed")
	}
	dup.Zeta[0] = 1
	if a.Zeta[0] != 9 {
		t.Fatal("Duplicate shares backing storage with the original")
	}
}

func TestAccumulatorBindCoordEnforcesConsistency(t *testing.T) {
	p := smallParams(t)
	a := NewAccumulator(p, KernelCount)
	if err := a.bindCoord(CoordFlat); err != nil {
		t.Fatalf("first bindCoord: %v", err)
	}
	if err := a.bindCoord(CoordFlat); err != nil {
		t.Fatalf("matching bindCoord: %v", err)
	}
	if err := a.bindCoord(CoordSphere); err == nil {
		t.Fatal("expected coord mismatch error")
	}
}
