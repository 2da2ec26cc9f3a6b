package treecorr3

import "testing"

func baseConfig() Config {
	return Config{
		BinType: Log,
		MinSep:  1, MaxSep: 100, NBins: 5, B: 0.1,
		MinU: 0, MaxU: 1, NUBins: 3, BU: 0.1,
		MinV: 0, MaxV: 1, NVBins: 4, BV: 0.1,
	}
}

func TestNewParamsValid(t *testing.T) {
	p, err := NewParams(baseConfig())
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	if p.NBins() != 5 || p.NUBins() != 3 || p.NVBins() != 4 {
		t.Fatalf("unexpected bin counts: %d %d %d", p.NBins(), p.NUBins(), p.NVBins())
	}
	if want := 5 * 3 * 8; p.Ntot() != want {
		t.Fatalf("Ntot() = %d, want %d", p.Ntot(), want)
	}
}

func TestNewParamsRejectsBadBinType(t *testing.T) {
	cfg := baseConfig()
	cfg.BinType = BinType(99)
	if _, err := NewParams(cfg); err == nil {
		t.Fatal("expected error for unsupported bin type")
	}
}

func TestNewParamsRejectsInvertedSepRange(t *testing.T) {
	cfg := baseConfig()
	cfg.MinSep, cfg.MaxSep = 10, 1
	if _, err := NewParams(cfg); err == nil {
		t.Fatal("expected error for inverted separation range")
	}
}

func TestIndexIsInjectiveAcrossRange(t *testing.T) {
	p, err := NewParams(baseConfig())
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	seen := make(map[int]bool)
	for kr := 0; kr < p.NBins(); kr++ {
		for ku := 0; ku < p.NUBins(); ku++ {
			for kv := 0; kv < 2*p.NVBins(); kv++ {
				idx := p.Index(kr, ku, kv)
				if idx < 0 || idx >= p.Ntot() {
					t.Fatalf("Index(%d,%d,%d) = %d out of [0,%d)", kr, ku, kv, idx, p.Ntot())
				}
				if seen[idx] {
					t.Fatalf("Index(%d,%d,%d) = %d collides with a prior triple", kr, ku, kv, idx)
				}
				seen[idx] = true
			}
		}
	}
}
