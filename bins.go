package treecorr3

import (
	"fmt"
	"math"
)

// BinType selects the radial binning scheme. Log is the only value THE
// CORE supports; anything else is a contract violation (spec.md §6.4).
type BinType int

const (
	Log BinType = iota
)

// splitFactor2 is the empirical split-tolerance constant from spec.md §9:
// when c3 is split, c1/c2 are also split if s_i^2 * d2^2 exceeds this
// factor times s3^2 * d3^2. Kept fixed for reproducibility, per spec.md's
// explicit instruction — not a tunable exposed on Config.
const splitFactor2 = 0.7

// Config holds the user-facing knobs for a Params (spec.md §3
// "Parameters"). Start from reasonable field values and call NewParams;
// unlike hdbscan.Config there are no defaults to apply, since every field
// here materially changes which triangles can be binned at all.
type Config struct {
	BinType BinType

	MinSep, MaxSep float64
	NBins          int
	B              float64 // pruning/split tolerance for d2

	MinU, MaxU float64
	NUBins     int
	BU         float64 // pruning/split tolerance for u

	MinV, MaxV float64
	NVBins     int
	BV         float64 // pruning/split tolerance for v

	// Periodic box dimensions. They are stored but not read: the engine
	// takes the box from PeriodicMetric's own Xp, Yp, Zp.
	Xp, Yp, Zp float64
}

// Params is the immutable, validated, derived-constant form of Config
// that the recursion and binning arithmetic actually read.
type Params struct {
	cfg Config

	binSize, logMinSep           float64
	uBinSize, vBinSize           float64
	minSepSq, maxSepSq           float64
	minUSq, maxUSq               float64
	minVSq, maxVSq               float64
	bSq, buSq, bvSq              float64
	sqrtTwoBV                    float64
	halfMinSep, halfMinD3        float64
	nvBins2, nuv, ntot           int
}

// NewParams validates cfg and precomputes the derived constants spec.md
// §3 lists (logminsep, halfminsep, halfmind3, squared thresholds, ...).
// Grounded on hdbscan.go's validateConfig: fail fast with a descriptive
// *fmt.Errorf* rather than panicking or silently clamping.
func NewParams(cfg Config) (*Params, error) {
	if cfg.BinType != Log {
		return nil, fmt.Errorf("treecorr3: %w: BinType %v", ErrUnsupportedBinType, cfg.BinType)
	}
	if cfg.MinSep <= 0 || cfg.MaxSep <= cfg.MinSep {
		return nil, fmt.Errorf("treecorr3: invalid separation range [%g, %g)", cfg.MinSep, cfg.MaxSep)
	}
	if cfg.NBins < 1 {
		return nil, fmt.Errorf("treecorr3: NBins must be >= 1, got %d", cfg.NBins)
	}
	if cfg.MinU < 0 || cfg.MaxU > 1 || cfg.MaxU <= cfg.MinU {
		return nil, fmt.Errorf("treecorr3: invalid u range [%g, %g)", cfg.MinU, cfg.MaxU)
	}
	if cfg.NUBins < 1 {
		return nil, fmt.Errorf("treecorr3: NUBins must be >= 1, got %d", cfg.NUBins)
	}
	if cfg.MinV < 0 || cfg.MaxV > 1 || cfg.MaxV <= cfg.MinV {
		return nil, fmt.Errorf("treecorr3: invalid v range [%g, %g)", cfg.MinV, cfg.MaxV)
	}
	if cfg.NVBins < 1 {
		return nil, fmt.Errorf("treecorr3: NVBins must be >= 1, got %d", cfg.NVBins)
	}
	if cfg.B <= 0 || cfg.BU <= 0 || cfg.BV <= 0 {
		return nil, fmt.Errorf("treecorr3: b, bu, bv must all be > 0")
	}

	p := &Params{cfg: cfg}
	p.logMinSep = math.Log(cfg.MinSep)
	p.binSize = (math.Log(cfg.MaxSep) - p.logMinSep) / float64(cfg.NBins)
	p.uBinSize = (cfg.MaxU - cfg.MinU) / float64(cfg.NUBins)
	p.vBinSize = (cfg.MaxV - cfg.MinV) / float64(cfg.NVBins)

	p.minSepSq = cfg.MinSep * cfg.MinSep
	p.maxSepSq = cfg.MaxSep * cfg.MaxSep
	p.minUSq = cfg.MinU * cfg.MinU
	p.maxUSq = cfg.MaxU * cfg.MaxU
	p.minVSq = cfg.MinV * cfg.MinV
	p.maxVSq = cfg.MaxV * cfg.MaxV
	p.bSq = cfg.B * cfg.B
	p.buSq = cfg.BU * cfg.BU
	p.bvSq = cfg.BV * cfg.BV
	p.sqrtTwoBV = math.Sqrt(2 * cfg.BV)

	p.halfMinSep = 0.5 * cfg.MinSep
	p.halfMinD3 = 0.5 * cfg.MinSep * cfg.MinU

	p.nvBins2 = cfg.NVBins * 2
	p.nuv = cfg.NUBins * p.nvBins2
	p.ntot = cfg.NBins * p.nuv

	return p, nil
}

// Ntot returns the total number of flat bins (kr, ku, kv) index into.
func (p *Params) Ntot() int { return p.ntot }

// NBins, NUBins, NVBins expose the per-axis bin counts.
func (p *Params) NBins() int  { return p.cfg.NBins }
func (p *Params) NUBins() int { return p.cfg.NUBins }
func (p *Params) NVBins() int { return p.cfg.NVBins }

// Index returns the flat index for a given (kr, ku, kv) triple, per
// spec.md §3's "Flat index" formula.
func (p *Params) Index(kr, ku, kv int) int {
	return kr*p.nuv + ku*p.nvBins2 + kv
}
