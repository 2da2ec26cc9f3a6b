package treecorr3

import (
	"log/slog"
	"math"
)

// permutation indices into SixAccumulators.Acc, one per assignment of
// the three input cells to the sorted roles (d1 >= d2 >= d3). Naming
// follows which original cell plays which role, e.g. perm231 means
// role a = original c2, role b = original c3, role c = original c1.
const (
	perm123 = iota
	perm132
	perm213
	perm231
	perm312
	perm321
)

// SixAccumulators bundles the six sibling accumulators a three-field
// cross correlation needs, one per assignment of inputs to sorted
// roles (spec.md §4.6). An auto correlation (RunAuto) only needs one
// of them populated at a time per unique triangle, but which one
// depends on the sorted order of the cells' pairwise distances at
// commit time, not just their labels, so all six must stay reachable
// throughout the recursion.
type SixAccumulators struct {
	Acc [6]*Accumulator
}

// NewSixAccumulators allocates six independent Accumulators sharing
// params and kernel.
func NewSixAccumulators(params *Params, kernel KernelKind) *SixAccumulators {
	s := &SixAccumulators{}
	for i := range s.Acc {
		s.Acc[i] = NewAccumulator(params, kernel)
	}
	return s
}

// Sum adds every permutation accumulator into dst, in place.
func (s *SixAccumulators) Sum(dst *Accumulator) error {
	for _, a := range s.Acc {
		if err := dst.Add(a); err != nil {
			return err
		}
	}
	return nil
}

func children(c Cell) (Cell, Cell, error) {
	l, r := c.Left(), c.Right()
	if l == nil || r == nil {
		return nil, nil, ErrStructuralViolation
	}
	return l, r, nil
}

// process3 recurses a single cell down to the point where process12
// can pair it against itself, skipping subtrees too small to ever
// reach minsep (spec.md §4.4).
func process3(six *SixAccumulators, kernel Kernel, c1 Cell, metric Metric, params *Params) error {
	if c1.Weight() == 0 || c1.Size() < params.halfMinSep {
		return nil
	}
	l, r, err := children(c1)
	if err != nil {
		// c1 is a leaf; process12 against itself below covers it.
		return process12(six, kernel, c1, c1, metric, params)
	}
	if err := process3(six, kernel, l, metric, params); err != nil {
		return err
	}
	if err := process3(six, kernel, r, metric, params); err != nil {
		return err
	}
	if err := process12(six, kernel, l, r, metric, params); err != nil {
		return err
	}
	return process12(six, kernel, r, l, metric, params)
}

// process12 covers triangles with one point in c1 and two in c2
// (spec.md §4.4): it splits c2, recurses into each child, and pairs the
// two children with c1 through process111. A leaf c2 of nonzero size is
// passed to process111 as both the second and the third cell.
func process12(six *SixAccumulators, kernel Kernel, c1, c2 Cell, metric Metric, params *Params) error {
	if c1.Weight() == 0 || c2.Weight() == 0 || c2.Size() == 0 {
		return nil
	}
	if c2.Size() < params.halfMinD3 {
		return nil
	}
	d3sq := metric.DistSq(c1.Pos(), c2.Pos(), c1.Size(), c2.Size())
	d3 := math.Sqrt(d3sq)
	if d3+c1.Size()+2*c2.Size() < params.cfg.MinSep {
		return nil
	}
	if d3-c1.Size()-2*c2.Size() > params.cfg.MaxSep {
		return nil
	}

	l, r, err := children(c2)
	if err != nil {
		return process111(six, kernel, c1, c2, c2, metric, params)
	}
	if err := process12(six, kernel, c1, l, metric, params); err != nil {
		return err
	}
	if err := process12(six, kernel, c1, r, metric, params); err != nil {
		return err
	}
	return process111(six, kernel, c1, l, r, metric, params)
}

// process111 takes three arbitrary (unsorted) cells, sorts their
// pairwise distances into the d1 >= d2 >= d3 convention, picks the
// matching sibling accumulator, and hands off to process111Sorted
// (spec.md §4.6).
func process111(six *SixAccumulators, kernel Kernel, c1, c2, c3 Cell, metric Metric, params *Params) error {
	if c1.Weight() == 0 || c2.Weight() == 0 || c3.Weight() == 0 {
		return nil
	}

	d1sq := metric.DistSq(c2.Pos(), c3.Pos(), c2.Size(), c3.Size())
	d2sq := metric.DistSq(c1.Pos(), c3.Pos(), c1.Size(), c3.Size())
	d3sq := metric.DistSq(c1.Pos(), c2.Pos(), c1.Size(), c2.Size())

	var a, b, c Cell
	var sd1sq, sd2sq, sd3sq float64
	var accIdx int

	switch {
	case d1sq >= d2sq && d1sq >= d3sq:
		a, sd1sq = c1, d1sq
		if d2sq >= d3sq {
			b, c, sd2sq, sd3sq, accIdx = c2, c3, d2sq, d3sq, perm123
		} else {
			b, c, sd2sq, sd3sq, accIdx = c3, c2, d3sq, d2sq, perm132
		}
	case d2sq >= d1sq && d2sq >= d3sq:
		a, sd1sq = c2, d2sq
		if d1sq >= d3sq {
			b, c, sd2sq, sd3sq, accIdx = c1, c3, d1sq, d3sq, perm213
		} else {
			b, c, sd2sq, sd3sq, accIdx = c3, c1, d3sq, d1sq, perm231
		}
	default:
		a, sd1sq = c3, d3sq
		if d2sq >= d1sq {
			b, c, sd2sq, sd3sq, accIdx = c2, c1, d2sq, d1sq, perm321
		} else {
			b, c, sd2sq, sd3sq, accIdx = c1, c2, d1sq, d2sq, perm312
		}
	}

	return process111Sorted(six, kernel, a, b, c, sd1sq, sd2sq, sd3sq, accIdx, metric, params)
}

// process111Sorted is the workhorse of the recursion: given cells
// already assigned to roles a, b, c with d1 >= d2 >= d3 (d1=dist(b,c),
// d2=dist(a,c), d3=dist(a,b)), it prunes via stop111, decides whether
// to split via decideSplit, recurses into children, or commits the
// triangle into the matching sibling accumulator (spec.md §4.5-4.7).
func process111Sorted(six *SixAccumulators, kernel Kernel, a, b, c Cell, d1sq, d2sq, d3sq float64, accIdx int, metric Metric, params *Params) error {
	s1, s2, s3 := a.Size(), b.Size(), c.Size()

	stop, d2 := stop111(d1sq, d2sq, d3sq, s1, s2, s3, params)
	if stop {
		return nil
	}

	d1, d3 := math.Sqrt(d1sq), math.Sqrt(d3sq)
	u := d3 / d2
	vRaw := (d1 - d2) / d3

	split1, split2, split3 := decideSplit(d1sq, d2sq, d3sq, d2, u, vRaw, s1, s2, s3, params)

	if split1 || split2 || split3 {
		as, err := splitChoices(a, split1)
		if err != nil {
			return err
		}
		bs, err := splitChoices(b, split2)
		if err != nil {
			return err
		}
		cs, err := splitChoices(c, split3)
		if err != nil {
			return err
		}
		// The children are passed on in this call's sorted (a, b, c)
		// order, so re-index the six accumulators by accIdx to keep the
		// routing relative to this call's own c1, c2, c3.
		order := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		sub := &SixAccumulators{}
		for p, rho := range order {
			composed := [3]int{order[accIdx][rho[0]], order[accIdx][rho[1]], order[accIdx][rho[2]]}
			for q, pi := range order {
				if pi == composed {
					sub.Acc[p] = six.Acc[q]
				}
			}
		}
		for _, ai := range as {
			for _, bi := range bs {
				for _, ci := range cs {
					if err := process111(sub, kernel, ai, bi, ci, metric, params); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	if d2 < params.cfg.MinSep || d2 >= params.cfg.MaxSep {
		return nil
	}
	// u and |v| never exceed 1, so a range ending at exactly 1 keeps the
	// value 1 itself; clampBin then places it in the last bin.
	if u < params.cfg.MinU || (u >= params.cfg.MaxU && !(u == 1 && params.cfg.MaxU == 1)) {
		return nil
	}
	if vRaw < params.cfg.MinV || (vRaw >= params.cfg.MaxV && !(vRaw == 1 && params.cfg.MaxV == 1)) {
		return nil
	}

	ccw := metric.CCW(a.Pos(), b.Pos(), c.Pos())
	v := vRaw
	if !ccw {
		v = -vRaw
	}

	kr := clampBin(int(math.Floor((math.Log(d2)-params.logMinSep)/params.binSize)), params.cfg.NBins)
	ku := clampBin(int(math.Floor((u-params.cfg.MinU)/params.uBinSize)), params.cfg.NUBins)
	kvBase := clampBin(int(math.Floor((vRaw-params.cfg.MinV)/params.vBinSize)), params.cfg.NVBins)
	if kr < 0 || ku < 0 || kvBase < 0 {
		return nil
	}

	var kv int
	if ccw {
		kv = kvBase + params.cfg.NVBins
	} else {
		kv = params.cfg.NVBins - 1 - kvBase
	}

	index := params.Index(kr, ku, kv)
	if index < 0 || index >= params.Ntot() {
		slog.Warn("treecorr3: computed bin index out of range, dropping triangle",
			"index", index, "ntot", params.Ntot(), "kr", kr, "ku", ku, "kv", kv)
		return nil
	}

	finishProcess(six.Acc[accIdx], kernel, a, b, c, d1, d2, d3, u, v, index)
	return nil
}

// splitChoices returns the cells to recurse into for one vertex: the
// cell itself if it isn't being split, or its two children if it is.
func splitChoices(c Cell, split bool) ([]Cell, error) {
	if !split {
		return []Cell{c}, nil
	}
	l, r, err := children(c)
	if err != nil {
		return nil, err
	}
	return []Cell{l, r}, nil
}

// clampBin guards against a bin index landing one step outside
// [0, n) purely from floating-point rounding at a range boundary; any
// larger excursion is treated as genuinely out of range.
func clampBin(k, n int) int {
	if k == -1 {
		return 0
	}
	if k == n {
		return n - 1
	}
	if k < 0 || k >= n {
		return -1
	}
	return k
}
