package treecorr3

import "math"

// stop111 decides whether a (c1, c2, c3) triple, with known pairwise
// squared center-to-center distances d1sq >= d2sq >= d3sq (d1 opposite
// c1, i.e. d1=dist(c2,c3), d2=dist(c1,c3), d3=dist(c1,c2)) and cell sizes
// s1, s2, s3, can be pruned outright: no choice of points inside the
// three cells could possibly land inside the (sep, u, v) bin ranges of
// Params, so recursing further is wasted work (spec.md §4.6, §9).
//
// The decision is conservative: it only reports stop=true when the bin
// ranges are provably unreachable given the cells' bounding radii. It
// never stops a triple that might still contribute.
func stop111(d1sq, d2sq, d3sq float64, s1, s2, s3 float64, p *Params) (stop bool, d2 float64) {
	cfg := &p.cfg

	// d2 cannot reach minsep: both the (1,3) and (1,2) pair need room to
	// shrink by their combined sizes and still miss minsep.
	if d2sq < p.minSepSq && s1+s3 < cfg.MinSep && s1+s2 < cfg.MinSep &&
		(s1+s3 == 0 || d2sq < sqr(cfg.MinSep-s1-s3)) &&
		(s1+s2 == 0 || d3sq < sqr(cfg.MinSep-s1-s2)) {
		return true, math.Sqrt(d2sq)
	}

	// d2 cannot shrink to maxsep: neither the (1,3) pair growing nor d1
	// (the (2,3) pair) growing can bring it back down.
	if d2sq >= p.maxSepSq &&
		(s1+s3 == 0 || d2sq >= sqr(cfg.MaxSep+s1+s3)) &&
		(s2+s3 == 0 || d1sq >= sqr(cfg.MaxSep+s2+s3)) {
		return true, math.Sqrt(d2sq)
	}

	d2 = math.Sqrt(d2sq)

	// u cannot reach minu: the largest possible u, (d3+s1+s2)/(d2-s1-s3),
	// already falls short, and swapping d1/d2's roles doesn't save it.
	if cfg.MinU > 0 && d3sq < p.minUSq*d2sq && d2 > s1+s3 {
		temp := cfg.MinU * (d2 - s1 - s3)
		if temp > s1+s2 && d3sq < sqr(temp-s1-s2) {
			minUSqD1sq := p.minUSq * d1sq
			if d3sq < minUSqD1sq && d1sq > 2*sqr(s2+s3) &&
				minUSqD1sq > 2*d3sq+2*sqr(s1+s2+cfg.MinU*(s2+s3)) {
				return true, d2
			}
		}
	}

	// u cannot fall below maxu: the smallest possible u,
	// (d3-s1-s2)/(d2+s1+s3), is already too large, and no other side
	// could take over the smallest-side role instead.
	if cfg.MaxU < 1 && d3sq >= p.maxUSq*d2sq && d3sq >= sqr(cfg.MaxU*(d2+s1+s3)+s1+s2) {
		if d2sq > sqr(s1+s3) && d1sq > sqr(s2+s3) &&
			(s2 > s3 || d3sq <= sqr(d2-s3+s2)) &&
			(s1 > s3 || d1sq >= 2*d3sq+2*sqr(s3-s1)) {
			return true, d2
		}
	}

	sums := s1 + s2 + s3

	// |v| cannot reach below maxv: d1 is already too large relative to
	// d2 for any inflation to bring v back under maxv.
	if cfg.MaxV < 1 && d1sq > sqr((1+cfg.MaxV)*d2+sums+cfg.MaxV*(s1+s2)) {
		return true, d2
	}

	// |v| cannot reach minv: d1-d2 is too small relative to d3 even
	// after expanding by the cells' sizes.
	if cfg.MinV > 0 && d3sq > sqr(s1+s2) &&
		p.minVSq*d3sq > sqr((d1sq-d2sq)/(2*d2)+sums+cfg.MinV*(s1+s2)) {
		return true, d2
	}

	// Degenerate triangles: a side is exactly zero and both cells that
	// define it are points. No split can move that side off zero, and
	// u/v would divide by it, so give up rather than recurse forever.
	if s2 == 0 && s3 == 0 && d1sq == 0 {
		return true, d2
	}
	if s1 == 0 && s3 == 0 && d2sq == 0 {
		return true, d2
	}
	if s1 == 0 && s2 == 0 && d3sq == 0 {
		return true, d2
	}

	return false, d2
}

func sqr(x float64) float64 { return x * x }
