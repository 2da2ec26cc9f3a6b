package treecorr3

// decideSplit decides which of c1, c2, c3 must be subdivided before a
// (d1, d2, d3, u, v) triple can be safely binned, given the cells'
// sizes s1, s2, s3 (spec.md §4.5, §9). It mirrors the two-stage
// decision in the reference engine: first decide whether c3 needs
// splitting at all (split3), since c3's size enters the u and v
// tolerances most directly; then decide c1/c2 by comparing their size
// contribution against c3's under splitFactor2, or failing that against
// the plain angular/radial tolerances.
func decideSplit(d1sq, d2sq, d3sq, d2, u, v, s1, s2, s3 float64, p *Params) (split1, split2, split3 bool) {
	b, bu, bv := p.cfg.B, p.cfg.BU, p.cfg.BV

	s1ps3 := s1 + s3
	d2split := false

	split3 = s3 > 0 && (s3 > d2*b ||
		(s1ps3 > d2*b && s3 >= s1 && setTrue(&d2split)) ||
		(bu < b && s3*s3*d3sq > bu*bu*d2sq) ||
		(bv < b && s3 > d2*bv))

	switch {
	case split3:
		temp := splitFactor2 * s3 * s3 * d3sq
		split1 = s1*s1*d2sq > temp
		split2 = s2*s2*d2sq > temp

	case s1 > 0 || s2 > 0:
		split1 = s1 > 0 && d2split
		split1 = split1 || (s1 > 0 && s1*s1 > d3sq)

		split2 = s2 > 0 && (s2*s2 > d3sq ||
			(s2 > s3 && d3sq > (d2-s2+s3)*(d2-s2+s3)) ||
			(s2 > s1 && d1sq < (d2+s2-s1)*(d2+s2-s1)))

		s1ps2 := s1 + s2
		uTerm := s1ps2 + s1ps3*u
		vTerm := s1ps2 * (1 + v)
		split := split1 || split2 ||
			uTerm*uTerm > d2sq*p.buSq ||
			vTerm*vTerm > d3sq*p.bvSq

		if split {
			split1 = split1 || s1 >= s2
			split2 = split2 || s2 >= s1
		}
	}

	return split1, split2, split3
}

// setTrue always returns true after assigning true to *b, used inline
// to keep the split3 short-circuit chain on one expression like the
// reference condition it mirrors.
func setTrue(b *bool) bool {
	*b = true
	return true
}
