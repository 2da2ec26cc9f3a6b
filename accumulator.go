package treecorr3

import "fmt"

// Accumulator holds the per-bin running sums THE CORE commits triangle
// contributions into (spec.md §3 "Accumulator", §4.8). All arrays share
// length Params.Ntot(); the kernel-specific zeta arrays are only
// allocated for the kernel this Accumulator was created with.
type Accumulator struct {
	params *Params
	kernel KernelKind
	coord  CoordKind

	Weight []float64
	Ntri   []float64

	MeanD1, MeanLogD1 []float64
	MeanD2, MeanLogD2 []float64
	MeanD3, MeanLogD3 []float64
	MeanU, MeanV       []float64

	// Zeta is the scalar-kernel payload (KernelScalar only).
	Zeta []float64

	// Gam0..Gam3 are the spin-2 kernel payload (KernelSpin2 only),
	// real/imag pairs per spec.md §4.9.
	Gam0r, Gam0i []float64
	Gam1r, Gam1i []float64
	Gam2r, Gam2i []float64
	Gam3r, Gam3i []float64
}

// NewAccumulator allocates a zeroed Accumulator for the given params and
// kernel.
func NewAccumulator(params *Params, kernel KernelKind) *Accumulator {
	n := params.Ntot()
	a := &Accumulator{
		params:    params,
		kernel:    kernel,
		Weight:    make([]float64, n),
		Ntri:      make([]float64, n),
		MeanD1:    make([]float64, n),
		MeanLogD1: make([]float64, n),
		MeanD2:    make([]float64, n),
		MeanLogD2: make([]float64, n),
		MeanD3:    make([]float64, n),
		MeanLogD3: make([]float64, n),
		MeanU:     make([]float64, n),
		MeanV:     make([]float64, n),
	}
	switch kernel {
	case KernelScalar:
		a.Zeta = make([]float64, n)
	case KernelSpin2:
		a.Gam0r, a.Gam0i = make([]float64, n), make([]float64, n)
		a.Gam1r, a.Gam1i = make([]float64, n), make([]float64, n)
		a.Gam2r, a.Gam2i = make([]float64, n), make([]float64, n)
		a.Gam3r, a.Gam3i = make([]float64, n), make([]float64, n)
	}
	return a
}

// Params returns the binning parameters this accumulator was built with.
func (a *Accumulator) Params() *Params { return a.params }

// Kernel returns the kernel kind this accumulator was built with.
func (a *Accumulator) Kernel() KernelKind { return a.kernel }

// Clear zeroes every array and unsets the coordinate-kind tag.
func (a *Accumulator) Clear() {
	for _, s := range a.allSlices() {
		for i := range s {
			s[i] = 0
		}
	}
	a.coord = CoordUnset
}

// Duplicate returns a new, zeroed Accumulator with identical parameters
// and kernel — used to give each parallel worker a private copy
// (spec.md §4.8, §5).
func (a *Accumulator) Duplicate() *Accumulator {
	return NewAccumulator(a.params, a.kernel)
}

// Add performs element-wise a += other, per spec.md §4.8. Both
// accumulators must share Ntot and kernel.
func (a *Accumulator) Add(other *Accumulator) error {
	if err := a.checkCompatible(other); err != nil {
		return err
	}
	dst, src := a.allSlices(), other.allSlices()
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j]
		}
	}
	return nil
}

// CopyFrom performs element-wise a = other, per spec.md §4.8.
func (a *Accumulator) CopyFrom(other *Accumulator) error {
	if err := a.checkCompatible(other); err != nil {
		return err
	}
	dst, src := a.allSlices(), other.allSlices()
	for i := range dst {
		copy(dst[i], src[i])
	}
	a.coord = other.coord
	return nil
}

func (a *Accumulator) checkCompatible(other *Accumulator) error {
	if a.params.Ntot() != other.params.Ntot() {
		return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, a.params.Ntot(), other.params.Ntot())
	}
	if a.kernel != other.kernel {
		return fmt.Errorf("%w: %v vs %v", ErrKernelMismatch, a.kernel, other.kernel)
	}
	return nil
}

// bindCoord enforces spec.md §4.2's coord-kind tag rule: the first call
// on an Accumulator sets the tag; every subsequent call must match.
func (a *Accumulator) bindCoord(c CoordKind) error {
	if a.coord == CoordUnset {
		a.coord = c
		return nil
	}
	if a.coord != c {
		return fmt.Errorf("%w: accumulator bound to %v, field is %v", ErrCoordMismatch, a.coord, c)
	}
	return nil
}

func (a *Accumulator) allSlices() [][]float64 {
	s := [][]float64{
		a.Weight, a.Ntri,
		a.MeanD1, a.MeanLogD1, a.MeanD2, a.MeanLogD2, a.MeanD3, a.MeanLogD3,
		a.MeanU, a.MeanV,
	}
	switch a.kernel {
	case KernelScalar:
		s = append(s, a.Zeta)
	case KernelSpin2:
		s = append(s, a.Gam0r, a.Gam0i, a.Gam1r, a.Gam1i, a.Gam2r, a.Gam2i, a.Gam3r, a.Gam3i)
	}
	return s
}
