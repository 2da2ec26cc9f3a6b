package treecorr3

import "math/cmplx"

// Kernel commits one binned triangle's field contribution into an
// Accumulator's kernel-specific payload arrays (spec.md §4.9). The
// count/weight/mean-distance bookkeeping that is common to every
// kernel lives in finishProcess; Kernel only owns the part that
// differs: what, if anything, goes into the zeta/gamma arrays.
type Kernel interface {
	Kind() KernelKind
	Commit(acc *Accumulator, index int, c1, c2, c3 Cell)
}

// CountKernel accumulates triangle counts only; no payload to commit.
type CountKernel struct{}

func (CountKernel) Kind() KernelKind { return KernelCount }

func (CountKernel) Commit(acc *Accumulator, index int, c1, c2, c3 Cell) {}

// ScalarKernel accumulates the product of three weighted scalar field
// values, matching the reference engine's K-data DirectHelper:
// zeta[index] += wk1*wk2*wk3.
type ScalarKernel struct{}

func (ScalarKernel) Kind() KernelKind { return KernelScalar }

func (ScalarKernel) Commit(acc *Accumulator, index int, c1, c2, c3 Cell) {
	wk1, wk2, wk3 := c1.Data().WK, c2.Data().WK, c3.Data().WK
	acc.Zeta[index] += wk1 * wk2 * wk3
}

// Spin2Kernel accumulates the four natural spin-2 products gamma0..
// gamma3, after rotating each cell's weighted shear into a common
// frame via Project. Project acts linearly on a complex number, so
// projecting the weighted sum w*g is equivalent to projecting g and
// scaling by w, which is what lets this operate directly on cell
// totals instead of requiring per-point rotation.
type Spin2Kernel struct {
	Project Projector
}

func (Spin2Kernel) Kind() KernelKind { return KernelSpin2 }

func (k Spin2Kernel) Commit(acc *Accumulator, index int, c1, c2, c3 Cell) {
	wg1, wg2, wg3 := c1.Data().WG, c2.Data().WG, c3.Data().WG
	wg1, wg2, wg3 = k.Project.Project(c1, c2, c3, wg1, wg2, wg3)

	gamma0 := wg1 * wg2 * wg3
	gamma1 := cmplx.Conj(wg1) * wg2 * wg3
	gamma2 := wg1 * cmplx.Conj(wg2) * wg3
	gamma3 := wg1 * wg2 * cmplx.Conj(wg3)

	acc.Gam0r[index] += real(gamma0)
	acc.Gam0i[index] += imag(gamma0)
	acc.Gam1r[index] += real(gamma1)
	acc.Gam1i[index] += imag(gamma1)
	acc.Gam2r[index] += real(gamma2)
	acc.Gam2i[index] += imag(gamma2)
	acc.Gam3r[index] += real(gamma3)
	acc.Gam3i[index] += imag(gamma3)
}
