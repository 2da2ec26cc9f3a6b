package treecorr3

import "math"

// finishProcess records one binned triangle into acc (spec.md §4.7).
// By the time this is called, (c1, c2, c3, index) has already passed
// every stop/split/range check: the triangle contributes n1*n2*n3
// point-triples, weighted by www = w1*w2*w3, to bin index.
func finishProcess(acc *Accumulator, kernel Kernel, c1, c2, c3 Cell, d1, d2, d3, u, v float64, index int) {
	n1, n2, n3 := c1.Count(), c2.Count(), c3.Count()
	w1, w2, w3 := c1.Weight(), c2.Weight(), c3.Weight()
	www := w1 * w2 * w3

	acc.Ntri[index] += float64(n1 * n2 * n3)
	acc.Weight[index] += www

	acc.MeanD1[index] += www * d1
	acc.MeanLogD1[index] += www * math.Log(d1)
	acc.MeanD2[index] += www * d2
	acc.MeanLogD2[index] += www * math.Log(d2)
	acc.MeanD3[index] += www * d3
	acc.MeanLogD3[index] += www * math.Log(d3)
	acc.MeanU[index] += www * u
	acc.MeanV[index] += www * v

	kernel.Commit(acc, index, c1, c2, c3)
}
