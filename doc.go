// Package treecorr3 implements a three-point correlation engine for
// weighted spatial point distributions.
//
// Given one, two, or three [Field]s of spatially-indexed [Cell]s, it
// accumulates statistics over all triangles formed by triples of
// points, binned by triangle shape (d2, u, v). Rather than enumerating
// every triangle directly, it recurses over tree nodes, pruning cell
// triples that cannot contribute to any in-range bin and subdividing
// cell triples that are too coarse to commit directly.
//
// Basic usage:
//
//	params, err := treecorr3.NewParams(treecorr3.Config{
//		BinType: treecorr3.Log,
//		MinSep: 0.5, MaxSep: 20, NBins: 10, B: 0.1,
//		MinU: 0, MaxU: 1, NUBins: 10, BU: 0.1,
//		MinV: 0, MaxV: 1, NVBins: 10, BV: 0.1,
//	})
//	field := treecorr3.BuildField(points, treecorr3.EuclideanMetric{}, treecorr3.KernelCount, 16)
//	acc := treecorr3.NewAccumulator(params, treecorr3.KernelCount)
//	err = treecorr3.RunAuto(acc, field, treecorr3.EuclideanMetric{}, treecorr3.CountKernel{}, treecorr3.RunOptions{Workers: 4})
//
// The recursion, pruning predicates, split heuristics, and binning
// arithmetic are the core of this package; tree construction, metric
// implementations, and spin-2 frame projection are concrete but
// swappable collaborators living in their own files.
package treecorr3
