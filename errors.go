package treecorr3

import "errors"

// Sentinel errors for THE CORE's contract violations (spec.md §7). None
// of these are recoverable by the core; callers that hit one have broken
// an invariant, not encountered an expected runtime condition.
var (
	// ErrShapeMismatch covers Accumulator.Ntot mismatches between two
	// accumulators being added/copied.
	ErrShapeMismatch = errors.New("treecorr3: accumulator shape mismatch")

	// ErrCoordMismatch is returned when a Field's CoordKind disagrees
	// with an Accumulator's already-bound coordinate kind.
	ErrCoordMismatch = errors.New("treecorr3: coordinate kind mismatch")

	// ErrUnsupportedBinType is returned by NewParams for any BinType
	// other than Log (spec.md §6.4).
	ErrUnsupportedBinType = errors.New("treecorr3: unsupported bin type")

	// ErrStructuralViolation is returned when a cell the split heuristic
	// asked to subdivide has no children (spec.md §7).
	ErrStructuralViolation = errors.New("treecorr3: cell missing child during split")

	// ErrKernelMismatch is returned when two accumulators being
	// added/copied were built for different kernels.
	ErrKernelMismatch = errors.New("treecorr3: kernel kind mismatch")
)
