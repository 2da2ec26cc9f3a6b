package treecorr3

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

// RunOptions controls the parallel execution of a correlation run
// (spec.md §5). The zero value runs with GOMAXPROCS workers and no
// progress logging.
type RunOptions struct {
	// Workers caps the number of goroutines processing top-level
	// cells concurrently. Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
	// Dots logs a debug line per top-level cell processed, the way
	// the reference engine prints a progress dot per outer-loop step.
	Dots bool
}

func (o RunOptions) workerCount(n int) int {
	w := o.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Duplicate returns a fresh SixAccumulators sharing params and kernel
// with s, used to give each parallel worker a private set of
// accumulators (spec.md §5).
func (s *SixAccumulators) Duplicate() *SixAccumulators {
	out := &SixAccumulators{}
	for i, a := range s.Acc {
		out.Acc[i] = a.Duplicate()
	}
	return out
}

// runParallel partitions the n outer-loop units of work across
// o.workerCount(n) goroutines, each given its own SixAccumulators
// duplicate, and reduces every worker's results into result once all
// have finished. Grounded on the reference engine's OpenMP
// parallel-for-over-top-cells pattern: dynamic work assignment via a
// shared index channel, private per-thread accumulators, a single
// critical-section reduction at the end.
func runParallel(n int, result *SixAccumulators, opts RunOptions, work func(i int, local *SixAccumulators) error) error {
	if n == 0 {
		return nil
	}
	workers := opts.workerCount(n)

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := result.Duplicate()
			for i := range indices {
				if opts.Dots {
					slog.Debug("treecorr3: processing top-level cell", "index", i)
				}
				if err := work(i, local); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
			}
			mu.Lock()
			for k, acc := range result.Acc {
				acc.Add(local.Acc[k])
			}
			mu.Unlock()
		}()
	}

	wg.Wait()
	return firstErr
}

// RunAuto computes the auto three-point correlation of field, writing
// the result into acc (spec.md §4.1, §5). Internally it enumerates
// every unordered triple drawn from field.Top, i <= j <= k, splitting
// the work into process3 (single cell), process12 (one pair), and
// process111 (three distinct cells) the way the reference engine does.
func RunAuto(acc *Accumulator, field *Field, metric Metric, kernel Kernel, opts RunOptions) error {
	if err := acc.bindCoord(field.Coord); err != nil {
		return err
	}
	tops := field.Top
	n := len(tops)
	six := NewSixAccumulators(acc.Params(), acc.Kernel())

	err := runParallel(n, six, opts, func(i int, local *SixAccumulators) error {
		if err := process3(local, kernel, tops[i], metric, acc.Params()); err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			if err := process12(local, kernel, tops[i], tops[j], metric, acc.Params()); err != nil {
				return err
			}
			if err := process12(local, kernel, tops[j], tops[i], metric, acc.Params()); err != nil {
				return err
			}
			for k := j + 1; k < n; k++ {
				if err := process111(local, kernel, tops[i], tops[j], tops[k], metric, acc.Params()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return six.Sum(acc)
}

// crossTwelveSix builds a SixAccumulators view over three logical
// accumulators (a cell from field1 lands in role a, b, or c) by
// mapping the two sorted-role outcomes that are indistinguishable once
// the two field2 cells are swapped onto the same accumulator.
func crossTwelveSix(accA, accB, accC *Accumulator) *SixAccumulators {
	return &SixAccumulators{Acc: [6]*Accumulator{
		perm123: accA, perm132: accA,
		perm213: accB, perm312: accB,
		perm231: accC, perm321: accC,
	}}
}

// RunCross12 computes the cross correlation of one point from field1
// against two points from field2 (spec.md §4.1). bc212 and bc221 are
// auxiliary accumulators for the cases where the field1 point lands in
// the sorted role b or c respectively; acc covers role a. All three
// must share acc's Params and Kernel.
func RunCross12(acc, bc212, bc221 *Accumulator, field1, field2 *Field, metric Metric, kernel Kernel, opts RunOptions) error {
	if field1.Coord != field2.Coord {
		return fmt.Errorf("%w: field1=%v field2=%v", ErrCoordMismatch, field1.Coord, field2.Coord)
	}
	if err := acc.bindCoord(field1.Coord); err != nil {
		return err
	}
	for _, a := range []*Accumulator{bc212, bc221} {
		if err := a.bindCoord(field1.Coord); err != nil {
			return err
		}
	}

	tops1, tops2 := field1.Top, field2.Top
	n := len(tops1)
	six := crossTwelveSix(acc.Duplicate(), bc212.Duplicate(), bc221.Duplicate())

	err := runParallel(n, six, opts, func(i int, local *SixAccumulators) error {
		for j := 0; j < len(tops2); j++ {
			// Both points drawn from the same F2 top cell: process12
			// recurses c2 down before ever pairing it against itself,
			// so this is NOT equivalent to process111(c1, c2, c2)
			// (which would treat the two aggregated copies as sitting
			// at the same position and corrupt the u/v shape calc).
			if err := process12(local, kernel, tops1[i], tops2[j], metric, acc.Params()); err != nil {
				return err
			}
			for k := j + 1; k < len(tops2); k++ {
				if err := process111(local, kernel, tops1[i], tops2[j], tops2[k], metric, acc.Params()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := acc.Add(six.Acc[perm123]); err != nil {
		return err
	}
	if err := bc212.Add(six.Acc[perm213]); err != nil {
		return err
	}
	return bc221.Add(six.Acc[perm231])
}

// RunCross111 computes the cross correlation of one point from each of
// three distinct fields (spec.md §4.1). All six sibling accumulators
// are populated, one per assignment of the three fields to the sorted
// roles a, b, c.
func RunCross111(six *SixAccumulators, field1, field2, field3 *Field, metric Metric, kernel Kernel, opts RunOptions) error {
	if field1.Coord != field2.Coord || field2.Coord != field3.Coord {
		return fmt.Errorf("%w: field1=%v field2=%v field3=%v", ErrCoordMismatch, field1.Coord, field2.Coord, field3.Coord)
	}
	for _, a := range six.Acc {
		if err := a.bindCoord(field1.Coord); err != nil {
			return err
		}
	}

	tops1, tops2, tops3 := field1.Top, field2.Top, field3.Top
	n := len(tops1)
	work := NewSixAccumulators(six.Acc[0].Params(), six.Acc[0].Kernel())

	err := runParallel(n, work, opts, func(i int, local *SixAccumulators) error {
		for j := 0; j < len(tops2); j++ {
			for k := 0; k < len(tops3); k++ {
				if err := process111(local, kernel, tops1[i], tops2[j], tops3[k], metric, six.Acc[0].Params()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return six.Sum2(work)
}

// Sum2 adds other's six accumulators element-wise into s's six.
func (s *SixAccumulators) Sum2(other *SixAccumulators) error {
	for i := range s.Acc {
		if err := s.Acc[i].Add(other.Acc[i]); err != nil {
			return err
		}
	}
	return nil
}
