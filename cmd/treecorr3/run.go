package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lporth93/treecorr3"
	"github.com/spf13/cobra"
)

var (
	npoints int
	minSep  float64
	maxSep  float64
	nbins   int
	seed    uint64
	kernel  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an auto correlation over a synthetic point field",
	RunE:  runAuto,
}

func init() {
	runCmd.Flags().IntVar(&npoints, "npoints", 20000, "Number of synthetic points")
	runCmd.Flags().Float64Var(&minSep, "min-sep", 0.1, "Minimum separation bin edge")
	runCmd.Flags().Float64Var(&maxSep, "max-sep", 10, "Maximum separation bin edge")
	runCmd.Flags().IntVar(&nbins, "nbins", 10, "Number of radial bins")
	runCmd.Flags().Uint64Var(&seed, "seed", 42, "Random seed")
	runCmd.Flags().StringVar(&kernel, "kernel", "count", "Kernel: count, scalar, or spin2")
	rootCmd.AddCommand(runCmd)
}

func runAuto(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	points := make([]treecorr3.PointData, npoints)
	for i := range points {
		points[i] = treecorr3.PointData{
			Pos: treecorr3.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
			W:   1,
			K:   rng.NormFloat64(),
			G:   complex(rng.NormFloat64()*0.3, rng.NormFloat64()*0.3),
		}
	}

	var kind treecorr3.KernelKind
	var k treecorr3.Kernel
	switch kernel {
	case "count":
		kind, k = treecorr3.KernelCount, treecorr3.CountKernel{}
	case "scalar":
		kind, k = treecorr3.KernelScalar, treecorr3.ScalarKernel{}
	case "spin2":
		kind, k = treecorr3.KernelSpin2, treecorr3.Spin2Kernel{Project: treecorr3.EuclideanProjector{}}
	default:
		return fmt.Errorf("unknown kernel %q", kernel)
	}

	params, err := treecorr3.NewParams(treecorr3.Config{
		BinType: treecorr3.Log,
		MinSep:  minSep, MaxSep: maxSep, NBins: nbins, B: 0.1,
		MinU: 0, MaxU: 1, NUBins: 10, BU: 0.1,
		MinV: 0, MaxV: 1, NVBins: 10, BV: 0.1,
	})
	if err != nil {
		return err
	}

	slog.Info("building field", "npoints", npoints, "kernel", kernel)
	field := treecorr3.BuildField(points, treecorr3.EuclideanMetric{}, kind, 16)

	acc := treecorr3.NewAccumulator(params, kind)

	start := time.Now()
	if err := treecorr3.RunAuto(acc, field, treecorr3.EuclideanMetric{}, k, treecorr3.RunOptions{}); err != nil {
		return err
	}
	slog.Info("run complete", "elapsed", time.Since(start), "ntot", params.Ntot())

	var totalTri, totalWeight float64
	for i := range acc.Ntri {
		totalTri += acc.Ntri[i]
		totalWeight += acc.Weight[i]
	}
	fmt.Printf("bins=%d total_triangles=%.0f total_weight=%.3g\n", params.Ntot(), totalTri, totalWeight)

	return nil
}
