package treecorr3

import (
	"math"
	"sort"
)

// PointData is one input point: its position, weight, and (kernel-
// dependent) per-point value. Only the field matching kernel is read.
type PointData struct {
	Pos Point
	W   float64
	K   float64    // scalar field value, for KernelScalar
	G   complex128 // spin-2 field value, for KernelSpin2
}

// BuildField constructs a Field from a flat point set by recursive
// median-split partitioning, the way kdtree.go's buildNode splits on the
// dimension of greatest spread. leafSize bounds the point count in a leaf
// cell. This is ambient tree construction (spec.md §1 explicitly puts
// "how trees are built" out of THE CORE's scope); any construction that
// satisfies the Cell invariants in spec.md §3 is a valid collaborator.
func BuildField(points []PointData, metric Metric, kernel KernelKind, leafSize int) *Field {
	coord := CoordFlat
	if _, ok := metric.(ArcMetric); ok {
		coord = CoordSphere
	}

	if len(points) == 0 {
		return &Field{Coord: coord}
	}
	if leafSize < 1 {
		leafSize = 1
	}

	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}

	b := &builder{points: points, kernel: kernel, leafSize: leafSize}
	root := b.build(idx)
	return &Field{Top: []Cell{root}, Coord: coord}
}

type builder struct {
	points   []PointData
	kernel   KernelKind
	leafSize int
}

func (b *builder) build(idx []int) *treeCell {
	weight, count, pos, payload := b.aggregate(idx)

	if len(idx) <= b.leafSize {
		size := 0.0
		for _, i := range idx {
			size = math.Max(size, dist(pos, b.points[i].Pos))
		}
		return &treeCell{pos: pos, size: size, weight: weight, count: count, data: payload}
	}

	dim := spreadDim(b.points, idx)
	sortByDim(b.points, idx, dim)
	mid := len(idx) / 2

	left := b.build(idx[:mid])
	right := b.build(idx[mid:])

	size := math.Max(dist(pos, left.pos)+left.size, dist(pos, right.pos)+right.size)
	return &treeCell{pos: pos, size: size, weight: weight, count: count, left: left, right: right, data: payload}
}

// aggregate computes the weighted-mean position and summed weight/count/
// payload over idx. The weighted mean (rather than an unweighted
// centroid) keeps the bounding-disk invariant tight when weights vary a
// lot, and matches how the weight itself is already a sum over points.
func (b *builder) aggregate(idx []int) (weight float64, count int, pos Point, payload Payload) {
	var sx, sy, sz float64
	for _, i := range idx {
		p := b.points[i]
		w := p.W
		sx += w * p.Pos.X
		sy += w * p.Pos.Y
		sz += w * p.Pos.Z
		weight += w
		count++
		switch b.kernel {
		case KernelScalar:
			payload.WK += w * p.K
		case KernelSpin2:
			payload.WG += complex(w, 0) * p.G
		}
	}
	if weight != 0 {
		pos = Point{sx / weight, sy / weight, sz / weight}
	} else if len(idx) > 0 {
		pos = b.points[idx[0]].Pos
	}
	return
}

func dist(a, b Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func spreadDim(points []PointData, idx []int) int {
	var minV, maxV [3]float64
	minV = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, i := range idx {
		p := points[i].Pos
		v := [3]float64{p.X, p.Y, p.Z}
		for d := 0; d < 3; d++ {
			if v[d] < minV[d] {
				minV[d] = v[d]
			}
			if v[d] > maxV[d] {
				maxV[d] = v[d]
			}
		}
	}
	best, bestSpread := 0, -1.0
	for d := 0; d < 3; d++ {
		spread := maxV[d] - minV[d]
		if spread > bestSpread {
			bestSpread, best = spread, d
		}
	}
	return best
}

func sortByDim(points []PointData, idx []int, dim int) {
	coord := func(p Point) float64 {
		switch dim {
		case 0:
			return p.X
		case 1:
			return p.Y
		default:
			return p.Z
		}
	}
	sort.Slice(idx, func(i, j int) bool {
		return coord(points[idx[i]].Pos) < coord(points[idx[j]].Pos)
	})
}
