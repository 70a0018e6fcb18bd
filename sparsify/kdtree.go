// Package sparsify: k-d tree adapter.
//
// gonum's spatial/kdtree stores Comparable values, not indices, so the
// adapter carries each point's position in the original sequence through
// the tree. The boilerplate below is the standard kdtree.Interface wiring:
// an index-aware point, its slice, and the sorting plane the tree uses to
// pick pivots.
package sparsify

import "gonum.org/v1/gonum/spatial/kdtree"

// indexedPoint is a point annotated with its position in the input
// sequence. Distances are squared Euclidean, per the kdtree contract.
type indexedPoint struct {
	pos []float64
	id  int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.pos[d] - q.pos[d]
}

func (p indexedPoint) Dims() int { return len(p.pos) }

func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	var s float64
	for i, v := range p.pos {
		d := v - q.pos[i]
		s += d * d
	}

	return s
}

// indexedPoints implements kdtree.Interface over a slice of indexedPoint.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable   { return p[i] }
func (p indexedPoints) Len() int                        { return len(p) }
func (p indexedPoints) Slice(s, e int) kdtree.Interface { return p[s:e] }
func (p indexedPoints) Pivot(d kdtree.Dim) int {
	return plane{Dim: d, indexedPoints: p}.Pivot()
}

// plane is the axis-ordered view the tree sorts against.
type plane struct {
	kdtree.Dim
	indexedPoints
}

func (p plane) Less(i, j int) bool {
	return p.indexedPoints[i].pos[p.Dim] < p.indexedPoints[j].pos[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(s, e int) kdtree.SortSlicer {
	p.indexedPoints = p.indexedPoints[s:e]
	return p
}
func (p plane) Swap(i, j int) {
	p.indexedPoints[i], p.indexedPoints[j] = p.indexedPoints[j], p.indexedPoints[i]
}
