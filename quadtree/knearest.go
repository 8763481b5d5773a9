package quadtree

import (
	"sort"

	"github.com/golang/geo/r2"
)

// maxSearchExponent bounds the widening search; candidate windows grow as
// powers of two up to a half size of 2^19.
const maxSearchExponent = 19

// QueryKNearest returns up to k stored points sorted ascending by Euclidean
// distance to p. The search runs range queries over square windows centered
// at p with half sizes 2^1 through 2^19, stopping at the first window that
// captures at least k points. Because the window is square rather than
// circular, the result is the k nearest among the points captured by that
// smallest window, which can differ from the true k nearest when a slightly
// farther point sits inside the window's corner while a closer one sits just
// outside its edge. Fewer than k points are returned when the tree holds
// fewer than k points within the largest window.
func (bt *BasicQuadtree) QueryKNearest(p r2.Point, k int) []r2.Point {
	if k <= 0 {
		return nil
	}

	var nearby []r2.Point
	for i := 1; i <= maxSearchExponent; i++ {
		window := Box{center: p, halfSize: float64(int64(1) << i)}
		nearby = bt.QueryRange(window)
		if len(nearby) >= k {
			break
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Sub(p).Norm() < nearby[j].Sub(p).Norm()
	})
	if len(nearby) > k {
		nearby = nearby[:k]
	}
	return nearby
}
