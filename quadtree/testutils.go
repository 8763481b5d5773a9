package quadtree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// MakeTestQuadtree creates a test quadtree bounded by [-20,20] x [-20,20]
// holding a small sparse set of points.
func MakeTestQuadtree(logger golog.Logger) *BasicQuadtree {
	bounds, err := NewBox(r2.Point{}, 20)
	if err != nil {
		return nil
	}
	bt := NewBasicQuadtree(bounds, logger)
	for _, p := range []r2.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 10, Y: 10},
	} {
		if !bt.Insert(p) {
			return nil
		}
	}
	return bt
}

// RandomPoints draws n points uniformly from the given bounds using a
// deterministic source, so fixtures are reproducible across runs.
func RandomPoints(bounds Box, n int, seed uint64) []r2.Point {
	src := rand.NewSource(seed)
	xDist := distuv.Uniform{
		Min: bounds.Center().X - bounds.HalfSize(),
		Max: bounds.Center().X + bounds.HalfSize(),
		Src: src,
	}
	yDist := distuv.Uniform{
		Min: bounds.Center().Y - bounds.HalfSize(),
		Max: bounds.Center().Y + bounds.HalfSize(),
		Src: src,
	}

	points := make([]r2.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, r2.Point{X: xDist.Rand(), Y: yDist.Rand()})
	}
	return points
}

// MakeRandomQuadtree creates a quadtree holding n points drawn uniformly
// from the given bounds, returning the tree along with the inserted points.
func MakeRandomQuadtree(bounds Box, n int, seed uint64, logger golog.Logger) (*BasicQuadtree, []r2.Point) {
	points := RandomPoints(bounds, n, seed)
	bt := NewBasicQuadtree(bounds, logger)
	for _, p := range points {
		if !bt.Insert(p) {
			return nil, nil
		}
	}
	return bt, points
}
