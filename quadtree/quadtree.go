// Package quadtree implements a point-region quadtree over a bounded
// two-dimensional space, supporting point insertion, axis-aligned range
// queries and approximate k-nearest-neighbor search.
package quadtree

import (
	"github.com/golang/geo/r2"
)

// Each node in the quadtree is either an internal node which links to four
// quadrant subtrees, an empty node with no point or further links, or a
// filled node which holds a single point. A node that subdivides keeps the
// point it already accepted, so internal nodes hold a point as well.
const (
	InternalNode = NodeType(iota)
	LeafNodeEmpty
	LeafNodeFilled
)

// NodeType represents the possible types of nodes in a quadtree.
type NodeType uint8

// Quadrant indices into an internal node's children. The order is fixed and
// is the order insertion and queries visit the quadrants. The coordinate
// convention is y-up, so NW is up and to the left.
const (
	nw = iota
	ne
	sw
	se
	numQuadrants
)

// QuadTree is a data structure that recursively partitions a bounded 2D
// region into quadrants to index points for fast spatial lookups. A tree is
// built over a fixed bounding box and only accepts points within it.
type QuadTree interface {
	// Size returns the number of points stored in the tree.
	Size() int

	// Bounds returns the box covered by the tree.
	Bounds() Box

	// Insert places the given point in the tree. It reports false if the
	// point lies outside the tree's bounds.
	Insert(p r2.Point) bool

	// QueryRange returns every stored point contained in the given box.
	QueryRange(rng Box) []r2.Point

	// QueryKNearest returns up to k stored points sorted ascending by
	// Euclidean distance to p.
	QueryKNearest(p r2.Point, k int) []r2.Point

	// Iterate iterates over all points in the tree and calls the given
	// function for each point. If the supplied function returns false,
	// iteration will stop after the function returns.
	// numBatches lets you divide up the work. 0 means don't divide.
	// myBatch is used iff numBatches > 0 and is which batch you want.
	Iterate(numBatches, myBatch int, fn func(p r2.Point) bool)
}
