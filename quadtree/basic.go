package quadtree

import (
	"fmt"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
)

// BasicQuadtree is a data structure that represents a basic point-region
// quadtree with information regarding its bounds, point count and node data.
// It is not safe for concurrent use; wrap it in a SyncQuadtree for that.
type BasicQuadtree struct {
	logger golog.Logger
	node   basicQuadtreeNode
	bounds Box
	size   int
}

// basicQuadtreeNode is a struct comprised of the type of node, children trees
// (should they exist) and the point the node accepted before any subdivision.
type basicQuadtreeNode struct {
	nodeType NodeType
	children []*BasicQuadtree
	point    r2.Point
}

// New creates a new basic quadtree with specified center and half size,
// validating them the same way NewBox does.
func New(center r2.Point, halfSize float64, logger golog.Logger) (*BasicQuadtree, error) {
	bounds, err := NewBox(center, halfSize)
	if err != nil {
		return nil, err
	}
	return NewBasicQuadtree(bounds, logger), nil
}

// NewBasicQuadtree creates a new empty basic quadtree covering the given
// bounds.
func NewBasicQuadtree(bounds Box, logger golog.Logger) *BasicQuadtree {
	return &BasicQuadtree{
		logger: logger,
		node:   newLeafNodeEmpty(),
		bounds: bounds,
		size:   0,
	}
}

// Size returns the number of points stored in the quadtree.
func (bt *BasicQuadtree) Size() int {
	return bt.size
}

// Bounds returns the box covered by the quadtree.
func (bt *BasicQuadtree) Bounds() Box {
	return bt.bounds
}

// Insert checks if the point to be added lies within the bounds of the tree,
// reporting false if it does not so the caller can route it to another
// structure. It then recursively iterates through the tree until it finds a
// node able to hold the point, subdividing filled leaf nodes into quadrants
// along the way. A node that subdivides keeps the point it already accepted
// and only the new point is delegated to the children.
func (bt *BasicQuadtree) Insert(p r2.Point) bool {
	if !bt.checkPointPlacement(p) {
		bt.logger.Debugf("point %v is outside the bounds of this quadtree, skipping insertion", p)
		return false
	}

	switch bt.node.nodeType {
	case InternalNode:
		for _, childTree := range bt.node.children {
			if childTree.Insert(p) {
				bt.size++
				return true
			}
		}
		// The quadrants are a closed quartering of the parent's box, so a
		// point within the parent must land in one of them. Reaching here
		// signals a defect in the quartering, not a caller error.
		bt.logger.Errorf("point %v is within bounds but was not accepted by any quadrant", p)
		return false

	case LeafNodeFilled:
		if err := bt.splitIntoQuadrants(); err != nil {
			bt.logger.Errorf("error splitting quadtree into new quadrants: %v", err)
			return false
		}
		return bt.Insert(p)

	case LeafNodeEmpty:
		bt.node = newLeafNodeFilled(p)
		bt.size++
		return true
	}

	return false
}

// QueryRange returns every stored point contained in the given box. Subtrees
// whose bounds do not intersect the range are pruned without descent. Points
// are gathered node first, then NW, NE, SW and SE subtrees; the resulting
// order is an artifact of tree shape, not a contract.
func (bt *BasicQuadtree) QueryRange(rng Box) []r2.Point {
	if !bt.bounds.Intersects(rng) {
		return nil
	}

	var found []r2.Point
	if bt.node.nodeType != LeafNodeEmpty && rng.ContainsPoint(bt.node.point) {
		found = append(found, bt.node.point)
	}
	if bt.node.nodeType != InternalNode {
		return found
	}
	for _, childTree := range bt.node.children {
		found = append(found, childTree.QueryRange(rng)...)
	}
	return found
}

// Iterate iterates over all points in the tree and calls the given function
// for each point. If the supplied function returns false, iteration will stop
// after the function returns.
// numBatches lets you divide up the work. 0 means don't divide.
// myBatch is used iff numBatches > 0 and is which batch you want.
func (bt *BasicQuadtree) Iterate(numBatches, myBatch int, fn func(p r2.Point) bool) {
	idx := 0
	bt.walk(func(p r2.Point) bool {
		keepGoing := true
		if numBatches <= 0 || idx%numBatches == myBatch {
			keepGoing = fn(p)
		}
		idx++
		return keepGoing
	})
}

// walk visits every stored point in traversal order (node point first, then
// NW, NE, SW, SE), stopping early once fn returns false. It reports whether
// the walk ran to completion.
func (bt *BasicQuadtree) walk(fn func(p r2.Point) bool) bool {
	if bt.node.nodeType != LeafNodeEmpty {
		if !fn(bt.node.point) {
			return false
		}
	}
	if bt.node.nodeType != InternalNode {
		return true
	}
	for _, childTree := range bt.node.children {
		if !childTree.walk(fn) {
			return false
		}
	}
	return true
}

// Points returns all stored points in traversal order.
func (bt *BasicQuadtree) Points() []r2.Point {
	points := make([]r2.Point, 0, bt.size)
	bt.walk(func(p r2.Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// String returns a human readable string that represents this quadtree.
func (bt *BasicQuadtree) String() string {
	return fmt.Sprintf("quadtree with center at %v, half size of %v and %d points",
		bt.bounds.center, bt.bounds.halfSize, bt.size)
}

// DumpPoints returns a human readable dump of every node and stored point,
// intended for debugging and tests. It is not a stable serialization format.
func (bt *BasicQuadtree) DumpPoints() string {
	var sb strings.Builder
	bt.dump(&sb, "")
	return sb.String()
}

func (bt *BasicQuadtree) dump(sb *strings.Builder, prefix string) {
	fmt.Fprintf(sb, "%s%v - %v | children: %d size: %d\n",
		prefix, bt.bounds, stringNodeType(bt.node.nodeType), len(bt.node.children), bt.size)
	if bt.node.nodeType != LeafNodeEmpty {
		fmt.Fprintf(sb, "%s(%.2f, %.2f)\n", prefix, bt.node.point.X, bt.node.point.Y)
	}
	for _, childTree := range bt.node.children {
		childTree.dump(sb, prefix+"-+-")
	}
}
