package quadtree

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Creates a new empty leaf node.
func newLeafNodeEmpty() basicQuadtreeNode {
	return basicQuadtreeNode{
		children: nil,
		nodeType: LeafNodeEmpty,
	}
}

// Creates a new leaf node holding a point.
func newLeafNodeFilled(p r2.Point) basicQuadtreeNode {
	return basicQuadtreeNode{
		children: nil,
		nodeType: LeafNodeFilled,
		point:    p,
	}
}

// Creates a new internal node with the given children trees, keeping the
// point the node held before it subdivided.
func newInternalNode(children []*BasicQuadtree, p r2.Point) basicQuadtreeNode {
	return basicQuadtreeNode{
		children: children,
		nodeType: InternalNode,
		point:    p,
	}
}

// Splits a filled leaf node into an internal node with four empty leaf
// children whose boxes exactly quarter this tree's bounds. All four children
// are created together; a node is never left with a partial set. The node's
// point stays with the node.
func (bt *BasicQuadtree) splitIntoQuadrants() error {
	switch bt.node.nodeType {
	case InternalNode:
		return errors.New("error attempted to split internal node")
	case LeafNodeEmpty:
		return errors.New("error attempted to split empty leaf node")
	case LeafNodeFilled:
	}

	children := make([]*BasicQuadtree, 0, numQuadrants)
	for q := nw; q < numQuadrants; q++ {
		children = append(children, NewBasicQuadtree(bt.bounds.quadrant(q), bt.logger))
	}
	bt.node = newInternalNode(children, bt.node.point)
	return nil
}

// checkPointPlacement checks if the specified point will fit in the tree
// given its bounds.
func (bt *BasicQuadtree) checkPointPlacement(p r2.Point) bool {
	return bt.bounds.ContainsPoint(p)
}

// stringNodeType returns a readable name for a node type when dumping trees.
func stringNodeType(n NodeType) string {
	switch n {
	case InternalNode:
		return "InternalNode"
	case LeafNodeEmpty:
		return "LeafNodeEmpty"
	case LeafNodeFilled:
		return "LeafNodeFilled"
	}
	return ""
}
