package quadtree

import (
	"sync"

	"github.com/golang/geo/r2"
)

var (
	_ QuadTree = (*BasicQuadtree)(nil)
	_ QuadTree = (*SyncQuadtree)(nil)
)

// SyncQuadtree wraps a BasicQuadtree with a single lock held across each
// operation's full root-to-leaf walk, making the tree safe for concurrent
// use. Subdivision mutates a node in place and must appear atomic to
// readers, so insertion takes the lock exclusively while queries share it.
type SyncQuadtree struct {
	mu   sync.RWMutex
	tree *BasicQuadtree
}

// NewSyncQuadtree wraps the given quadtree for concurrent use. The wrapped
// tree must not be used directly afterwards.
func NewSyncQuadtree(tree *BasicQuadtree) *SyncQuadtree {
	return &SyncQuadtree{tree: tree}
}

// Size returns the number of points stored in the quadtree.
func (st *SyncQuadtree) Size() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.Size()
}

// Bounds returns the box covered by the quadtree.
func (st *SyncQuadtree) Bounds() Box {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.Bounds()
}

// Insert places the given point in the tree under an exclusive lock. It
// reports false if the point lies outside the tree's bounds.
func (st *SyncQuadtree) Insert(p r2.Point) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.tree.Insert(p)
}

// QueryRange returns every stored point contained in the given box.
func (st *SyncQuadtree) QueryRange(rng Box) []r2.Point {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.QueryRange(rng)
}

// QueryKNearest returns up to k stored points sorted ascending by Euclidean
// distance to p. See BasicQuadtree.QueryKNearest for the approximation this
// search makes.
func (st *SyncQuadtree) QueryKNearest(p r2.Point, k int) []r2.Point {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.QueryKNearest(p, k)
}

// Iterate iterates over all points in the tree under a shared lock; fn must
// not mutate the tree.
func (st *SyncQuadtree) Iterate(numBatches, myBatch int, fn func(p r2.Point) bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	st.tree.Iterate(numBatches, myBatch, fn)
}

// String returns a human readable string that represents this quadtree.
func (st *SyncQuadtree) String() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.String()
}
