package quadtree

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Box is an axis-aligned closed square region described by its center point
// and half its side length. It covers
// [center.X-halfSize, center.X+halfSize] x [center.Y-halfSize, center.Y+halfSize].
type Box struct {
	center   r2.Point
	halfSize float64
}

// NewBox creates a box with the specified center and half size. The half size
// must be positive and finite.
func NewBox(center r2.Point, halfSize float64) (Box, error) {
	if halfSize <= 0 || math.IsNaN(halfSize) || math.IsInf(halfSize, 0) {
		return Box{}, errors.Errorf("invalid half size (%.2f) for box", halfSize)
	}
	return Box{center: center, halfSize: halfSize}, nil
}

// Center returns the center point of the box.
func (b Box) Center() r2.Point {
	return b.center
}

// HalfSize returns half the side length of the box.
func (b Box) HalfSize() float64 {
	return b.halfSize
}

// ContainsPoint reports whether the given point lies within the box. The
// boundary belongs to the box, so points exactly on an edge or corner are
// contained.
func (b Box) ContainsPoint(p r2.Point) bool {
	return p.X >= b.center.X-b.halfSize && p.X <= b.center.X+b.halfSize &&
		p.Y >= b.center.Y-b.halfSize && p.Y <= b.center.Y+b.halfSize
}

// Intersects reports whether the two boxes share any area. The comparison is
// strict, so boxes that only touch along an edge or at a corner do not
// intersect even though ContainsPoint treats those boundaries as inside.
// Query pruning depends on this exact pairing of predicates.
func (b Box) Intersects(other Box) bool {
	return b.center.X-b.halfSize < other.center.X+other.halfSize &&
		b.center.X+b.halfSize > other.center.X-other.halfSize &&
		b.center.Y-b.halfSize < other.center.Y+other.halfSize &&
		b.center.Y+b.halfSize > other.center.Y-other.halfSize
}

// quadrant returns the child box for the given quadrant index, quartering b
// into four squares of half the half size.
func (b Box) quadrant(q int) Box {
	hs := b.halfSize / 2
	var center r2.Point
	switch q {
	case nw:
		center = r2.Point{X: b.center.X - hs, Y: b.center.Y + hs}
	case ne:
		center = r2.Point{X: b.center.X + hs, Y: b.center.Y + hs}
	case sw:
		center = r2.Point{X: b.center.X - hs, Y: b.center.Y - hs}
	case se:
		center = r2.Point{X: b.center.X + hs, Y: b.center.Y - hs}
	}
	return Box{center: center, halfSize: hs}
}

// String returns a human readable string that represents this box.
func (b Box) String() string {
	return fmt.Sprintf("box with center at %v and half size of %v", b.center, b.halfSize)
}
