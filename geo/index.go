package geo

import (
	"cmp"
	"slices"
)

// Index is an immutable 2-d tree over canvas points used to find the node
// nearest to a cursor or click position.
//
// The tree is stored implicitly: for a sub-slice pts[lo:hi] the splitting
// point sits at the middle index, the left subtree at [lo:mid) and the right
// subtree at (mid:hi). Even depths split on X, odd depths on Y.
type Index struct {
	pts []Point
}

// NewIndex builds an Index from points. The input slice is not modified.
// Complexity: O(n log² n).
func NewIndex(points []Point) *Index {
	pts := slices.Clone(points)
	build(pts, 0)

	return &Index{pts: pts}
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return len(ix.pts) }

func build(pts []Point, depth int) {
	if len(pts) < 2 {
		return
	}
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(axis(a, depth), axis(b, depth)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	mid := len(pts) / 2
	build(pts[:mid], depth+1)
	build(pts[mid+1:], depth+1)
}

func axis(p Point, depth int) float64 {
	if depth%2 == 0 {
		return p.X
	}
	return p.Y
}

// Nearest returns the point closest to (x, y). Equidistant candidates resolve
// to the lowest ID. ok is false when the index is empty.
func (ix *Index) Nearest(x, y float64) (p Point, ok bool) {
	if len(ix.pts) == 0 {
		return Point{}, false
	}
	s := search{x: x, y: y, bestD: -1}
	s.visit(ix.pts, 0)

	return s.best, true
}

type search struct {
	x, y  float64
	best  Point
	bestD float64 // squared distance; -1 before the first candidate
}

func (s *search) visit(pts []Point, depth int) {
	if len(pts) == 0 {
		return
	}
	mid := len(pts) / 2
	p := pts[mid]
	s.offer(p)

	q := s.x
	if depth%2 == 1 {
		q = s.y
	}
	delta := q - axis(p, depth)

	near, far := pts[:mid], pts[mid+1:]
	if delta >= 0 {
		near, far = far, near
	}
	s.visit(near, depth+1)
	if delta*delta <= s.bestD {
		s.visit(far, depth+1)
	}
}

func (s *search) offer(p Point) {
	dx, dy := p.X-s.x, p.Y-s.y
	d := dx*dx + dy*dy
	if s.bestD < 0 || d < s.bestD || (d == s.bestD && p.ID < s.best.ID) {
		s.best, s.bestD = p, d
	}
}

// Within returns every point at most r from (x, y), in tree order.
// An infinite r returns all points.
func (ix *Index) Within(x, y, r float64) []Point {
	var out []Point
	within(ix.pts, 0, x, y, r*r, &out)

	return out
}

func within(pts []Point, depth int, x, y, r2 float64, out *[]Point) {
	if len(pts) == 0 {
		return
	}
	mid := len(pts) / 2
	p := pts[mid]
	if dx, dy := p.X-x, p.Y-y; dx*dx+dy*dy <= r2 {
		*out = append(*out, p)
	}

	q := x
	if depth%2 == 1 {
		q = y
	}
	delta := q - axis(p, depth)
	if delta <= 0 || delta*delta <= r2 {
		within(pts[:mid], depth+1, x, y, r2, out)
	}
	if delta >= 0 || delta*delta <= r2 {
		within(pts[mid+1:], depth+1, x, y, r2, out)
	}
}
