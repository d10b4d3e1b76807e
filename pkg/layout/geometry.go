package layout

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry is returned by [IntersectRect] when the query point
// coincides with the rectangle's center, leaving the intersection ray with
// a zero direction vector.
var ErrDegenerateGeometry = errors.New("query point coincides with rectangle center")

// Point is a position in the abstract layout plane.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle identified by its center point and its
// full width and height.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// IntersectRect returns the point where the segment from the rectangle's
// center to p crosses the rectangle's boundary. The rectangle is closed:
// a point on the boundary intersects at itself.
func IntersectRect(r Rect, p Point) (Point, error) {
	dx := p.X - r.X
	dy := p.Y - r.Y
	if dx == 0 && dy == 0 {
		return Point{}, ErrDegenerateGeometry
	}

	w := r.Width / 2
	h := r.Height / 2
	var sx, sy float64
	if math.Abs(dy)*w > math.Abs(dx)*h {
		// Intersection is top or bottom of rect.
		if dy < 0 {
			h = -h
		}
		sx = h * dx / dy
		sy = h
	} else {
		// Intersection is left or right of rect.
		if dx < 0 {
			w = -w
		}
		sx = w
		sy = w * dy / dx
	}
	return Point{X: r.X + sx, Y: r.Y + sy}, nil
}
