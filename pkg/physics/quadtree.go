// pkg/physics/quadtree.go
package physics

// QuadTree for spatial partitioning of bounded items.
// An item is stored in the deepest node whose boundary fully contains its
// bounds, so large items stay near the root.
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	MaxDepth  int
	Bounds    []Rect
	Objects   []interface{}
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	depth int
}

// NewQuadTree creates a new quad tree with the given boundary, capacity and
// subdivision depth limit.
func NewQuadTree(boundary Rect, capacity, maxDepth int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		MaxDepth: maxDepth,
		Bounds:   make([]Rect, 0, capacity),
		Objects:  make([]interface{}, 0, capacity),
	}
}

// Insert stores object under bounds. It returns false when bounds do not
// touch the tree boundary at all.
func (qt *QuadTree) Insert(bounds Rect, object interface{}) bool {
	if !qt.Boundary.Overlaps(bounds) {
		return false
	}

	if qt.Divided {
		if child := qt.childFor(bounds); child != nil {
			return child.Insert(bounds, object)
		}
	}

	qt.Bounds = append(qt.Bounds, bounds)
	qt.Objects = append(qt.Objects, object)

	if !qt.Divided && len(qt.Objects) > qt.Capacity && qt.depth < qt.MaxDepth {
		qt.Subdivide()
		qt.redistribute()
	}
	return true
}

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	nw := Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}
	ne := Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}
	sw := Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}
	se := Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}

	qt.NorthWest = qt.child(nw)
	qt.NorthEast = qt.child(ne)
	qt.SouthWest = qt.child(sw)
	qt.SouthEast = qt.child(se)
	qt.Divided = true
}

func (qt *QuadTree) child(boundary Rect) *QuadTree {
	c := NewQuadTree(boundary, qt.Capacity, qt.MaxDepth)
	c.depth = qt.depth + 1
	return c
}

// redistribute pushes items that fit a quadrant down one level
func (qt *QuadTree) redistribute() {
	n := 0
	for i, b := range qt.Bounds {
		obj := qt.Objects[i]
		if child := qt.childFor(b); child != nil {
			child.Insert(b, obj)
			continue
		}
		qt.Bounds[n] = b
		qt.Objects[n] = obj
		n++
	}
	for i := n; i < len(qt.Objects); i++ {
		qt.Objects[i] = nil
	}
	qt.Bounds = qt.Bounds[:n]
	qt.Objects = qt.Objects[:n]
}

func (qt *QuadTree) childFor(bounds Rect) *QuadTree {
	for _, c := range [...]*QuadTree{qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast} {
		if c.Boundary.ContainsRect(bounds) {
			return c
		}
	}
	return nil
}

// Query returns all objects whose bounds overlap the given area
func (qt *QuadTree) Query(area Rect) []interface{} {
	return qt.query(area, make([]interface{}, 0))
}

func (qt *QuadTree) query(area Rect, found []interface{}) []interface{} {
	if !qt.Boundary.Overlaps(area) {
		return found
	}

	for i, b := range qt.Bounds {
		if area.Overlaps(b) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)
	return found
}

// Len returns the number of stored items
func (qt *QuadTree) Len() int {
	n := len(qt.Objects)
	if qt.Divided {
		n += qt.NorthWest.Len() + qt.NorthEast.Len() + qt.SouthWest.Len() + qt.SouthEast.Len()
	}
	return n
}

// Clear removes every item and collapses the quadrants
func (qt *QuadTree) Clear() {
	for i := range qt.Objects {
		qt.Objects[i] = nil
	}
	qt.Bounds = qt.Bounds[:0]
	qt.Objects = qt.Objects[:0]
	qt.Divided = false
	qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast = nil, nil, nil, nil
}
