package game

// Orientation of a wall.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return "UNKNOWN ORIENTATION"
}

// Wall is a placement anchored on a post, the grid site with both
// coordinates even where four squares meet. It blocks the two unit edges
// either side of the post.
type Wall struct {
	Anchor      Position
	Orientation Orientation
}

const (
	minPost = 2
	maxPost = Size - 3
)

// InBounds reports whether the wall is anchored on an interior post and all
// of its occupied cells are valid wall sites.
func (w Wall) InBounds() bool {
	a := w.Anchor
	if a.X%2 != 0 || a.Y%2 != 0 {
		return false
	}
	if a.X < minPost || a.X > maxPost || a.Y < minPost || a.Y > maxPost {
		return false
	}
	return w.Orientation == Horizontal || w.Orientation == Vertical
}

// OccupiedCells returns the two edge sites w blocks, ordered by increasing
// coordinate. It returns nil for a wall that is not InBounds.
func (w Wall) OccupiedCells() []Position {
	if !w.InBounds() {
		return nil
	}
	a := w.Anchor
	if w.Orientation == Horizontal {
		return []Position{a.Add(-1, 0), a.Add(1, 0)}
	}
	return []Position{a.Add(0, -1), a.Add(0, 1)}
}

// Overlaps is true when two walls of the same orientation share an edge site.
func Overlaps(a, b Wall) bool {
	if a.Orientation != b.Orientation {
		return false
	}
	for _, p := range a.OccupiedCells() {
		for _, q := range b.OccupiedCells() {
			if p == q {
				return true
			}
		}
	}
	return false
}

// Crosses is true when walls of opposite orientation intersect, i.e. the
// anchor of each lies within the span of the other.
func Crosses(a, b Wall) bool {
	if a.Orientation == b.Orientation || !a.InBounds() || !b.InBounds() {
		return false
	}
	h, v := a, b
	if h.Orientation == Vertical {
		h, v = b, a
	}
	return v.Anchor.X >= h.Anchor.X-1 && v.Anchor.X <= h.Anchor.X+1 &&
		h.Anchor.Y >= v.Anchor.Y-1 && h.Anchor.Y <= v.Anchor.Y+1
}

// index is the position of an in-bounds wall in generation order.
func (w Wall) index() int {
	a := w.Anchor
	return ((a.Y-minPost)/2*(Squares-1)+(a.X-minPost)/2)*2 + int(w.Orientation)
}

// walls enumerates every in-bounds placement in generation order.
func walls() []Wall {
	retVal := make([]Wall, 0, wallActions)
	for y := minPost; y <= maxPost; y += 2 {
		for x := minPost; x <= maxPost; x += 2 {
			retVal = append(retVal,
				Wall{Position{x, y}, Horizontal},
				Wall{Position{x, y}, Vertical})
		}
	}
	return retVal
}

var allWalls = walls()
