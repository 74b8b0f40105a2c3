package types

// Pit is the bounded grid the snake lives in.
//
// The playable interior is 1 <= x < Width, 1 <= y < Height. Row 0 and
// column 0 are wall, and so is everything at x >= Width or y >= Height,
// so the wall ring encloses a (Width+1) x (Height+1) area.
type Pit struct {
	Height uint
	Width  uint
}

func NewPit(height, width uint) Pit {
	return Pit{Height: height, Width: width}
}

// IsWall reports whether p lies on or beyond the wall ring.
func (p Pit) IsWall(pt Point) bool {
	return pt.X == 0 || pt.Y == 0 || pt.X >= p.Width || pt.Y >= p.Height
}

// Perimeter enumerates the wall ring bordering the interior, row by row:
// the full top row, both side columns for every interior row, then the
// full bottom row.
func (p Pit) Perimeter() []Point {
	perimeter := make([]Point, 0, 2*p.Width+2*p.Height)
	for y := uint(0); y <= p.Height; y++ {
		if y == 0 || y == p.Height {
			for x := uint(0); x <= p.Width; x++ {
				perimeter = append(perimeter, Point{X: x, Y: y})
			}
			continue
		}
		perimeter = append(perimeter, Point{X: 0, Y: y})
		if p.Width > 0 {
			perimeter = append(perimeter, Point{X: p.Width, Y: y})
		}
	}
	return perimeter
}

// InteriorSize is the number of playable cells.
func (p Pit) InteriorSize() uint {
	if p.Width < 2 || p.Height < 2 {
		return 0
	}
	return (p.Width - 1) * (p.Height - 1)
}

// Interior enumerates the playable cells in row-major order.
func (p Pit) Interior() []Point {
	cells := make([]Point, 0, p.InteriorSize())
	for y := uint(1); y < p.Height; y++ {
		for x := uint(1); x < p.Width; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
