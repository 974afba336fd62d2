package match

// NoTexture marks a grid cell for which no candidate was chosen.
const NoTexture = -1

// Grid holds one texture choice per output pixel, row-major. For animated
// input the previous frame's grid is kept as read-only context for the
// next frame's matching, then discarded.
type Grid struct {
	W, H  int
	cells []int
}

// NewGrid creates a grid with every cell set to NoTexture.
func NewGrid(w, h int) *Grid {
	cells := make([]int, w*h)
	for i := range cells {
		cells[i] = NoTexture
	}
	return &Grid{W: w, H: h, cells: cells}
}

// At returns the chosen texture id at (x, y).
func (g *Grid) At(x, y int) int {
	return g.cells[y*g.W+x]
}

// Set records the chosen texture id at (x, y).
func (g *Grid) Set(x, y, id int) {
	g.cells[y*g.W+x] = id
}
