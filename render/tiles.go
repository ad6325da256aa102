package render

// tileSize is the side of a screen tile, in cells
const tileSize = 8

// rect is an inclusive cell rectangle
type rect struct {
	minX, minY int
	maxX, maxY int
}

// tile holds the indices of the drawables whose projection overlaps it
type tile struct {
	indices []int
}

// tileGrid is a uniform screen-space grid used as a broad phase: a cell only
// traces the drawables binned in its tile.
type tileGrid struct {
	cols, rows int
	tiles      []tile
}

func newTileGrid(width, height int) *tileGrid {
	cols := (width + tileSize - 1) / tileSize
	rows := (height + tileSize - 1) / tileSize

	tiles := make([]tile, cols*rows)
	for i := range tiles {
		tiles[i].indices = make([]int, 0, 8)
	}

	return &tileGrid{cols: cols, rows: rows, tiles: tiles}
}

// fits reports whether the grid covers a screen of the given size
func (g *tileGrid) fits(width, height int) bool {
	return g.cols == (width+tileSize-1)/tileSize && g.rows == (height+tileSize-1)/tileSize
}

func (g *tileGrid) clear() {
	for i := range g.tiles {
		g.tiles[i].indices = g.tiles[i].indices[:0]
	}
}

// insert adds a drawable to every tile its rectangle touches. Indices must be
// inserted in ascending order to keep the per-tile lists sorted.
func (g *tileGrid) insert(index int, r rect) {
	if r.maxX < 0 || r.maxY < 0 || r.minX >= g.cols*tileSize || r.minY >= g.rows*tileSize {
		return
	}
	minCol, maxCol := clampInt(r.minX/tileSize, 0, g.cols-1), clampInt(r.maxX/tileSize, 0, g.cols-1)
	minRow, maxRow := clampInt(r.minY/tileSize, 0, g.rows-1), clampInt(r.maxY/tileSize, 0, g.rows-1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			t := &g.tiles[row*g.cols+col]
			t.indices = append(t.indices, index)
		}
	}
}

// query returns the candidates of the tile holding cell (x, y)
func (g *tileGrid) query(x, y int) []int {
	if x < 0 || y < 0 {
		return nil
	}
	col, row := x/tileSize, y/tileSize
	if col >= g.cols || row >= g.rows {
		return nil
	}

	return g.tiles[row*g.cols+col].indices
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
