package day03

import "fmt"

// FindMode controls how far FindNonOverlapping searches.
type FindMode int

const (
	// FindFirst stops at the first isolated claim in input order.
	FindFirst FindMode = iota
	// FindAll returns every isolated claim.
	FindAll
)

// ParseFindMode maps "first" and "all" to a FindMode.
func ParseFindMode(s string) (FindMode, error) {
	switch s {
	case "", "first":
		return FindFirst, nil
	case "all":
		return FindAll, nil
	}
	return 0, fmt.Errorf("unknown find mode %q, must be: first or all", s)
}

func (m FindMode) String() string {
	if m == FindAll {
		return "all"
	}
	return "first"
}

// Grid records which claims cover each fabric cell.
type Grid struct {
	claims []Claim
	width  int
	height int
	// cells[row*width+col] holds indexes into claims.
	cells [][]int
}

// Build sizes a grid to the largest extent among claims plus one and
// registers every claim in each cell it covers. Claims are not validated.
func Build(claims []Claim) *Grid {
	width, height := 0, 0
	for _, c := range claims {
		right, bottom := c.MaxExtent()
		width, height = max(width, right), max(height, bottom)
	}
	width++
	height++

	g := &Grid{
		claims: claims,
		width:  width,
		height: height,
		cells:  make([][]int, width*height),
	}
	for i, c := range claims {
		c.Extent(func(row, col int) {
			idx := row*width + col
			g.cells[idx] = append(g.cells[idx], i)
		})
	}
	return g
}

// Size returns the grid's width and height.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// At returns the IDs of the claims covering (row, col).
func (g *Grid) At(row, col int) []int {
	if row < 0 || col < 0 || row >= g.height || col >= g.width {
		return nil
	}
	cell := g.cells[row*g.width+col]
	ids := make([]int, len(cell))
	for i, idx := range cell {
		ids[i] = g.claims[idx].ID
	}
	return ids
}

// CountConflicts counts cells covered by two or more claims.
func (g *Grid) CountConflicts() int {
	n := 0
	for _, cell := range g.cells {
		if len(cell) >= 2 {
			n++
		}
	}
	return n
}

func (g *Grid) isolated(idx int) bool {
	ok := true
	g.claims[idx].Extent(func(row, col int) {
		if !ok {
			return
		}
		cell := g.cells[row*g.width+col]
		ok = len(cell) == 1 && cell[0] == idx
	})
	return ok
}

// FindNonOverlapping returns the claims whose every cell is theirs alone, in
// input order. With FindFirst at most one claim is returned.
func (g *Grid) FindNonOverlapping(mode FindMode) []Claim {
	var found []Claim
	for i, c := range g.claims {
		if !g.isolated(i) {
			continue
		}
		found = append(found, c)
		if mode == FindFirst {
			break
		}
	}
	return found
}
