package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Region is a maximal set of same-colored, orthogonally connected cells.
// Cells are kept in discovery order; membership is tracked by cell ID.
type Region struct {
	color   Color
	cells   []Cell
	members mapset.Set[CellID]
}

func newRegion(color Color) Region {
	return Region{
		color:   color,
		members: mapset.New[CellID](),
	}
}

func (r *Region) add(c Cell) {
	r.cells = append(r.cells, c)
	r.members.Put(c.ID)
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.cells)
}

// Color returns the shared color of the region.
func (r Region) Color() Color {
	return r.color
}

// Cells returns a copy of the region's cells as they were when found.
func (r Region) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Coords returns the positions of the region's cells in discovery order.
func (r Region) Coords() []Coord {
	out := make([]Coord, 0, len(r.cells))
	for _, c := range r.cells {
		out = append(out, c.Coord())
	}
	return out
}

// IDs returns the identities of the region's cells in discovery order.
func (r Region) IDs() []CellID {
	out := make([]CellID, 0, len(r.cells))
	for _, c := range r.cells {
		out = append(out, c.ID)
	}
	return out
}

// Contains reports whether the cell with the given ID belongs to the region.
func (r Region) Contains(id CellID) bool {
	return r.members.Has(id)
}

// ContainsCoord reports whether the region covers position c.
func (r Region) ContainsCoord(c Coord) bool {
	for _, cell := range r.cells {
		if cell.X == c.X && cell.Y == c.Y {
			return true
		}
	}
	return false
}

// Columns returns the distinct column indices touched by the region, ascending.
func (r Region) Columns() []int {
	seen := mapset.New[int]()
	var cols []int
	for _, c := range r.cells {
		if seen.Has(c.X) {
			continue
		}
		seen.Put(c.X)
		cols = append(cols, c.X)
	}
	sort.Ints(cols)
	return cols
}
