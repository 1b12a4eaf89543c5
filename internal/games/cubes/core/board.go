package core

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
)

// DefaultBoardSize is the default board dimension.
const DefaultBoardSize = 9

// reshuffleAttempts bounds the random recoloring loop in Reshuffle.
const reshuffleAttempts = 64

// Board is the N×N grid of cells and the only owner of cell mutation.
// Cells are stored in row-major order: index = y*size + x.
type Board struct {
	size   int
	colors int
	rng    *rand.Rand
	cells  []Cell
}

// NewBoard creates an uninitialized board. Call Initialize before use.
// colors is the number of palette colors in play, clamped to [2, ColorCount].
func NewBoard(size, colors int, rng *rand.Rand) *Board {
	if size < 1 {
		size = DefaultBoardSize
	}
	if colors < 2 {
		colors = 2
	}
	if colors > int(ColorCount) {
		colors = int(ColorCount)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Board{
		size:   size,
		colors: colors,
		rng:    rng,
	}
}

// BoardFromRows builds an initialized board from rows of color characters
// (see Color.Char). A '.' marks an empty slot. All rows must have as many
// cells as there are rows.
func BoardFromRows(rows []string, rng *rand.Rand) (*Board, error) {
	b := NewBoard(len(rows), int(ColorCount), rng)
	b.cells = make([]Cell, b.size*b.size)

	for y, row := range rows {
		chars := []rune(row)
		if len(chars) != b.size {
			return nil, fmt.Errorf("board: row %d has %d cells, want %d", y, len(chars), b.size)
		}
		for x, ch := range chars {
			cell := Cell{X: x, Y: y, ID: b.newID()}
			if ch == '.' {
				cell.Empty = true
			} else {
				color, ok := ParseColor(string(ch))
				if !ok {
					return nil, fmt.Errorf("board: unknown color %q at (%d,%d)", ch, x, y)
				}
				cell.Color = color
			}
			b.cells[b.index(x, y)] = cell
		}
	}
	return b, nil
}

// Initialize fills every slot with a fresh cell of random color and a new ID.
func (b *Board) Initialize() {
	b.cells = make([]Cell, b.size*b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			b.cells[b.index(x, y)] = Cell{
				X:     x,
				Y:     y,
				Color: b.randomColor(),
				ID:    b.newID(),
			}
		}
	}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Colors returns how many palette colors are in play.
func (b *Board) Colors() int {
	return b.colors
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*b.size + x
}

// IsInGrid returns true if (x, y) is within the board and the slot exists.
func (b *Board) IsInGrid(x, y int) bool {
	if len(b.cells) != b.size*b.size {
		return false
	}
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Cell returns the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.IsInGrid(x, y) {
		return Cell{}, invalidCoord(x, y)
	}
	return b.cells[b.index(x, y)], nil
}

// IsEmpty reports whether the slot at (x, y) is empty.
func (b *Board) IsEmpty(x, y int) (bool, error) {
	if !b.IsInGrid(x, y) {
		return false, invalidCoord(x, y)
	}
	return b.cells[b.index(x, y)].Empty, nil
}

// SetEmpty marks the slot at (x, y) as empty.
func (b *Board) SetEmpty(x, y int) error {
	if !b.IsInGrid(x, y) {
		return invalidCoord(x, y)
	}
	b.cells[b.index(x, y)].Empty = true
	return nil
}

// SetColor fills the slot at (x, y) with the given color.
func (b *Board) SetColor(x, y int, c Color) error {
	if !b.IsInGrid(x, y) {
		return invalidCoord(x, y)
	}
	if !c.Valid() {
		return fmt.Errorf("board: invalid color %d", c)
	}
	cell := &b.cells[b.index(x, y)]
	cell.Color = c
	cell.Empty = false
	return nil
}

// matches reports whether (x, y) is an in-grid, non-empty cell of the given color.
func (b *Board) matches(x, y int, target Color) bool {
	if !b.IsInGrid(x, y) {
		return false
	}
	cell := b.cells[b.index(x, y)]
	return !cell.Empty && cell.Color == target
}

// FindConnectedRegion collects every cell of color target reachable from
// (x, y) through 4-directional neighbours. The region is empty when the
// origin is out of range, empty, or of another color.
func (b *Board) FindConnectedRegion(x, y int, target Color) Region {
	region := newRegion(target)
	if !b.matches(x, y, target) {
		return region
	}

	visited := intmap.New[int, struct{}](len(b.cells))
	visited.Put(b.index(x, y), struct{}{})
	stack := []Coord{C(x, y)}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region.add(b.cells[b.index(cur.X, cur.Y)])

		for _, n := range cur.Neighbors() {
			if !b.matches(n.X, n.Y, target) {
				continue
			}
			idx := b.index(n.X, n.Y)
			if _, seen := visited.Get(idx); seen {
				continue
			}
			visited.Put(idx, struct{}{})
			stack = append(stack, n)
		}
	}

	return region
}

// CollapseColumn moves the non-empty cells of column x down to the bottom
// edge, keeping their order, and leaves the vacated top slots empty.
func (b *Board) CollapseColumn(x int) ([]Drop, error) {
	if !b.IsInGrid(x, 0) {
		return nil, invalidCoord(x, 0)
	}
	return b.collapse(x), nil
}

func (b *Board) collapse(x int) []Drop {
	var drops []Drop
	write := b.size - 1
	for read := b.size - 1; read >= 0; read-- {
		src := &b.cells[b.index(x, read)]
		if src.Empty {
			continue
		}
		if read != write {
			dst := &b.cells[b.index(x, write)]
			dst.Color = src.Color
			dst.Empty = false
			src.Empty = true
			drops = append(drops, Drop{X: x, FromY: read, ToY: write})
		}
		write--
	}
	return drops
}

// RefillColumn gives every empty slot of column x a fresh random color.
// Returns the refilled coordinates, top to bottom.
func (b *Board) RefillColumn(x int) ([]Coord, error) {
	if !b.IsInGrid(x, 0) {
		return nil, invalidCoord(x, 0)
	}
	return b.refill(x), nil
}

func (b *Board) refill(x int) []Coord {
	var filled []Coord
	for y := 0; y < b.size; y++ {
		cell := &b.cells[b.index(x, y)]
		if !cell.Empty {
			continue
		}
		cell.Color = b.randomColor()
		cell.Empty = false
		filled = append(filled, C(x, y))
	}
	return filled
}

// HasAnyPossibleMove returns true if any two orthogonally adjacent
// non-empty cells share a color.
func (b *Board) HasAnyPossibleMove() bool {
	if !b.IsInGrid(0, 0) {
		return false
	}
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			cell := b.cells[b.index(x, y)]
			if cell.Empty {
				continue
			}
			// Check right neighbor
			if x < b.size-1 && b.matches(x+1, y, cell.Color) {
				return true
			}
			// Check bottom neighbor
			if y < b.size-1 && b.matches(x, y+1, cell.Color) {
				return true
			}
		}
	}
	return false
}

// Reshuffle recolors the whole board until at least one move exists.
// Cell IDs are kept. Returns the number of recoloring attempts made.
func (b *Board) Reshuffle() int {
	if !b.IsInGrid(0, 0) {
		return 0
	}
	for attempt := 1; attempt <= reshuffleAttempts; attempt++ {
		for i := range b.cells {
			b.cells[i].Color = b.randomColor()
			b.cells[i].Empty = false
		}
		if b.HasAnyPossibleMove() {
			return attempt
		}
	}

	// Out of luck: pair the first two cells of the top row.
	if b.size > 1 {
		b.cells[b.index(1, 0)].Color = b.cells[b.index(0, 0)].Color
	}
	return reshuffleAttempts
}

// EmptyCount returns the number of empty slots.
func (b *Board) EmptyCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Empty {
			count++
		}
	}
	return count
}

// String renders the board as rows of color characters, '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size && b.IsInGrid(0, 0); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.size; x++ {
			cell := b.cells[b.index(x, y)]
			if cell.Empty {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(cell.Color.Char())
		}
	}
	return sb.String()
}

func (b *Board) randomColor() Color {
	return Color(b.rng.Intn(b.colors))
}

// newID draws a UUID from the board RNG so seeded boards are reproducible.
func (b *Board) newID() CellID {
	id, err := uuid.NewRandomFromReader(b.rng)
	if err != nil {
		return uuid.New()
	}
	return id
}
