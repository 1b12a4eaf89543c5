// Package core provides the grid model and match rules for the Cubes puzzle.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCoordinate is returned for out-of-range cell references.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIllegalState is returned when a transition is requested that the
	// current state does not allow (e.g. a match with no moves left).
	ErrIllegalState = errors.New("illegal state transition")
)

// Coord represents a 2D coordinate on the board.
// X is the column, Y is the row; Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbors returns the four orthogonal neighbours of c.
// Coordinates may lie outside the board.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
}

// CellID identifies a board slot for its whole lifetime.
type CellID = uuid.UUID

// Cell is a single board position.
type Cell struct {
	X     int
	Y     int
	Color Color // Valid only when Empty is false
	ID    CellID
	Empty bool
}

// Coord returns the position of the cell.
func (c Cell) Coord() Coord {
	return C(c.X, c.Y)
}

// Drop records a color falling from one row to another within a column
// during a collapse.
type Drop struct {
	X     int
	FromY int
	ToY   int
}

func invalidCoord(x, y int) error {
	return fmt.Errorf("board: %w (%d,%d)", ErrInvalidCoordinate, x, y)
}
