package core

import "github.com/zyedidia/generic/mapset"

// DefaultMinRegion is the smallest region a selection may remove.
const DefaultMinRegion = 2

// MatchKind classifies the result of a selection.
type MatchKind int

const (
	// SelectionInvalid means the selected position was off-board or empty.
	SelectionInvalid MatchKind = iota
	// NoMatch means the region was smaller than the minimum; nothing changed.
	NoMatch
	// MatchResolved means the region was removed, collapsed and refilled.
	MatchResolved
)

// String returns the string representation of a match kind.
func (k MatchKind) String() string {
	switch k {
	case SelectionInvalid:
		return "invalid"
	case NoMatch:
		return "no_match"
	case MatchResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// MatchOutcome describes what a selection did to the board.
type MatchOutcome struct {
	Kind     MatchKind
	Origin   Coord
	Region   Region
	Drops    []Drop
	Refilled []Coord
}

// Resolved reports whether the selection removed cells.
func (o MatchOutcome) Resolved() bool {
	return o.Kind == MatchResolved
}

// Size returns the number of cells in the selected region.
func (o MatchOutcome) Size() int {
	return o.Region.Len()
}

// Resolver applies selections to a board: find the region, clear it,
// collapse and refill the affected columns.
type Resolver struct {
	board     *Board
	minRegion int
}

// NewResolver creates a resolver for board. minRegion below 2 is raised to 2.
func NewResolver(board *Board, minRegion int) *Resolver {
	if minRegion < DefaultMinRegion {
		minRegion = DefaultMinRegion
	}
	return &Resolver{
		board:     board,
		minRegion: minRegion,
	}
}

// MinRegion returns the minimum removable region size.
func (r *Resolver) MinRegion() int {
	return r.minRegion
}

// Board returns the board the resolver operates on.
func (r *Resolver) Board() *Board {
	return r.board
}

// AttemptMatch selects the cell at (x, y). The board is only modified when
// the outcome is MatchResolved.
func (r *Resolver) AttemptMatch(x, y int) MatchOutcome {
	out := MatchOutcome{Kind: SelectionInvalid, Origin: C(x, y)}

	cell, err := r.board.Cell(x, y)
	if err != nil || cell.Empty {
		return out
	}

	region := r.board.FindConnectedRegion(x, y, cell.Color)
	out.Region = region
	if region.Len() < r.minRegion {
		out.Kind = NoMatch
		return out
	}

	for _, c := range region.cells {
		r.board.cells[r.board.index(c.X, c.Y)].Empty = true
	}
	for _, col := range region.Columns() {
		out.Drops = append(out.Drops, r.board.collapse(col)...)
		out.Refilled = append(out.Refilled, r.board.refill(col)...)
	}

	out.Kind = MatchResolved
	return out
}

// HasPlayableRegion reports whether some region of at least the minimum
// size exists. For the default minimum this is Board.HasAnyPossibleMove.
func (r *Resolver) HasPlayableRegion() bool {
	if r.minRegion <= DefaultMinRegion {
		return r.board.HasAnyPossibleMove()
	}
	if !r.board.IsInGrid(0, 0) {
		return false
	}

	seen := mapset.New[CellID]()
	for _, cell := range r.board.cells {
		if cell.Empty || seen.Has(cell.ID) {
			continue
		}
		region := r.board.FindConnectedRegion(cell.X, cell.Y, cell.Color)
		if region.Len() >= r.minRegion {
			return true
		}
		region.members.Each(func(id CellID) {
			seen.Put(id)
		})
	}
	return false
}
