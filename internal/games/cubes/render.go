package cubes

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes/core"
)

const (
	cellWidth   = 4 // " ██ " or "[██]" under the cursor
	hudHeight   = 3 // Title, counters, progress bar
	minHUDWidth = 36
)

// cubeColors maps palette colors to screen colors.
var cubeColors = map[core.Color]platformcore.Color{
	core.ColorBlue:   platformcore.ColorBrightBlue,
	core.ColorPurple: platformcore.ColorMagenta,
	core.ColorRed:    platformcore.ColorRed,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorGreen:  platformcore.ColorGreen,
}

// Layout places the board on a screen of a given size.
type Layout struct {
	Box      platformcore.Rect // Board frame including the border
	Cells    platformcore.Rect // Area covered by cells
	CellW    int
	CellH    int // 2 when the screen is tall enough, else 1
	Size     int
	TooSmall bool
}

// LayoutFor computes the board layout for a w×h screen.
func (g *Game) LayoutFor(w, h int) Layout {
	return layoutFor(w, h, g.board.Size())
}

func layoutFor(w, h, size int) Layout {
	l := Layout{Size: size, CellW: cellWidth, CellH: 2}
	if hudHeight+size*l.CellH+2 > h {
		l.CellH = 1
	}

	boardW := size*l.CellW + 2
	boardH := size*l.CellH + 2
	if w < max(boardW, minHUDWidth) || h < hudHeight+boardH {
		l.TooSmall = true
		return l
	}

	l.Box = platformcore.NewRect((w-boardW)/2, hudHeight, boardW, boardH)
	l.Cells = l.Box.Inset(1)
	return l
}

// CellAt maps a screen position to a board coordinate.
func (l Layout) CellAt(px, py int) (core.Coord, bool) {
	if l.TooSmall || !l.Cells.Contains(px, py) {
		return core.Coord{}, false
	}
	return core.C((px-l.Cells.X)/l.CellW, (py-l.Cells.Y)/l.CellH), true
}

// CellRect returns the screen area of board cell c.
func (l Layout) CellRect(c core.Coord) platformcore.Rect {
	return platformcore.NewRect(l.Cells.X+c.X*l.CellW, l.Cells.Y+c.Y*l.CellH, l.CellW, l.CellH)
}

// Render draws the session to the screen with the cursor on the given cell.
func (g *Game) Render(dst *platformcore.Screen, cursor core.Coord) {
	dst.Clear()

	l := g.LayoutFor(dst.Width(), dst.Height())
	if l.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, l)
	g.renderBoard(dst, l, cursor)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorDefault)
}

// renderHUD draws the title, counters and the goal progress bar.
func (g *Game) renderHUD(dst *platformcore.Screen, l Layout) {
	s := g.state
	left, width := l.Box.X, l.Box.W

	dst.DrawTextColored(left, 0, g.Title(), platformcore.ColorBrightWhite)
	high := fmt.Sprintf("High: %d", s.HighScore)
	dst.DrawTextColored(left+width-len(high), 0, high, platformcore.ColorBrightYellow)

	dst.DrawText(left, 1, fmt.Sprintf("Level %d  Score: %d/%d", s.Level, s.Score, s.Goal))
	moves := fmt.Sprintf("Moves: %d", s.Moves)
	movesColor := platformcore.ColorDefault
	if s.Moves <= 2 && s.Phase == core.PhasePlaying {
		movesColor = platformcore.ColorBrightRed
	}
	dst.DrawTextColored(left+width-len(moves), 1, moves, movesColor)

	// Progress bar
	barW := width - 2
	filled := int(s.Progress() * float64(barW))
	dst.Set(left, 2, '[')
	for i := 0; i < barW; i++ {
		if i < filled {
			dst.SetColored(left+1+i, 2, '█', platformcore.ColorGreen)
		} else {
			dst.SetColored(left+1+i, 2, '░', platformcore.ColorGray)
		}
	}
	dst.Set(left+width-1, 2, ']')
}

// renderBoard draws the frame and every cell.
func (g *Game) renderBoard(dst *platformcore.Screen, l Layout, cursor core.Coord) {
	dst.DrawBox(l.Box, platformcore.ColorGray)

	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			cell, err := g.board.Cell(x, y)
			if err != nil {
				continue
			}
			r := l.CellRect(cell.Coord())
			selected := cursor.X == x && cursor.Y == y

			for py := r.Y; py < r.Bottom(); py++ {
				if selected {
					dst.SetColored(r.X, py, '[', platformcore.ColorBrightWhite)
					dst.SetColored(r.Right()-1, py, ']', platformcore.ColorBrightWhite)
				}
				if cell.Empty {
					dst.DrawTextColored(r.X+1, py, "··", platformcore.ColorGray)
					continue
				}
				dst.DrawTextColored(r.X+1, py, "██", cubeColors[cell.Color])
			}
		}
	}
}

// renderOverlays draws the level-cleared and game-over banners.
func (g *Game) renderOverlays(dst *platformcore.Screen, l Layout) {
	s := g.state
	cx, cy := l.Box.Center()

	switch s.Phase {
	case core.PhaseLevelCleared:
		g.drawOverlay(dst, cx, cy, platformcore.ColorBrightGreen,
			fmt.Sprintf("LEVEL %d CLEARED!", s.Level),
			fmt.Sprintf("Score %d / %d", s.Score, s.Goal),
			"Press N to continue",
		)
	case core.PhaseGameOver:
		g.drawOverlay(dst, cx, cy, platformcore.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score %d / %d  High %d", s.Score, s.Goal, s.HighScore),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered boxed banner.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, color platformcore.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
