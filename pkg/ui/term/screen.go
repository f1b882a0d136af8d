package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/conclave-media/videogrid/pkg/grid"
	"github.com/conclave-media/videogrid/pkg/gridview"
)

// Screen hosts the grid on a tcell screen. It implements both
// gridview.Container and gridview.SurfaceFactory: tiles are regions of the
// terminal, chrome (borders, names, initials) is drawn here, and video
// lands in each tile's Surface.
//
// Container methods must run on the UI event loop; only surfaces are
// touched from other goroutines.
type Screen struct {
	ctx   *Context
	rows  int
	cols  int
	tiles map[*Surface]tileState

	borderStyle tcell.Style
	labelStyle  tcell.Style
	accentStyle tcell.Style
}

type tileState struct {
	pos   grid.Position
	label gridview.Label
}

// NewScreen creates a grid host over the given rendering context.
func NewScreen(ctx *Context) *Screen {
	return &Screen{
		ctx:         ctx,
		rows:        1,
		cols:        1,
		tiles:       make(map[*Surface]tileState),
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		labelStyle:  tcell.StyleDefault,
		accentStyle: tcell.StyleDefault.Bold(true),
	}
}

// Context returns the shared rendering context surfaces draw through.
func (s *Screen) Context() *Context {
	return s.ctx
}

// NewSurface allocates a surface for one tile.
func (s *Screen) NewSurface() (gridview.Surface, error) {
	return &Surface{}, nil
}

// SetDimensions applies new row/column counts. The whole screen is redrawn
// from scratch by the Place calls that follow.
func (s *Screen) SetDimensions(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	s.rows = rows
	s.cols = cols
	s.tiles = make(map[*Surface]tileState)
	s.ctx.Clear()
}

// Place positions a surface at a cell and draws its chrome.
func (s *Screen) Place(surface gridview.Surface, pos grid.Position, label gridview.Label) {
	termSurface, ok := surface.(*Surface)
	if !ok {
		return
	}

	s.tiles[termSurface] = tileState{pos: pos, label: label}

	outer := s.cellRect(pos)
	s.drawBorder(outer, label)
	if !label.HasVideo {
		s.drawInitials(outer, label.Initials)
	}
	termSurface.setBounds(videoRect(outer))
	s.ctx.Flush()
}

// Remove takes a surface out of the screen. The vacated cells are cleaned
// up by the full redraw of the next layout pass.
func (s *Screen) Remove(surface gridview.Surface) {
	termSurface, ok := surface.(*Surface)
	if !ok {
		return
	}
	delete(s.tiles, termSurface)
}

// Clear removes every tile and erases the screen.
func (s *Screen) Clear() {
	s.tiles = make(map[*Surface]tileState)
	s.ctx.Clear()
	s.ctx.Flush()
}

// PositionAt maps screen coordinates to a grid cell for click dispatch.
func (s *Screen) PositionAt(x, y int) (grid.Position, bool) {
	width, height := s.ctx.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		return grid.Position{}, false
	}
	cellW := width / s.cols
	cellH := height / s.rows
	if cellW < 1 || cellH < 1 {
		return grid.Position{}, false
	}
	pos := grid.Position{Row: y / cellH, Col: x / cellW}
	if pos.Row >= s.rows || pos.Col >= s.cols {
		return grid.Position{}, false
	}
	return pos, true
}

// cellRect computes the outer rect of a grid cell.
func (s *Screen) cellRect(pos grid.Position) rect {
	width, height := s.ctx.Size()
	cellW := width / s.cols
	cellH := height / s.rows
	return rect{x: pos.Col * cellW, y: pos.Row * cellH, w: cellW, h: cellH}
}

// videoRect is the area inside the border, minus the caption line.
func videoRect(outer rect) rect {
	inner := rect{x: outer.x + 1, y: outer.y + 1, w: outer.w - 2, h: outer.h - 2}
	if inner.w < 0 {
		inner.w = 0
	}
	if inner.h < 0 {
		inner.h = 0
	}
	return inner
}

// drawBorder draws the tile frame with the display name as a caption on
// the bottom edge.
func (s *Screen) drawBorder(b rect, label gridview.Label) {
	if b.w < 2 || b.h < 2 {
		return
	}

	x2 := b.x + b.w - 1
	y2 := b.y + b.h - 1

	s.ctx.SetCell(b.x, b.y, '┌', s.borderStyle)
	s.ctx.SetCell(x2, b.y, '┐', s.borderStyle)
	s.ctx.SetCell(b.x, y2, '└', s.borderStyle)
	s.ctx.SetCell(x2, y2, '┘', s.borderStyle)
	for x := b.x + 1; x < x2; x++ {
		s.ctx.SetCell(x, b.y, '─', s.borderStyle)
		s.ctx.SetCell(x, y2, '─', s.borderStyle)
	}
	for y := b.y + 1; y < y2; y++ {
		s.ctx.SetCell(b.x, y, '│', s.borderStyle)
		s.ctx.SetCell(x2, y, '│', s.borderStyle)
	}

	caption := label.Name
	maxCaption := b.w - 4
	if caption != "" && maxCaption > 0 {
		caption = runewidth.Truncate(caption, maxCaption, "…")
		cx := b.x + 2
		for _, r := range caption {
			s.ctx.SetCell(cx, y2, r, s.labelStyle)
			cx += runewidth.RuneWidth(r)
		}
	}
}

// drawInitials centers the initials in the tile for audio-only tracks.
func (s *Screen) drawInitials(b rect, initials string) {
	if initials == "" {
		return
	}
	width := runewidth.StringWidth(initials)
	cx := b.x + (b.w-width)/2
	cy := b.y + b.h/2
	if cx < b.x+1 {
		cx = b.x + 1
	}
	for _, r := range initials {
		s.ctx.SetCell(cx, cy, r, s.accentStyle)
		cx += runewidth.RuneWidth(r)
	}
}
