package core

import (
	"strings"
	"unicode/utf8"
)

// Style describes how a cell is drawn. Colors use lipgloss notation
// ("#rrggbb" or an ANSI index); empty means terminal default.
type Style struct {
	Fg   string
	Bg   string
	Bold bool
}

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer. Views draw into it with plain rune and
// text operations and the platform converts it to terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetStyled(x, y, r, Style{})
}

// SetStyled places a rune with a style at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Style: st}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, Style{})
}

// DrawStyledText writes a styled string horizontally starting at (x, y).
func (s *Screen) DrawStyledText(x, y int, text string, st Style) {
	col := 0
	for _, r := range text {
		s.SetStyled(x+col, y, r, st)
		col++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, st Style) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawStyledText(x, y, text, st)
}

// FillRect fills a rectangular area with the given rune and style.
func (s *Screen) FillRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.SetStyled(r.X, r.Y, '┌', st)
	s.SetStyled(r.Right()-1, r.Y, '┐', st)
	s.SetStyled(r.X, r.Bottom()-1, '└', st)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', st)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', st)
		s.SetStyled(x, r.Bottom()-1, '─', st)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', st)
		s.SetStyled(r.Right()-1, y, '│', st)
	}
}

// String converts the screen buffer to plain text, ignoring styles.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
