// Package terminal is a text-mode viewer for the tank built on tcell. Each
// character cell covers one column and two rows of the camera viewport,
// which roughly corrects for cells being twice as tall as they are wide.
package terminal

import "github.com/gdamore/tcell/v2"

// Cell is one character of a frame.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is an off-screen character grid. Composing into a Frame keeps the
// drawing logic independent of a live terminal.
type Frame struct {
	Cols, Rows int
	Cells      []Cell
}

// Resize reallocates the grid when the terminal size changes.
func (f *Frame) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	f.Cols, f.Rows = cols, rows
	if cap(f.Cells) >= cols*rows {
		f.Cells = f.Cells[:cols*rows]
	} else {
		f.Cells = make([]Cell, cols*rows)
	}
}

// Clear fills the grid with blanks in the given style.
func (f *Frame) Clear(style tcell.Style) {
	for i := range f.Cells {
		f.Cells[i] = Cell{Rune: ' ', Style: style}
	}
}

// Set writes one cell. Out-of-range positions are ignored.
func (f *Frame) Set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return
	}
	f.Cells[row*f.Cols+col] = Cell{Rune: r, Style: style}
}

// SetRune replaces a cell's rune and foreground, keeping its background.
func (f *Frame) SetRune(col, row int, r rune, fg tcell.Color, bold bool) {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return
	}
	c := &f.Cells[row*f.Cols+col]
	c.Rune = r
	c.Style = c.Style.Foreground(fg).Bold(bold)
}

// At returns the cell at (col, row), or a zero Cell when out of range.
func (f *Frame) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= f.Cols || row >= f.Rows {
		return Cell{}
	}
	return f.Cells[row*f.Cols+col]
}

// Text writes s left to right starting at (col, row), clipped to the grid.
func (f *Frame) Text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(col, row, r, style)
		col++
	}
}

// Blit copies the frame to a screen. The caller calls Show.
func (f *Frame) Blit(s tcell.Screen) {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			c := f.Cells[row*f.Cols+col]
			s.SetContent(col, row, c.Rune, nil, c.Style)
		}
	}
}
