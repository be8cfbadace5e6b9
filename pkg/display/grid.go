//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package display

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/ted/pkg/types"
)

// A Cell is one character position on the screen. A wide character
// fills its own cell and the next one, which holds Ch == 0.
type Cell struct {
	Ch rune
	Fg types.Color
	Bg types.Color
}

var blank = Cell{Ch: ' ', Fg: types.ColorDefault, Bg: types.ColorDefault}

// A Grid is a fixed width*height block of cells in row-major order.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewGrid returns a grid of blank cells.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range g.Cells {
		g.Cells[i] = blank
	}
	return g
}

// CellWidth returns the number of cells r takes: 2 for wide characters,
// 1 for everything else. Tabs, control and zero-width characters are
// drawn as a single blank.
func CellWidth(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// Width returns the number of cells s takes on one row.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += CellWidth(r)
	}
	return w
}

// Build fills a new grid with text. A newline moves to the start of the
// next row. Characters that do not fit in a row are dropped up to the next
// newline and characters past the last row are dropped.
func Build(text string, width, height int) *Grid {
	g := NewGrid(width, height)
	row, col := 0, 0
	for _, r := range text {
		if row >= g.Height {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		w := CellWidth(r)
		if col+w > g.Width {
			col = g.Width
			continue
		}
		if r == '\t' || unicode.IsControl(r) || runewidth.RuneWidth(r) == 0 {
			r = ' '
		}
		g.Cells[row*g.Width+col].Ch = r
		if w == 2 {
			g.Cells[row*g.Width+col+1].Ch = 0
		}
		col += w
	}
	return g
}

// At returns the cell at row, col.
func (g *Grid) At(row, col int) Cell {
	return g.Cells[row*g.Width+col]
}

// Row returns the characters of one row.
func (g *Grid) Row(row int) string {
	var b strings.Builder
	for _, c := range g.Cells[row*g.Width : (row+1)*g.Width] {
		if c.Ch != 0 {
			b.WriteRune(c.Ch)
		}
	}
	return b.String()
}

// Overlay styles the cells from start up to but not including end.
// Columns are clamped to the row width and the range is clipped to the
// grid. A nil color leaves that channel alone.
func (g *Grid) Overlay(start, end types.Point, fg, bg *types.Color) {
	from := clip(g.index(start), 0, len(g.Cells))
	to := clip(g.index(end), 0, len(g.Cells))
	for i := from; i < to; i++ {
		if fg != nil {
			g.Cells[i].Fg = *fg
		}
		if bg != nil {
			g.Cells[i].Bg = *bg
		}
	}
}

func (g *Grid) index(p types.Point) int {
	if p.Row < 0 {
		return 0
	}
	return p.Row*g.Width + clip(p.Col, 0, g.Width)
}

// Serialize renders the grid as an escape stream. Each row is followed by
// a pad space and a carriage return / newline pair. The style state starts
// at the terminal default and carries from one row to the next.
// The second cell of a wide character is covered by the character and
// writes nothing.
func (g *Grid) Serialize() string {
	var b strings.Builder
	b.Grow(len(g.Cells) + g.Height*3)
	fg, bg := types.ColorDefault, types.ColorDefault
	for row := 0; row < g.Height; row++ {
		for _, c := range g.Cells[row*g.Width : (row+1)*g.Width] {
			if c.Ch == 0 {
				continue
			}
			if c.Fg != fg || c.Bg != bg {
				b.WriteString(SGR(c.Fg, c.Bg))
				fg, bg = c.Fg, c.Bg
			}
			b.WriteRune(c.Ch)
		}
		b.WriteString(" \r\n")
	}
	return b.String()
}

func clip(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
