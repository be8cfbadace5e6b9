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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ted/pkg/document"
	"github.com/timburks/ted/pkg/types"
)

func color(c types.Color) *types.Color {
	return &c
}

func TestBuild(t *testing.T) {
	g := Build("ab\ncdefgh\n\tx", 4, 3)
	require.Len(t, g.Cells, 12)
	assert.Equal(t, "ab  ", g.Row(0))
	assert.Equal(t, "cdef", g.Row(1), "long lines are clipped at the row width")
	assert.Equal(t, " x  ", g.Row(2), "tabs take one blank cell")
	assert.Equal(t, types.ColorDefault, g.At(1, 2).Fg)
	assert.Equal(t, types.ColorDefault, g.At(1, 2).Bg)
}

func TestBuildDropsRowsPastCapacity(t *testing.T) {
	g := Build("one\ntwo\nthree\n", 5, 2)
	require.Len(t, g.Cells, 10)
	assert.Equal(t, "one  ", g.Row(0))
	assert.Equal(t, "two  ", g.Row(1))

	g = Build("anything", 0, 0)
	assert.Empty(t, g.Cells)
	assert.Equal(t, "", g.Serialize())
}

func TestSerializeCoalescesRuns(t *testing.T) {
	g := Build("abcdefghi", 9, 1)
	g.Overlay(types.Point{Col: 0}, types.Point{Col: 3}, color(types.ColorRed), nil)
	g.Overlay(types.Point{Col: 3}, types.Point{Col: 4}, color(types.ColorGreen), color(types.ColorBlue))
	g.Overlay(types.Point{Col: 4}, types.Point{Col: 9}, color(types.ColorYellow), nil)

	out := g.Serialize()
	assert.Equal(t, 3, strings.Count(out, "\x1b["))
	assert.Equal(t, "\x1b[31;49mabc\x1b[32;44md\x1b[33;49mefghi \r\n", out)
	assert.Equal(t, out, g.Serialize(), "serializing twice gives the same bytes")
}

func TestSerializeCarriesStyleAcrossRows(t *testing.T) {
	g := Build("ab\ncd", 2, 2)
	g.Overlay(types.Point{Row: 0, Col: 1}, types.Point{Row: 1, Col: 1}, nil, color(types.ColorBlue))
	assert.Equal(t, "a\x1b[39;44mb \r\nc\x1b[39;49md \r\n", g.Serialize())
}

func TestSerializeDefaultGridHasNoEscapes(t *testing.T) {
	g := Build("x\ny", 3, 2)
	assert.Equal(t, "x   \r\ny   \r\n", g.Serialize())
}

func TestSerializeStopsWideRunesAtTheEdge(t *testing.T) {
	g := Build("世界x", 4, 1)
	assert.Equal(t, "世界 \r\n", g.Serialize())
}

func TestBuildGivesWideRunesTwoCells(t *testing.T) {
	g := Build("世x\na界", 3, 2)
	assert.Equal(t, '世', g.At(0, 0).Ch)
	assert.Equal(t, rune(0), g.At(0, 1).Ch, "the second cell is covered by the wide rune")
	assert.Equal(t, 'x', g.At(0, 2).Ch)
	assert.Equal(t, "世x", g.Row(0))
	assert.Equal(t, "a界", g.Row(1))
	assert.Equal(t, "世x \r\na界 \r\n", g.Serialize())

	g = Build("a世b", 2, 1)
	assert.Equal(t, "a ", g.Row(0), "a wide rune that does not fit ends the row")

	g = Build("世界", 4, 1)
	g.Overlay(types.Point{Col: 2}, types.Point{Col: 4}, nil, color(types.ColorBlue))
	assert.Equal(t, "世\x1b[39;44m界 \r\n", g.Serialize())
}

func TestSelectionBackgroundWinsOverSyntax(t *testing.T) {
	g := Build("func main", 9, 1)
	start, end := types.Point{Col: 0}, types.Point{Col: 4}
	g.Overlay(start, end, color(types.ColorBlue), nil)
	g.Overlay(start, end, nil, color(types.ColorLightBlack))
	for col := 0; col < 4; col++ {
		assert.Equal(t, types.ColorBlue, g.At(0, col).Fg)
		assert.Equal(t, types.ColorLightBlack, g.At(0, col).Bg)
	}
	assert.Equal(t, types.ColorDefault, g.At(0, 4).Bg)
}

func TestOverlayClipping(t *testing.T) {
	g := Build("", 4, 3)
	bg := color(types.ColorRed)

	g.Overlay(types.Point{Row: 0, Col: 2}, types.Point{Row: 0, Col: 10}, nil, bg)
	assert.Equal(t, types.ColorRed, g.At(0, 3).Bg)
	assert.Equal(t, types.ColorDefault, g.At(1, 0).Bg, "end column is clamped to the row")

	g = Build("", 4, 3)
	g.Overlay(types.Point{Row: -2, Col: 1}, types.Point{Row: 0, Col: 1}, nil, bg)
	assert.Equal(t, types.ColorRed, g.At(0, 0).Bg, "rows above the window start at the first cell")
	assert.Equal(t, types.ColorDefault, g.At(0, 1).Bg)

	g = Build("", 4, 3)
	g.Overlay(types.Point{Row: 2, Col: 3}, types.Point{Row: 7, Col: 0}, nil, bg)
	assert.Equal(t, types.ColorRed, g.At(2, 3).Bg)

	g = Build("", 4, 3)
	g.Overlay(types.Point{Row: 1, Col: 2}, types.Point{Row: 1, Col: 1}, nil, bg)
	for _, c := range g.Cells {
		assert.Equal(t, types.ColorDefault, c.Bg, "inverted ranges are empty")
	}
}

func TestPoints(t *testing.T) {
	d := document.New("ab\ncd\nef")
	start, end := Points(d, 1, 3, 5)
	assert.Equal(t, types.Point{Row: 0, Col: 0}, start)
	assert.Equal(t, types.Point{Row: 0, Col: 2}, end)

	start, end = Points(d, 1, 1, 7)
	assert.Equal(t, types.Point{Row: -1, Col: 1}, start)
	assert.Equal(t, types.Point{Row: 1, Col: 1}, end)
}

func TestPointsCountCells(t *testing.T) {
	d := document.New("a世界b\nc")
	start, end := Points(d, 0, 1, 3)
	assert.Equal(t, types.Point{Row: 0, Col: 1}, start)
	assert.Equal(t, types.Point{Row: 0, Col: 5}, end, "wide runes before the offset count twice")
	assert.Equal(t, types.Point{Row: 1, Col: 0}, Point(d, 0, 5))
}

func TestSGR(t *testing.T) {
	assert.Equal(t, "\x1b[39;49m", SGR(types.ColorDefault, types.ColorDefault))
	assert.Equal(t, "\x1b[91;46m", SGR(types.ColorLightRed, types.ColorCyan))
	assert.Equal(t, "\x1b[38;5;208;48;5;17m", SGR(208, 17))
	assert.Equal(t, "\x1b[0m", Reset())
}
