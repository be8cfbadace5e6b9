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
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/timburks/ted/pkg/types"
)

// A Frame is everything drawn for one processed event.
type Frame struct {
	Grid   *Grid
	Status string      // command line, drawn below the grid
	Cursor types.Point // screen position of the terminal cursor
}

// A Display receives frames.
type Display interface {
	// Size returns the size of the grid the display can draw.
	Size() types.Size
	// Write draws a frame.
	Write(f *Frame) error
}

const bufferSize = 1 << 20

// ANSI is a Display that writes escape sequences to a terminal.
type ANSI struct {
	w    *bufio.Writer
	size types.Size
}

// NewANSI returns a display writing to w. size is the drawable grid, which
// leaves one column for the row padding and one row for the status line.
func NewANSI(w io.Writer, size types.Size) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, bufferSize), size: size}
}

func (a *ANSI) Size() types.Size {
	return a.size
}

// Resize changes the grid size reported by Size.
func (a *ANSI) Resize(size types.Size) {
	a.size = size
}

// Write draws the grid from the top-left corner, then the status line,
// then places the cursor.
func (a *ANSI) Write(f *Frame) error {
	a.w.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1))
	a.w.WriteString(f.Grid.Serialize())
	a.w.WriteString(Reset())
	a.w.WriteString(runewidth.Truncate(f.Status, a.size.Cols, ""))
	a.w.WriteString(termenv.CSI + termenv.EraseLineRightSeq)
	a.w.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, f.Cursor.Row+1, f.Cursor.Col+1))
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
