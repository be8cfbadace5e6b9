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

package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/types"
)

// Termbox draws frames with termbox in 256 color mode.
type Termbox struct{}

// NewTermbox opens the terminal.
func NewTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("opening termbox: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Termbox{}, nil
}

func (s *Termbox) Close() error {
	termbox.Close()
	return nil
}

func (s *Termbox) Size() types.Size {
	return gridSize(termbox.Size())
}

func (s *Termbox) Write(f *display.Frame) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	g := f.Grid
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := g.At(row, col)
			if c.Ch == 0 {
				continue
			}
			termbox.SetCell(col, row, c.Ch, attribute(c.Fg), attribute(c.Bg))
		}
	}
	x := 0
	for _, ch := range f.Status {
		w := runewidth.RuneWidth(ch)
		if x+w > g.Width {
			break
		}
		termbox.SetCell(x, g.Height, ch, termbox.ColorDefault, termbox.ColorDefault)
		x += w
	}
	termbox.SetCursor(f.Cursor.Col, f.Cursor.Row)
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing termbox: %w", err)
	}
	return nil
}

func (s *Termbox) PollEvent() types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return types.CharEvent(event.Ch)
		}
		return types.KeyEvent(termboxKey(event.Key))
	case termbox.EventResize:
		termbox.Flush()
		return types.Event{Type: types.EventResize, Size: types.Size{Rows: event.Height, Cols: event.Width}}
	case termbox.EventError:
		return types.Event{Type: types.EventError, Err: event.Err}
	case termbox.EventInterrupt:
		return types.Event{Type: types.EventQuit}
	default:
		return types.KeyEvent(types.KeyUnsupported)
	}
}

// attribute converts a palette color for Output256, where 0 means default.
func attribute(c types.Color) termbox.Attribute {
	if c == types.ColorDefault {
		return termbox.ColorDefault
	}
	return termbox.Attribute(c) + 1
}

func termboxKey(k termbox.Key) types.Key {
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return types.CtrlKey(byte(k))
	}
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	default:
		return types.KeyUnsupported
	}
}
