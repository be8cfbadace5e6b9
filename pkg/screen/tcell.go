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
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/types"
)

// Tcell draws frames on a tcell screen.
type Tcell struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTcell initializes s, or the terminal when s is nil.
func NewTcell(s tcell.Screen) (*Tcell, error) {
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("creating tcell screen: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing tcell screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Tcell{screen: s}, nil
}

func (t *Tcell) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
	return nil
}

func (t *Tcell) Size() types.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return gridSize(t.screen.Size())
}

func (t *Tcell) Write(f *display.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
	g := f.Grid
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := g.At(row, col)
			if c.Ch == 0 {
				continue
			}
			t.screen.SetContent(col, row, c.Ch, nil, style(c.Fg, c.Bg))
		}
	}
	x := 0
	for _, ch := range f.Status {
		w := runewidth.RuneWidth(ch)
		if x+w > g.Width {
			break
		}
		t.screen.SetContent(x, g.Height, ch, nil, tcell.StyleDefault)
		x += w
	}
	t.screen.ShowCursor(f.Cursor.Col, f.Cursor.Row)
	t.screen.Show()
	return nil
}

// PollEvent blocks without holding the lock so that frames can be drawn
// while waiting for input.
func (t *Tcell) PollEvent() types.Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return types.Event{Type: types.EventQuit}
		case *tcell.EventKey:
			return convertKey(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return types.Event{Type: types.EventResize, Size: types.Size{Rows: h, Cols: w}}
		case *tcell.EventError:
			return types.Event{Type: types.EventError, Err: ev}
		}
	}
}

func style(fg, bg types.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

func color(c types.Color) tcell.Color {
	if c == types.ColorDefault {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

// convertKey maps a tcell key event. Control keys share codes with
// Backspace, Tab and Enter, so the control range goes through CtrlKey.
func convertKey(ev *tcell.EventKey) types.Event {
	k := ev.Key()
	if k == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return types.KeyEvent(types.KeySpace)
		}
		return types.CharEvent(ev.Rune())
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return types.KeyEvent(types.CtrlKey(byte(k)))
	}
	switch k {
	case tcell.KeyUp:
		return types.KeyEvent(types.KeyArrowUp)
	case tcell.KeyDown:
		return types.KeyEvent(types.KeyArrowDown)
	case tcell.KeyLeft:
		return types.KeyEvent(types.KeyArrowLeft)
	case tcell.KeyRight:
		return types.KeyEvent(types.KeyArrowRight)
	case tcell.KeyBackspace2:
		return types.KeyEvent(types.KeyBackspace2)
	case tcell.KeyDelete:
		return types.KeyEvent(types.KeyDelete)
	case tcell.KeyHome:
		return types.KeyEvent(types.KeyHome)
	case tcell.KeyEnd:
		return types.KeyEvent(types.KeyEnd)
	case tcell.KeyPgUp:
		return types.KeyEvent(types.KeyPgup)
	case tcell.KeyPgDn:
		return types.KeyEvent(types.KeyPgdn)
	case tcell.KeyEscape:
		return types.KeyEvent(types.KeyEsc)
	default:
		return types.KeyEvent(types.KeyUnsupported)
	}
}
