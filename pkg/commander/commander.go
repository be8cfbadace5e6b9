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

package commander

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/types"
)

// Editor is the set of editor operations the commander drives.
type Editor interface {
	Mode() types.Mode
	ChangeMode(m types.Mode)
	PushChar(ch rune)
	PopChar()
	CommandText() string
	ClearCommand()
	SetMessage(msg string)

	SelectCharLeft(n int)
	SelectCharRight(n int)
	SelectCharUp(n int)
	SelectCharDown(n int)
	ScrollUp()
	ScrollDown()
	GotoLine(line int)
	GotoLastLine()
	Cursor() types.Point

	InsertChar(ch rune)
	Backspace()
	Yank() error
	Paste(n int) error
	Format() error
}

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor         Editor
	multiplierText string // multiplier string as it is being entered
	logger         *zap.Logger
}

func New(e Editor, logger *zap.Logger) *Commander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Commander{editor: e, logger: logger}
}

func (c *Commander) IsRunning() bool {
	return c.editor.Mode() != types.ModeQuit
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		c.processKey(event)
	case types.EventError:
		return fmt.Errorf("reading input: %w", event.Err)
	case types.EventQuit:
		c.editor.ChangeMode(types.ModeQuit)
	}
	// resize events need nothing here; the next render reads the new size
	return nil
}

func (c *Commander) processKey(event *types.Event) {
	switch c.editor.Mode() {
	case types.ModeNormal:
		c.processKeyNormalMode(event)
	case types.ModeInsert:
		c.processKeyInsertMode(event)
	case types.ModeCommand:
		c.processKeyCommandMode(event)
	case types.ModeLisp:
		c.processKeyLispMode(event)
	}
}

// eval evaluates a call to one of the editor primitives and shows any
// error on the status line.
func (c *Commander) eval(format string, args ...any) {
	if _, err := c.parseEval(fmt.Sprintf(format, args...)); err != nil {
		c.editor.SetMessage(err.Error())
	}
}

func (c *Commander) processKeyNormalMode(event *types.Event) {
	e := c.editor
	key := event.Key
	ch := event.Ch

	e.SetMessage("")
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.multiplierText = ""
		case types.KeyArrowUp:
			c.eval("(up %d)", c.getMultiplier())
		case types.KeyArrowDown:
			c.eval("(down %d)", c.getMultiplier())
		case types.KeyArrowLeft:
			c.eval("(left %d)", c.getMultiplier())
		case types.KeyArrowRight:
			c.eval("(right %d)", c.getMultiplier())
		case types.KeyCtrlE:
			c.eval("(scroll-down %d)", c.getMultiplier())
		case types.KeyCtrlY:
			c.eval("(scroll-up %d)", c.getMultiplier())
		}
		return
	}
	switch ch {
	//
	// command multipliers are consumed by the next movement
	//
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if len(c.multiplierText) < maxMultiplierDigits {
			c.multiplierText += string(ch)
		}
	case '0':
		if c.multiplierText != "" && len(c.multiplierText) < maxMultiplierDigits {
			c.multiplierText += "0"
		}
	case 'h':
		c.eval("(left %d)", c.getMultiplier())
	case 'j':
		c.eval("(down %d)", c.getMultiplier())
	case 'k':
		c.eval("(up %d)", c.getMultiplier())
	case 'l':
		c.eval("(right %d)", c.getMultiplier())
	case 'G':
		if c.multiplierText == "" {
			c.eval("(last-line)")
		} else {
			c.eval("(goto-line %d)", c.getMultiplier())
		}
	//
	// commands and lisp expressions go to the command line
	//
	case ':':
		c.eval("(command-mode)")
	case '(':
		c.eval("(lisp-mode)")
	case 'i':
		c.eval("(insert-mode)")
	case 'y':
		c.eval("(yank)")
	case 'p':
		c.eval("(paste %d)", c.getMultiplier())
	case 'q':
		c.eval("(quit)")
	}
}

func (c *Commander) processKeyInsertMode(event *types.Event) {
	e := c.editor
	switch event.Key {
	case 0:
		e.InsertChar(event.Ch)
	case types.KeyEsc:
		e.ChangeMode(types.ModeNormal)
	case types.KeyBackspace2, types.KeyDelete:
		e.Backspace()
	case types.KeyTab:
		e.InsertChar(' ')
		for e.Cursor().Col%8 != 0 {
			e.InsertChar(' ')
		}
	case types.KeyEnter:
		e.InsertChar('\n')
	case types.KeySpace:
		e.InsertChar(' ')
	case types.KeyArrowUp:
		e.SelectCharUp(1)
	case types.KeyArrowDown:
		e.SelectCharDown(1)
	case types.KeyArrowLeft:
		e.SelectCharLeft(1)
	case types.KeyArrowRight:
		e.SelectCharRight(1)
	}
}

// editLine handles the keys shared by the command and lisp prompts.
// It returns true when Enter completes the line.
func (c *Commander) editLine(event *types.Event) bool {
	e := c.editor
	switch event.Key {
	case 0:
		e.PushChar(event.Ch)
	case types.KeyEsc:
		e.ClearCommand()
		e.ChangeMode(types.ModeNormal)
	case types.KeyEnter:
		return true
	case types.KeyBackspace2, types.KeyDelete:
		if e.CommandText() == "" {
			e.ChangeMode(types.ModeNormal)
		} else {
			e.PopChar()
		}
	case types.KeySpace:
		e.PushChar(' ')
	}
	return false
}

func (c *Commander) processKeyCommandMode(event *types.Event) {
	if !c.editLine(event) {
		return
	}
	text := c.editor.CommandText()
	c.editor.ClearCommand()
	c.editor.ChangeMode(types.ModeNormal)
	c.performCommand(text)
}

func (c *Commander) processKeyLispMode(event *types.Event) {
	if !c.editLine(event) {
		return
	}
	text := c.editor.CommandText()
	c.editor.ClearCommand()
	// evaluation may change the mode again
	c.editor.ChangeMode(types.ModeNormal)
	result, err := c.parseEval(text)
	if err != nil {
		c.editor.SetMessage(err.Error())
		return
	}
	c.editor.SetMessage(result)
}

func (c *Commander) performCommand(text string) {
	e := c.editor

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}
	if i, err := strconv.Atoi(parts[0]); err == nil {
		e.GotoLine(i)
		return
	}
	switch parts[0] {
	case "q", "quit":
		e.ChangeMode(types.ModeQuit)
	case "$":
		e.GotoLastLine()
	case "cursor":
		cursor := e.Cursor()
		e.SetMessage(fmt.Sprintf("%d,%d", cursor.Row, cursor.Col))
	case "yank":
		if err := e.Yank(); err != nil {
			e.SetMessage(err.Error())
		}
	case "paste":
		if err := e.Paste(1); err != nil {
			e.SetMessage(err.Error())
		}
	case "fmt", "format":
		if err := e.Format(); err != nil {
			e.SetMessage(err.Error())
		}
	case "eval":
		result, err := c.parseEval(strings.Join(parts[1:], " "))
		if err != nil {
			e.SetMessage(err.Error())
		} else {
			e.SetMessage(result)
		}
	default:
		e.SetMessage("unknown command: " + parts[0])
	}
}

// maxMultiplierDigits bounds a typed multiplier; further digits are ignored.
const maxMultiplierDigits = 5

func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 1
	}
	i, err := strconv.Atoi(c.multiplierText)
	c.multiplierText = ""
	if err != nil {
		return 1
	}
	return i
}
