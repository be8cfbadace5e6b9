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
	"errors"
	"fmt"
	"sync"

	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/types"
)

// golisp primitives are global, so evaluations are serialized and the
// commander doing the evaluation is published in active for the duration.
var (
	evalMu sync.Mutex
	active *Commander
)

func init() {
	golisp.MakePrimitiveFunction("left", "*", countImpl("left", func(e Editor, n int) { e.SelectCharLeft(n) }))
	golisp.MakePrimitiveFunction("right", "*", countImpl("right", func(e Editor, n int) { e.SelectCharRight(n) }))
	golisp.MakePrimitiveFunction("up", "*", countImpl("up", func(e Editor, n int) { e.SelectCharUp(n) }))
	golisp.MakePrimitiveFunction("down", "*", countImpl("down", func(e Editor, n int) { e.SelectCharDown(n) }))
	golisp.MakePrimitiveFunction("scroll-up", "*", countImpl("scroll-up", repeated(Editor.ScrollUp)))
	golisp.MakePrimitiveFunction("scroll-down", "*", countImpl("scroll-down", repeated(Editor.ScrollDown)))
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
	golisp.MakePrimitiveFunction("last-line", "0", editorImpl(Editor.GotoLastLine))
	golisp.MakePrimitiveFunction("insert-mode", "0", modeImpl(types.ModeInsert))
	golisp.MakePrimitiveFunction("command-mode", "0", modeImpl(types.ModeCommand))
	golisp.MakePrimitiveFunction("lisp-mode", "0", LispModeImpl)
	golisp.MakePrimitiveFunction("quit", "0", modeImpl(types.ModeQuit))
	golisp.MakePrimitiveFunction("yank", "0", YankImpl)
	golisp.MakePrimitiveFunction("paste", "*", PasteImpl)
	golisp.MakePrimitiveFunction("format", "0", FormatImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
}

var errNoEditor = errors.New("no editor is active")

// parseEval evaluates a lisp expression against the editor of c and
// returns the printed value.
func (c *Commander) parseEval(command string) (string, error) {
	evalMu.Lock()
	defer evalMu.Unlock()
	active = c
	defer func() { active = nil }()

	value, err := golisp.ParseAndEval(command)
	if err != nil {
		c.logger.Warn("lisp", zap.String("expr", command), zap.Error(err))
		return "", err
	}
	c.logger.Debug("lisp", zap.String("expr", command))
	if value == nil {
		return "", nil
	}
	return golisp.String(value), nil
}

// Eval evaluates a lisp expression against the editor, as the eval
// command does, and returns the printed value.
func (c *Commander) Eval(expr string) (string, error) {
	value, err := c.parseEval(expr)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", expr, err)
	}
	return value, nil
}

func currentEditor() (Editor, error) {
	if active == nil {
		return nil, errNoEditor
	}
	return active.editor, nil
}

// count returns the optional integer argument of a primitive.
func count(name string, args *golisp.Data) (int, error) {
	if args == nil {
		return 1, nil
	}
	val := golisp.Car(args)
	if val == nil {
		return 1, nil
	}
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

func countImpl(name string, f func(e Editor, n int)) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e, err := currentEditor()
		if err != nil {
			return nil, err
		}
		n, err := count(name, args)
		if err != nil {
			return nil, err
		}
		f(e, n)
		return nil, nil
	}
}

func repeated(f func(Editor)) func(Editor, int) {
	return func(e Editor, n int) {
		for i := 0; i < max(n, 1); i++ {
			f(e)
		}
	}
}

func editorImpl(f func(Editor)) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e, err := currentEditor()
		if err != nil {
			return nil, err
		}
		f(e)
		return nil, nil
	}
}

func modeImpl(m types.Mode) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return editorImpl(func(e Editor) { e.ChangeMode(m) })
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto-line requires an integer argument")
	}
	e.GotoLine(int(golisp.IntegerValue(val)))
	return nil, nil
}

// LispModeImpl opens the lisp prompt with the opening parenthesis typed.
func LispModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	e.ChangeMode(types.ModeLisp)
	e.PushChar('(')
	return nil, nil
}

func YankImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	return nil, e.Yank()
}

// PasteImpl inserts the clipboard text, repeated by the optional count.
func PasteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	n, err := count("paste", args)
	if err != nil {
		return nil, err
	}
	return nil, e.Paste(n)
}

func FormatImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	return nil, e.Format()
}

// CursorImpl returns the cursor position as "row,col", counting from zero.
func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	cursor := e.Cursor()
	return golisp.StringWithValue(fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)), nil
}
