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

package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/document"
	"github.com/timburks/ted/pkg/highlight"
	"github.com/timburks/ted/pkg/selection"
	"github.com/timburks/ted/pkg/types"
	"github.com/timburks/ted/pkg/viewport"
)

// A Clipboard holds yanked text.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// The Editor owns the document and everything derived from it.
// It is used from a single goroutine.
type Editor struct {
	doc            *document.Document
	name           string // shown on the status line
	selections     *selection.Set
	view           *viewport.Viewport
	provider       highlight.Provider
	theme          *highlight.Theme
	selectionColor types.Color
	display        display.Display
	clipboard      Clipboard
	mode           types.Mode
	command        []rune // command line as it is being typed
	message        string // status message
	logger         *zap.Logger
}

// An Option configures an Editor.
type Option func(*Editor)

// WithName sets the name shown on the status line.
func WithName(name string) Option {
	return func(e *Editor) { e.name = name }
}

func WithProvider(p highlight.Provider) Option {
	return func(e *Editor) { e.provider = p }
}

func WithTheme(t *highlight.Theme) Option {
	return func(e *Editor) { e.theme = t }
}

func WithSelectionColor(c types.Color) Option {
	return func(e *Editor) { e.selectionColor = c }
}

func WithClipboard(c Clipboard) Option {
	return func(e *Editor) { e.clipboard = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// DefaultSelectionColor is the background of selected cells.
const DefaultSelectionColor = types.ColorLightBlack

// New returns an editor showing doc on d.
func New(doc *document.Document, d display.Display, opts ...Option) *Editor {
	size := d.Size()
	e := &Editor{
		doc:            doc,
		selections:     selection.NewSet(doc),
		view:           viewport.New(size.Cols, size.Rows),
		provider:       highlight.None{},
		theme:          highlight.DefaultTheme(),
		selectionColor: DefaultSelectionColor,
		display:        d,
		clipboard:      systemClipboard{},
		mode:           types.ModeNormal,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Document() *document.Document {
	return e.doc
}

func (e *Editor) Selections() *selection.Set {
	return e.selections
}

func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Cursor returns the line and column of the start of the root selection.
func (e *Editor) Cursor() types.Point {
	start := e.selections.Root().Start
	line := e.doc.CharToLine(start)
	return types.Point{Row: line, Col: start - e.doc.LineToChar(line)}
}

func (e *Editor) repeat(n int, move func(selection.Text) bool) {
	for i := 0; i < max(n, 1); i++ {
		if !move(e.doc) {
			return
		}
	}
}

// SelectCharLeft moves the root selection n characters left.
func (e *Editor) SelectCharLeft(n int) {
	e.repeat(n, e.selections.SelectCharLeft)
}

// SelectCharRight moves the root selection n characters right.
func (e *Editor) SelectCharRight(n int) {
	e.repeat(n, e.selections.SelectCharRight)
}

// SelectCharUp moves the root selection n lines up.
func (e *Editor) SelectCharUp(n int) {
	e.repeat(n, e.selections.SelectCharUp)
}

// SelectCharDown moves the root selection n lines down.
func (e *Editor) SelectCharDown(n int) {
	e.repeat(n, e.selections.SelectCharDown)
}

// ScrollUp scrolls the window up one line, moving the cursor if it would
// leave the window.
func (e *Editor) ScrollUp() {
	e.syncSize()
	if e.view.ScrollUp(e.selections.RootLine(e.doc)) == viewport.NudgeUp {
		e.selections.SelectCharUp(e.doc)
	}
}

// ScrollDown scrolls the window down one line, moving the cursor if it
// would leave the window.
func (e *Editor) ScrollDown() {
	e.syncSize()
	if e.view.ScrollDown(e.selections.RootLine(e.doc), e.doc.LenLines()) == viewport.NudgeDown {
		e.selections.SelectCharDown(e.doc)
	}
}

// GotoLine moves the root selection to the start of a line, counting from
// one. Lines past the end go to the last line.
func (e *Editor) GotoLine(line int) {
	line = clip(line, 1, e.doc.LenLines())
	root := e.selections.Root()
	start := e.doc.LineToChar(line - 1)
	*root = selection.New(start, min(start+max(root.Width(), 1), e.doc.LenChars()))
}

// GotoLastLine moves the root selection to the start of the last line.
func (e *Editor) GotoLastLine() {
	e.GotoLine(e.doc.LenLines())
}

func (e *Editor) Mode() types.Mode {
	return e.mode
}

// ChangeMode switches modes. Entering command or lisp mode starts an
// empty command line.
func (e *Editor) ChangeMode(m types.Mode) {
	if m == e.mode {
		return
	}
	e.logger.Debug("mode", zap.Stringer("from", e.mode), zap.Stringer("to", m))
	e.mode = m
	if m == types.ModeCommand || m == types.ModeLisp {
		e.command = e.command[:0]
	}
}

// PushChar appends to the command line.
func (e *Editor) PushChar(ch rune) {
	e.command = append(e.command, ch)
}

// PopChar removes the last character of the command line.
func (e *Editor) PopChar() {
	if len(e.command) > 0 {
		e.command = e.command[:len(e.command)-1]
	}
}

func (e *Editor) CommandText() string {
	return string(e.command)
}

func (e *Editor) ClearCommand() {
	e.command = e.command[:0]
}

func (e *Editor) SetMessage(msg string) {
	e.message = msg
}

func (e *Editor) Message() string {
	return e.message
}

// InsertChar inserts ch before the root selection.
func (e *Editor) InsertChar(ch rune) {
	offset := e.selections.Root().Start
	e.doc.Insert(offset, string(ch))
	e.selections.Adjust(offset, 1)
}

// Backspace deletes the character before the root selection.
func (e *Editor) Backspace() {
	end := e.selections.Root().Start
	if end == 0 {
		return
	}
	e.doc.Delete(end-1, end)
	e.selections.Adjust(end-1, -1)
}

// Yank copies the root selection to the clipboard, or the current line
// when the selection is empty.
func (e *Editor) Yank() error {
	root := e.selections.Root()
	text := e.doc.Slice(root.Start, root.End)
	if text == "" {
		text = e.doc.Line(e.selections.RootLine(e.doc))
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("yank: %w", err)
	}
	e.message = fmt.Sprintf("yanked %d characters", len([]rune(text)))
	return nil
}

// Paste limits. A paste repeats at most MaxPasteCount times and never
// grows the document by more than MaxPasteBytes, though one copy is
// always inserted.
const (
	MaxPasteCount = 1000
	MaxPasteBytes = 16 << 20
)

// Paste inserts the clipboard text n times before the root selection.
func (e *Editor) Paste(n int) error {
	text, err := e.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	n = min(max(n, 1), MaxPasteCount, max(MaxPasteBytes/len(text), 1))
	text = strings.Repeat(text, n)
	offset := e.selections.Root().Start
	e.doc.Insert(offset, text)
	e.selections.Adjust(offset, utf8.RuneCountInString(text))
	return nil
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
