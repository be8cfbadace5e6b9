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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/selection"
	"github.com/timburks/ted/pkg/types"
)

// syncSize follows the display if it has been resized.
func (e *Editor) syncSize() {
	size := e.display.Size()
	e.view.Resize(size.Cols, size.Rows)
}

// Compose builds the frame for the current state without writing it.
func (e *Editor) Compose() *display.Frame {
	e.syncSize()
	lines := e.doc.LenLines()
	e.view.Reconcile(e.selections.RootLine(e.doc), lines)

	top := e.view.Top
	start := e.doc.LineToChar(top)
	end := e.doc.LineToChar(min(top+e.view.Height, lines))
	grid := display.Build(e.doc.Slice(start, end), e.view.Width, e.view.Height)

	for _, span := range e.provider.Highlight(e.doc.String(), start, end) {
		fg := e.theme.Color(span.Capture)
		if fg == types.ColorDefault {
			continue
		}
		from, to := display.Points(e.doc, top, span.Start, span.End)
		grid.Overlay(from, to, &fg, nil)
	}
	bg := e.selectionColor
	e.selections.Each(func(_ uuid.UUID, sel *selection.Selection) {
		from, to := display.Points(e.doc, top, sel.Start, sel.End)
		grid.Overlay(from, to, nil, &bg)
	})

	return &display.Frame{Grid: grid, Status: e.Status(), Cursor: e.screenCursor()}
}

// Render writes the current frame to the display.
func (e *Editor) Render() error {
	frame := e.Compose()
	e.logger.Debug("render",
		zap.Int("top", e.view.Top),
		zap.Int("line", e.selections.RootLine(e.doc)),
		zap.Stringer("mode", e.mode))
	if err := e.display.Write(frame); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

// Status returns the text of the line below the window.
func (e *Editor) Status() string {
	switch e.mode {
	case types.ModeCommand:
		return ":" + e.CommandText()
	case types.ModeLisp:
		return e.CommandText()
	}
	if e.message != "" {
		return e.message
	}
	cursor := e.Cursor()
	status := fmt.Sprintf("%d,%d", cursor.Row+1, cursor.Col+1)
	if e.name != "" {
		status = e.name + " " + status
	}
	if e.mode == types.ModeInsert {
		status = "-- INSERT -- " + status
	}
	return status
}

// screenCursor returns where the terminal cursor goes: on the command line
// while one is being typed, otherwise on the root selection.
func (e *Editor) screenCursor() types.Point {
	if e.mode == types.ModeCommand || e.mode == types.ModeLisp {
		return types.Point{Row: e.view.Height, Col: display.Width(e.Status())}
	}
	p := display.Point(e.doc, e.view.Top, e.selections.Root().Start)
	p.Col = clip(p.Col, 0, max(e.view.Width-1, 0))
	return p
}
