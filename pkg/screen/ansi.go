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
	"os"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/types"
)

// ANSI drives the terminal directly with escape sequences.
type ANSI struct {
	*display.ANSI
	in      *os.File
	out     *os.File
	state   *term.State
	decoder *Decoder
	logger  *zap.Logger
}

// NewANSI puts the terminal in raw mode and switches to the alternate screen.
func NewANSI(logger *zap.Logger) (*ANSI, error) {
	in, out := os.Stdin, os.Stdout
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	a := &ANSI{
		ANSI:    display.NewANSI(out, types.Size{}),
		in:      in,
		out:     out,
		state:   state,
		decoder: NewDecoder(in),
		logger:  logger,
	}
	a.Size()
	fmt.Fprint(out, termenv.CSI+termenv.AltScreenSeq+termenv.CSI+fmt.Sprintf(termenv.EraseDisplaySeq, 2))
	return a, nil
}

// Size queries the terminal so that a resized window is picked up by the
// next frame. The last column is left free for the line padding.
func (a *ANSI) Size() types.Size {
	w, h, err := term.GetSize(int(a.out.Fd()))
	if err != nil {
		a.logger.Debug("reading terminal size", zap.Error(err))
		return a.ANSI.Size()
	}
	size := gridSize(w, h)
	size.Cols = max(size.Cols-1, 0)
	a.Resize(size)
	return size
}

func (a *ANSI) PollEvent() types.Event {
	return a.decoder.Next()
}

// Close leaves the alternate screen and restores the terminal mode.
func (a *ANSI) Close() error {
	fmt.Fprint(a.out, termenv.CSI+termenv.ResetSeq+"m"+termenv.CSI+termenv.ShowCursorSeq+termenv.CSI+termenv.ExitAltScreenSeq)
	if err := term.Restore(int(a.in.Fd()), a.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}
