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

// Package screen connects the editor to a terminal. Three backends are
// available: a raw ANSI writer, termbox and tcell.
package screen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/display"
	"github.com/timburks/ted/pkg/types"
)

// ErrUnknownBackend is returned by New for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown screen backend")

// A Screen draws frames and produces input events.
type Screen interface {
	display.Display
	// PollEvent blocks until an input event is available.
	PollEvent() types.Event
	// Close restores the terminal.
	Close() error
}

// Backends lists the names accepted by New.
var Backends = []string{"ansi", "termbox", "tcell"}

// New opens the terminal with the named backend.
func New(backend string, logger *zap.Logger) (Screen, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("opening screen", zap.String("backend", backend))
	switch backend {
	case "", "ansi":
		return NewANSI(logger)
	case "termbox":
		return NewTermbox()
	case "tcell":
		return NewTcell(nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// gridSize returns the size of the text grid on a terminal of w*h
// characters. The bottom row is kept for the status line.
func gridSize(w, h int) types.Size {
	return types.Size{Rows: max(h-1, 0), Cols: max(w, 0)}
}
