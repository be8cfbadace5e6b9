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
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/ted/pkg/types"
)

func TestDecoder(t *testing.T) {
	d := NewDecoder(strings.NewReader("j\x1b[A\x1bOB\x1b[5~\x1b[3~\x1b[Z\x1b\x7f\x03\r\t é\x1b"))
	want := []types.Event{
		types.CharEvent('j'),
		types.KeyEvent(types.KeyArrowUp),
		types.KeyEvent(types.KeyArrowDown),
		types.KeyEvent(types.KeyPgup),
		types.KeyEvent(types.KeyDelete),
		types.KeyEvent(types.KeyUnsupported),
		types.KeyEvent(types.KeyEsc),
		types.KeyEvent(types.KeyBackspace2),
		types.KeyEvent(types.KeyCtrlC),
		types.KeyEvent(types.KeyEnter),
		types.KeyEvent(types.KeyTab),
		types.KeyEvent(types.KeySpace),
		types.CharEvent('é'),
		types.KeyEvent(types.KeyEsc),
		{Type: types.EventQuit},
	}
	for i, w := range want {
		assert.Equal(t, w, d.Next(), "event %d", i)
	}
}

func TestDecoderJoinsSplitSequences(t *testing.T) {
	r, w := io.Pipe()
	d := NewDecoderDelay(r, time.Second)
	go func() {
		w.Write([]byte("\x1b"))
		w.Write([]byte("[A"))
		w.Write([]byte("\x1bO"))
		w.Write([]byte("B"))
		w.Close()
	}()
	assert.Equal(t, types.KeyEvent(types.KeyArrowUp), d.Next())
	assert.Equal(t, types.KeyEvent(types.KeyArrowDown), d.Next())
	assert.Equal(t, types.Event{Type: types.EventQuit}, d.Next())
}

func TestDecoderLoneEscapeTimesOut(t *testing.T) {
	r, w := io.Pipe()
	d := NewDecoderDelay(r, 10*time.Millisecond)
	go func() {
		w.Write([]byte("\x1b"))
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[A"))
		w.Close()
	}()
	assert.Equal(t, types.KeyEvent(types.KeyEsc), d.Next())
	assert.Equal(t, types.CharEvent('['), d.Next())
	assert.Equal(t, types.CharEvent('A'), d.Next())
	assert.Equal(t, types.Event{Type: types.EventQuit}, d.Next())
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestDecoderReportsReadErrors(t *testing.T) {
	e := NewDecoder(failingReader{}).Next()
	assert.Equal(t, types.EventError, e.Type)
	assert.ErrorIs(t, e.Err, errRead)
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	s, err := New("curses", nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestGridSizeKeepsStatusRow(t *testing.T) {
	assert.Equal(t, types.Size{Rows: 23, Cols: 80}, gridSize(80, 24))
	assert.Equal(t, types.Size{Rows: 0, Cols: 0}, gridSize(0, 0))
}
