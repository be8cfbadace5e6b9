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
	"bufio"
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/timburks/ted/pkg/types"
)

// EscDelay is how long an ESC waits for the rest of an escape sequence
// before it is taken as the Escape key.
const EscDelay = 50 * time.Millisecond

// A Decoder turns the bytes of a terminal in raw mode into key events.
type Decoder struct {
	r     *bufio.Reader
	in    *feed
	delay time.Duration
}

// NewDecoder reads key sequences from r.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderDelay(r, EscDelay)
}

// NewDecoderDelay reads key sequences from r and waits up to delay for
// the bytes that follow an ESC.
func NewDecoderDelay(r io.Reader, delay time.Duration) *Decoder {
	in := newFeed(r)
	return &Decoder{r: bufio.NewReader(in), in: in, delay: delay}
}

// A feed reads r on its own goroutine so that the decoder can wait for
// input with a deadline.
type feed struct {
	chunks  chan []byte
	err     error // set before chunks is closed
	closed  bool
	pending []byte
}

func newFeed(r io.Reader) *feed {
	f := &feed{chunks: make(chan []byte)}
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := r.Read(buf)
			if n > 0 {
				f.chunks <- buf[:n]
			}
			if err != nil {
				f.err = err
				close(f.chunks)
				return
			}
		}
	}()
	return f
}

func (f *feed) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		if f.closed {
			return 0, f.err
		}
		chunk, ok := <-f.chunks
		if !ok {
			f.closed = true
			return 0, f.err
		}
		f.pending = chunk
	}
	n := copy(p, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

// wait reports whether input is available within timeout.
func (f *feed) wait(timeout time.Duration) bool {
	if len(f.pending) > 0 {
		return true
	}
	if f.closed {
		return false
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case chunk, ok := <-f.chunks:
		if !ok {
			f.closed = true
			return false
		}
		f.pending = chunk
		return true
	case <-timer.C:
		return false
	}
}

// csiKeys maps the final byte of a CSI or SS3 sequence to a key.
var csiKeys = map[byte]types.Key{
	'A': types.KeyArrowUp,
	'B': types.KeyArrowDown,
	'C': types.KeyArrowRight,
	'D': types.KeyArrowLeft,
	'H': types.KeyHome,
	'F': types.KeyEnd,
}

// tildeKeys maps the parameter of a "CSI n ~" sequence to a key.
var tildeKeys = map[string]types.Key{
	"1": types.KeyHome,
	"3": types.KeyDelete,
	"4": types.KeyEnd,
	"5": types.KeyPgup,
	"6": types.KeyPgdn,
	"7": types.KeyHome,
	"8": types.KeyEnd,
}

// Next blocks until a complete key has been read.
// End of input is reported as a quit event.
func (d *Decoder) Next() types.Event {
	r, _, err := d.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return types.Event{Type: types.EventQuit}
		}
		return types.Event{Type: types.EventError, Err: err}
	}
	switch {
	case r == 0x1b:
		return d.escape()
	case r == 0x7f:
		return types.KeyEvent(types.KeyBackspace2)
	case r == ' ':
		return types.KeyEvent(types.KeySpace)
	case r < 0x20:
		return types.KeyEvent(types.CtrlKey(byte(r)))
	case r == utf8.RuneError:
		return types.KeyEvent(types.KeyUnsupported)
	default:
		return types.CharEvent(r)
	}
}

// escape decodes what follows an ESC byte. An ESC with nothing behind it
// after the delay is the Escape key itself.
func (d *Decoder) escape() types.Event {
	if d.r.Buffered() == 0 && !d.in.wait(d.delay) {
		return types.KeyEvent(types.KeyEsc)
	}
	next, err := d.r.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return types.KeyEvent(types.KeyEsc)
	}
	d.r.ReadByte()

	var param []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return types.KeyEvent(types.KeyUnsupported)
		}
		switch {
		case b >= '0' && b <= '9' || b == ';':
			param = append(param, b)
		case b == '~':
			if k, ok := tildeKeys[string(param)]; ok {
				return types.KeyEvent(k)
			}
			return types.KeyEvent(types.KeyUnsupported)
		case b >= 0x40 && b <= 0x7e:
			if k, ok := csiKeys[b]; ok {
				return types.KeyEvent(k)
			}
			return types.KeyEvent(types.KeyUnsupported)
		default:
			return types.KeyEvent(types.KeyUnsupported)
		}
	}
}
