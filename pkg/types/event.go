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

package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventQuit   = 3
)

// A Key is a non-character key. Character keys arrive with Key == 0 and Ch set.
type Key uint16

const (
	KeyUnsupported Key = iota + 1
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

// ctrlKeys maps control bytes 0x01..0x1a onto keys. Tab, Enter and Backspace
// share their bytes with Ctrl-I, Ctrl-M and Ctrl-H and are reported as such.
var ctrlKeys = [27]Key{
	0x01: KeyCtrlA, 0x02: KeyCtrlB, 0x03: KeyCtrlC, 0x04: KeyCtrlD,
	0x05: KeyCtrlE, 0x06: KeyCtrlF, 0x07: KeyCtrlG, 0x08: KeyBackspace2,
	0x09: KeyTab, 0x0a: KeyCtrlJ, 0x0b: KeyCtrlK, 0x0c: KeyCtrlL,
	0x0d: KeyEnter, 0x0e: KeyCtrlN, 0x0f: KeyCtrlO, 0x10: KeyCtrlP,
	0x11: KeyCtrlQ, 0x12: KeyCtrlR, 0x13: KeyCtrlS, 0x14: KeyCtrlT,
	0x15: KeyCtrlU, 0x16: KeyCtrlV, 0x17: KeyCtrlW, 0x18: KeyCtrlX,
	0x19: KeyCtrlY, 0x1a: KeyCtrlZ,
}

// CtrlKey returns the key for a control byte, or KeyUnsupported.
func CtrlKey(b byte) Key {
	if int(b) < len(ctrlKeys) && ctrlKeys[b] != 0 {
		return ctrlKeys[b]
	}
	return KeyUnsupported
}

// An Event is a decoded terminal event.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size  // set for EventResize
	Err  error // set for EventError
}

// KeyEvent returns a key event for a non-character key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// CharEvent returns a key event for a character.
func CharEvent(ch rune) Event {
	return Event{Type: EventKey, Ch: ch}
}
