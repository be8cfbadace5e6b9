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

// Package types holds the small values shared by every ted package.
package types

// Editor modes
type Mode int

const (
	ModeNormal  Mode = 0
	ModeInsert  Mode = 1
	ModeCommand Mode = 2
	ModeLisp    Mode = 3
	ModeQuit    Mode = 9999
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	case ModeLisp:
		return "lisp"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}
