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

package viewport

// A Nudge is the cursor move needed after a scroll to keep it visible.
type Nudge int

const (
	NudgeNone Nudge = iota
	NudgeUp
	NudgeDown
)

func (n Nudge) String() string {
	switch n {
	case NudgeUp:
		return "up"
	case NudgeDown:
		return "down"
	default:
		return "none"
	}
}

// A Viewport is the window of lines mapped onto the text rows of the screen.
type Viewport struct {
	Top    int // first visible line
	Width  int // visible columns
	Height int // text rows, the command line not included
}

// New returns a viewport of the given size showing the first line.
func New(width, height int) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// Reconcile returns the top line that keeps line visible in a window of
// height rows over a document of total lines. It jumps directly to the
// nearest top that shows line and never leaves [0, max(0, total-height)].
func Reconcile(top, line, total, height int) int {
	if height < 1 {
		height = 1
	}
	if line < top {
		// scroll up
		top = line
	}
	if line-top >= height {
		// scroll down
		top = line - height + 1
	}
	return clip(top, 0, maxTop(total, height))
}

// Reconcile moves Top so that line is visible.
func (v *Viewport) Reconcile(line, total int) {
	v.Top = Reconcile(v.Top, line, total, v.Height)
}

// Bottom returns the last line of the visible band.
func (v *Viewport) Bottom() int {
	return v.Top + max(v.Height, 1) - 1
}

// Visible reports whether line is inside the visible band.
func (v *Viewport) Visible(line int) bool {
	return line >= v.Top && line <= v.Bottom()
}

// Resize changes the size of the viewport. Top is left alone until the
// next Reconcile.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// ScrollUp shows one more line above the window. If the cursor line
// falls below the window as a result it has to move up one line.
func (v *Viewport) ScrollUp(line int) Nudge {
	if v.Top == 0 {
		return NudgeNone
	}
	v.Top--
	if line > v.Bottom() {
		return NudgeUp
	}
	return NudgeNone
}

// ScrollDown shows one more line below the window. If the cursor line
// falls above the window as a result it has to move down one line.
func (v *Viewport) ScrollDown(line, total int) Nudge {
	if v.Top >= maxTop(total, v.Height) {
		return NudgeNone
	}
	v.Top++
	if line < v.Top {
		return NudgeDown
	}
	return NudgeNone
}

func maxTop(total, height int) int {
	return max(0, total-max(height, 1))
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
