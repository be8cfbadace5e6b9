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

package selection

// Text is the view of a document that selections move over.
type Text interface {
	LenChars() int
	LenLines() int
	CharToLine(offset int) int
	LineToChar(line int) int
	LineLen(line int) int
	IsLastLine(line int) bool
}

// A Selection covers the characters in [Start, End).
type Selection struct {
	Start int
	End   int

	goal    int  // column remembered across vertical moves
	span    int  // width remembered across vertical moves
	hasGoal bool // true while goal and span are valid
}

// New returns a selection over [start, end); an inverted range collapses to start.
func New(start, end int) Selection {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Selection{Start: start, End: end}
}

// Width returns the number of selected characters.
func (s *Selection) Width() int {
	return s.End - s.Start
}

// Goal returns the remembered column, if any.
func (s *Selection) Goal() (int, bool) {
	return s.goal, s.hasGoal
}

// Clamp keeps the selection inside a document of length n.
func (s *Selection) Clamp(n int) {
	s.Start = clip(s.Start, 0, n)
	s.End = clip(s.End, s.Start, n)
}

// MoveLeft shifts the selection one character left.
// It returns false if the selection is already at the start of the text.
func (s *Selection) MoveLeft(t Text) bool {
	if s.forget(t) {
		return true
	}
	if s.Start == 0 {
		return false
	}
	s.Start--
	s.End--
	return true
}

// MoveRight shifts the selection one character right.
// It returns false if the selection already ends at the end of the text.
func (s *Selection) MoveRight(t Text) bool {
	s.forget(t)
	if s.End >= t.LenChars() {
		return false
	}
	s.Start++
	s.End++
	return true
}

// forget drops the column memory and gives back any width that was
// clipped at the end of the text, extending leftward. It reports whether
// Start moved.
func (s *Selection) forget(t Text) bool {
	if !s.hasGoal {
		return false
	}
	s.hasGoal = false
	if s.Width() >= s.span {
		return false
	}
	start := s.Start
	s.Start = max(min(s.Start, t.LenChars()-s.span), 0)
	s.End = min(s.Start+s.span, t.LenChars())
	return s.Start != start
}

// MoveDown moves the selection to the next line.
func (s *Selection) MoveDown(t Text) bool {
	return s.moveVertically(t, 1)
}

// MoveUp moves the selection to the previous line.
func (s *Selection) MoveUp(t Text) bool {
	return s.moveVertically(t, -1)
}

func (s *Selection) moveVertically(t Text, delta int) bool {
	line := t.CharToLine(s.Start)
	if !s.hasGoal {
		s.goal = s.Start - t.LineToChar(line)
		s.span = s.Width()
		s.hasGoal = true
	}
	target := line + delta
	if target < 0 || target >= t.LenLines() {
		return false
	}
	// the cursor may rest on a line's newline but not past it;
	// the last line has no newline so its end is a valid position
	lastCol := t.LineLen(target) - 1
	if t.IsLastLine(target) {
		lastCol = t.LineLen(target)
	}
	if lastCol < 0 {
		lastCol = 0
	}
	// the width is kept in span; only the end of the text can shorten it
	s.Start = t.LineToChar(target) + min(s.goal, lastCol)
	s.End = min(s.Start+s.span, t.LenChars())
	return true
}

// Adjust moves the selection to account for an edit at offset that
// inserted delta characters, or removed -delta characters when delta is
// negative. Column memory is cleared.
func (s *Selection) Adjust(offset, delta int) {
	s.hasGoal = false
	s.Start = adjust(s.Start, offset, delta)
	s.End = adjust(s.End, offset, delta)
}

func adjust(p, offset, delta int) int {
	if delta >= 0 {
		if p >= offset {
			return p + delta
		}
		return p
	}
	switch {
	case p <= offset:
		return p
	case p >= offset-delta:
		return p + delta
	default:
		return offset
	}
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
