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

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ted/pkg/document"
)

func TestRightCrossesNewline(t *testing.T) {
	d := document.New("ab\ncd\n")
	s := NewSet(d)
	require.Equal(t, Selection{Start: 0, End: 1}, *s.Root())
	for i := 0; i < 3; i++ {
		require.True(t, s.SelectCharRight(d))
	}
	assert.Equal(t, 3, s.Root().Start)
	assert.Equal(t, 4, s.Root().End)
	assert.Equal(t, "c", d.Slice(s.Root().Start, s.Root().End))
}

func TestRightThenLeftRestores(t *testing.T) {
	d := document.New("ab\ncd\n")
	for start := 0; start <= d.LenChars(); start++ {
		for end := start; end <= d.LenChars(); end++ {
			sel := New(start, end)
			moved := sel.MoveRight(d)
			if end == d.LenChars() {
				assert.False(t, moved)
				assert.Equal(t, New(start, end), sel)
				continue
			}
			require.True(t, moved)
			require.True(t, sel.MoveLeft(d))
			assert.Equal(t, start, sel.Start)
			assert.Equal(t, end, sel.End)
		}
	}
}

func TestLeftStopsAtStart(t *testing.T) {
	d := document.New("ab")
	sel := New(0, 1)
	assert.False(t, sel.MoveLeft(d))
	assert.Equal(t, 0, sel.Start)
	assert.Equal(t, 1, sel.End)
}

func TestColumnMemoryThroughShortLine(t *testing.T) {
	// line lengths, counting newlines: 5, 2, 8
	d := document.New("abcd\nx\n12345678")
	sel := New(4, 5)

	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 6, sel.Start, "column min(4, 2-1) on line 1")
	assert.Equal(t, 7, sel.End)
	goal, ok := sel.Goal()
	require.True(t, ok)
	assert.Equal(t, 4, goal)

	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 7+4, sel.Start, "column 4 restored on line 2")
	assert.Equal(t, 12, sel.End)
	goal, _ = sel.Goal()
	assert.Equal(t, 4, goal)
}

func TestVerticalRoundTripOnUniformLines(t *testing.T) {
	d := document.New("abc\ndef\nghi\n")
	for col := 0; col < 4; col++ {
		sel := New(4+col, 5+col)
		require.True(t, sel.MoveDown(d))
		require.True(t, sel.MoveUp(d))
		goal, ok := sel.Goal()
		require.True(t, ok)
		assert.Equal(t, col, goal)
		assert.Equal(t, 4+col, sel.Start)
	}
}

func TestVerticalBoundariesAreNoOps(t *testing.T) {
	d := document.New("abc\ndef")
	sel := New(1, 2)
	assert.False(t, sel.MoveUp(d))
	assert.Equal(t, New(1, 2).Start, sel.Start)

	sel = New(5, 6)
	assert.False(t, sel.MoveDown(d))
	assert.Equal(t, 5, sel.Start)
	assert.Equal(t, 6, sel.End)
}

func TestHorizontalMoveClearsGoal(t *testing.T) {
	d := document.New("abcdef\nab\nabcdef")
	sel := New(5, 6)
	require.True(t, sel.MoveDown(d))
	_, ok := sel.Goal()
	require.True(t, ok)

	sel.MoveLeft(d)
	_, ok = sel.Goal()
	assert.False(t, ok)

	// the next vertical move starts from the current column
	require.True(t, sel.MoveDown(d))
	goal, _ := sel.Goal()
	assert.Equal(t, 1, goal)
}

func TestVerticalMovePreservesWidth(t *testing.T) {
	d := document.New("abcd\nefgh\n")
	sel := New(1, 3)
	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 6, sel.Start)
	assert.Equal(t, 8, sel.End)
	assert.Equal(t, "fg", d.Slice(sel.Start, sel.End))
}

func TestMoveOntoEmptyLastLine(t *testing.T) {
	d := document.New("ab\ncd\n")
	sel := New(4, 5)
	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 6, sel.Start)
	assert.Equal(t, 6, sel.End, "end is clamped to the document length")
	require.True(t, sel.MoveUp(d))
	assert.Equal(t, 4, sel.Start, "remembered column survives the empty line")
	assert.Equal(t, 1, sel.Width(), "remembered width survives the empty line")
}

func TestWidthSurvivesTheEndOfTheText(t *testing.T) {
	d := document.New("abcd\nef\nx")
	sel := New(1, 4)
	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 6, sel.Start)
	assert.Equal(t, 9, sel.End)
	require.True(t, sel.MoveDown(d))
	assert.Equal(t, 9, sel.Start)
	assert.Equal(t, 9, sel.End)
	require.True(t, sel.MoveUp(d))
	require.True(t, sel.MoveUp(d))
	assert.Equal(t, 1, sel.Start)
	assert.Equal(t, 4, sel.End)

	sel = New(4, 5)
	d = document.New("ab\ncd\n")
	require.True(t, sel.MoveDown(d))
	require.True(t, sel.MoveLeft(d))
	assert.Equal(t, 5, sel.Start, "a horizontal move restores the clipped width")
	assert.Equal(t, 6, sel.End)
	_, ok := sel.Goal()
	assert.False(t, ok)
	require.True(t, sel.MoveLeft(d))
	assert.Equal(t, 4, sel.Start)
	assert.Equal(t, 5, sel.End)
}

func TestNewCollapsesInvertedRange(t *testing.T) {
	sel := New(4, 2)
	assert.Equal(t, 4, sel.Start)
	assert.Equal(t, 4, sel.End)
}

func TestSet(t *testing.T) {
	d := document.New("")
	s := NewSet(d)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Root().Width(), "root is clamped in an empty document")

	d = document.New("one\ntwo\nthree")
	s = NewSet(d)
	second := s.Add(New(4, 7))
	third := s.Add(New(8, 9))
	var ids []uuid.UUID
	s.Each(func(id uuid.UUID, _ *Selection) { ids = append(ids, id) })
	assert.Equal(t, []uuid.UUID{s.RootID(), second, third}, ids)

	require.NoError(t, s.SetRoot(second))
	assert.Equal(t, 1, s.RootLine(d))
	require.True(t, s.SelectCharDown(d))
	sel, ok := s.Get(second)
	require.True(t, ok)
	assert.Equal(t, 8, sel.Start)

	assert.Error(t, s.SetRoot(uuid.New()))

	s.Clamp(5)
	s.Each(func(_ uuid.UUID, sel *Selection) {
		assert.LessOrEqual(t, sel.Start, sel.End)
		assert.LessOrEqual(t, sel.End, 5)
	})
}

func TestMissingRootPanics(t *testing.T) {
	s := &Set{selections: map[uuid.UUID]*Selection{}}
	assert.Panics(t, func() { s.Root() })
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name          string
		start, end    int
		offset, delta int
		want          Selection
	}{
		{"insert before", 4, 6, 2, 3, Selection{Start: 7, End: 9}},
		{"insert at start", 4, 6, 4, 1, Selection{Start: 5, End: 7}},
		{"insert inside", 4, 6, 5, 1, Selection{Start: 4, End: 7}},
		{"insert at end", 4, 6, 6, 1, Selection{Start: 4, End: 7}},
		{"delete before", 4, 6, 1, -2, Selection{Start: 2, End: 4}},
		{"delete over start", 4, 6, 3, -2, Selection{Start: 3, End: 4}},
		{"delete everything", 4, 6, 2, -6, Selection{Start: 2, End: 2}},
		{"delete after", 4, 6, 6, -3, Selection{Start: 4, End: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := New(tt.start, tt.end)
			sel.Adjust(tt.offset, tt.delta)
			assert.Equal(t, tt.want, sel)
		})
	}
}

func TestAdjustClearsGoal(t *testing.T) {
	d := document.New("abc\nabc\n")
	s := NewSet(d)
	s.Root().Start, s.Root().End = 2, 3
	require.True(t, s.SelectCharDown(d))
	s.Adjust(0, 1)
	_, ok := s.Root().Goal()
	assert.False(t, ok)
	assert.Equal(t, 7, s.Root().Start)
}
