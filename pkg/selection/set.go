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
	"fmt"

	"github.com/google/uuid"
)

// A Set holds the selections of a document.
// It is never empty: the root selection always exists.
type Set struct {
	selections map[uuid.UUID]*Selection
	order      []uuid.UUID // insertion order, used for iteration
	root       uuid.UUID
}

// NewSet creates a set whose root selection covers the first character of t.
func NewSet(t Text) *Set {
	s := &Set{selections: make(map[uuid.UUID]*Selection)}
	root := New(0, 1)
	root.Clamp(t.LenChars())
	s.root = s.Add(root)
	return s
}

// Add inserts a selection and returns its identifier.
func (s *Set) Add(sel Selection) uuid.UUID {
	id := uuid.New()
	s.selections[id] = &sel
	s.order = append(s.order, id)
	return id
}

// Get returns the selection with identifier id.
func (s *Set) Get(id uuid.UUID) (*Selection, bool) {
	sel, ok := s.selections[id]
	return sel, ok
}

// RootID returns the identifier of the root selection.
func (s *Set) RootID() uuid.UUID {
	return s.root
}

// SetRoot makes id the root selection.
func (s *Set) SetRoot(id uuid.UUID) error {
	if _, ok := s.selections[id]; !ok {
		return fmt.Errorf("no selection with id %s", id)
	}
	s.root = id
	return nil
}

// Root returns the root selection.
func (s *Set) Root() *Selection {
	sel, ok := s.selections[s.root]
	if !ok {
		panic(fmt.Sprintf("selection: root %s missing from set", s.root))
	}
	return sel
}

// Len returns the number of selections.
func (s *Set) Len() int {
	return len(s.selections)
}

// Each calls f for every selection in the order they were added.
func (s *Set) Each(f func(id uuid.UUID, sel *Selection)) {
	for _, id := range s.order {
		f(id, s.selections[id])
	}
}

// Clamp keeps every selection inside a document of length n.
func (s *Set) Clamp(n int) {
	for _, sel := range s.selections {
		sel.Clamp(n)
	}
}

// Adjust updates every selection for an edit at offset; see Selection.Adjust.
func (s *Set) Adjust(offset, delta int) {
	for _, sel := range s.selections {
		sel.Adjust(offset, delta)
	}
}

// RootLine returns the line that holds the start of the root selection.
func (s *Set) RootLine(t Text) int {
	return t.CharToLine(s.Root().Start)
}

func (s *Set) SelectCharLeft(t Text) bool {
	return s.Root().MoveLeft(t)
}

func (s *Set) SelectCharRight(t Text) bool {
	return s.Root().MoveRight(t)
}

func (s *Set) SelectCharDown(t Text) bool {
	return s.Root().MoveDown(t)
}

func (s *Set) SelectCharUp(t Text) bool {
	return s.Root().MoveUp(t)
}
