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

package document

import (
	"fmt"
	"io"
	"sort"
)

// A Document is a sequence of characters with a line index.
type Document struct {
	text       []rune
	lineStarts []int // offset of the first character of each line; lineStarts[0] == 0
}

// New creates a document holding text.
func New(text string) *Document {
	d := &Document{text: []rune(text), lineStarts: []int{0}}
	d.lineStarts = append(d.lineStarts, newlines(d.text, 0)...)
	return d
}

// NewFromReader reads all of r into a new document.
func NewFromReader(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return New(string(b)), nil
}

// newlines returns the line starts that follow each newline in text,
// with offsets counted from base.
func newlines(text []rune, base int) []int {
	var starts []int
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, base+i+1)
		}
	}
	return starts
}

// LenChars returns the number of characters in the document.
func (d *Document) LenChars() int {
	return len(d.text)
}

// LenLines returns the number of lines. A document ending in a newline
// has an empty last line.
func (d *Document) LenLines() int {
	return len(d.lineStarts)
}

// CharToLine returns the line containing offset.
// offset may be LenChars(), which belongs to the last line.
func (d *Document) CharToLine(offset int) int {
	d.checkOffset(offset)
	return sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
}

// LineToChar returns the offset of the first character of line.
// line may be LenLines(), which returns LenChars().
func (d *Document) LineToChar(line int) int {
	if line < 0 || line > len(d.lineStarts) {
		panic(fmt.Sprintf("document: line %d out of range [0, %d]", line, len(d.lineStarts)))
	}
	if line == len(d.lineStarts) {
		return len(d.text)
	}
	return d.lineStarts[line]
}

// LineLen returns the number of characters in line, counting its newline.
func (d *Document) LineLen(line int) int {
	d.checkLine(line)
	return d.LineToChar(line+1) - d.lineStarts[line]
}

// Line returns the text of line, including its newline.
func (d *Document) Line(line int) string {
	d.checkLine(line)
	return string(d.text[d.lineStarts[line]:d.LineToChar(line+1)])
}

// IsLastLine reports whether line is the final line, which has no newline.
func (d *Document) IsLastLine(line int) bool {
	d.checkLine(line)
	return line == len(d.lineStarts)-1
}

// CharAt returns the character at offset.
func (d *Document) CharAt(offset int) rune {
	if offset < 0 || offset >= len(d.text) {
		panic(fmt.Sprintf("document: char offset %d out of range [0, %d)", offset, len(d.text)))
	}
	return d.text[offset]
}

// Slice returns the characters in [start, end).
func (d *Document) Slice(start, end int) string {
	d.checkOffset(start)
	d.checkOffset(end)
	if start > end {
		panic(fmt.Sprintf("document: inverted range [%d, %d)", start, end))
	}
	return string(d.text[start:end])
}

func (d *Document) String() string {
	return string(d.text)
}

// Insert inserts text before offset.
func (d *Document) Insert(offset int, text string) {
	d.checkOffset(offset)
	if text == "" {
		return
	}
	line := d.CharToLine(offset)
	inserted := []rune(text)
	d.text = append(d.text[:offset], append(inserted, d.text[offset:]...)...)

	// lines after the edited one move by the inserted length
	tail := d.lineStarts[line+1:]
	for i := range tail {
		tail[i] += len(inserted)
	}
	added := newlines(inserted, offset)
	if len(added) > 0 {
		d.lineStarts = append(d.lineStarts[:line+1], append(added, tail...)...)
	}
}

// Delete removes the characters in [start, end).
func (d *Document) Delete(start, end int) {
	d.checkOffset(start)
	d.checkOffset(end)
	if start > end {
		panic(fmt.Sprintf("document: inverted range [%d, %d)", start, end))
	}
	if start == end {
		return
	}
	first := d.CharToLine(start) + 1
	last := d.CharToLine(end) + 1
	d.text = append(d.text[:start], d.text[end:]...)

	// drop the lines whose newline was removed and shift the rest back
	tail := d.lineStarts[last:]
	for i := range tail {
		tail[i] -= end - start
	}
	d.lineStarts = append(d.lineStarts[:first], tail...)
}

func (d *Document) checkOffset(offset int) {
	if offset < 0 || offset > len(d.text) {
		panic(fmt.Sprintf("document: char offset %d out of range [0, %d]", offset, len(d.text)))
	}
}

func (d *Document) checkLine(line int) {
	if line < 0 || line >= len(d.lineStarts) {
		panic(fmt.Sprintf("document: line %d out of range [0, %d)", line, len(d.lineStarts)))
	}
}
