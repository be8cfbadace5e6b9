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

package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoPatterns(t *testing.T) {
	spans := GoPatterns().Highlight(goSource, 0, len([]rune(goSource)))
	assert.Equal(t, []Span{
		{0, 7, "keyword"},
		{14, 19, "comment"},
		{20, 24, "keyword"},
		{29, 31, "punctuation.bracket"},
		{32, 33, "punctuation.bracket"},
		{42, 43, "punctuation.bracket"},
		{43, 46, "string"},
		{46, 47, "punctuation.bracket"},
		{48, 49, "punctuation.bracket"},
	}, spans)
}

func TestPatternsCountCharacters(t *testing.T) {
	text := "x := \"é\" // ü\n"
	p := GoPatterns()
	assert.Equal(t, []Span{
		{2, 3, "punctuation.delimiter"},
		{3, 4, "operator"},
		{5, 8, "string"},
		{9, 13, "comment"},
	}, p.Highlight(text, 0, 14))
	assert.Equal(t, []Span{{6, 8, "string"}, {9, 10, "comment"}}, p.Highlight(text, 6, 10))
	assert.Nil(t, p.Highlight(text, 4, 4))
}

func TestPatternsCommentsStartOutsideStrings(t *testing.T) {
	p := GoPatterns()
	assert.Equal(t, []Span{
		{2, 3, "punctuation.delimiter"},
		{3, 4, "operator"},
		{5, 15, "string"},
		{16, 20, "comment"},
	}, p.Highlight(`u := "http://x" // c`, 0, 20))

	assert.Equal(t, []Span{{2, 8, "comment"}}, p.Highlight(`x // "a"`, 0, 8))
	assert.Equal(t, []Span{{0, 6, "string"}}, p.Highlight("`a//b`", 0, 6))
}

func TestPatternsKeywordsNeedWordBoundaries(t *testing.T) {
	spans := GoPatterns().Highlight("format gopher if", 0, 16)
	assert.Equal(t, []Span{{14, 16, "keyword"}}, spans)
}

func TestNew(t *testing.T) {
	p, err := New("patterns", "main.go", goSource, nil)
	require.NoError(t, err)
	assert.IsType(t, &Patterns{}, p)

	p, err = New("patterns", "notes.txt", "", nil)
	require.NoError(t, err)
	assert.Equal(t, None{}, p)

	p, err = New("", "main.go", goSource, nil)
	require.NoError(t, err)
	assert.IsType(t, &Chroma{}, p)

	_, err = New("vim", "main.go", goSource, nil)
	assert.ErrorIs(t, err, ErrUnknownHighlighter)
}
