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

// Package highlight computes syntax spans over document text and maps the
// capture name of each span to a terminal color.
package highlight

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// A Span marks the characters in [Start, End) with a capture name such as
// "keyword" or "punctuation.bracket".
type Span struct {
	Start   int
	End     int
	Capture string
}

// A Provider returns the spans of text that overlap [start, end), clipped
// to that range, sorted by Start and not overlapping.
type Provider interface {
	Highlight(text string, start, end int) []Span
}

// Clip returns the parts of spans that fall inside [start, end).
// spans must be sorted by Start.
func Clip(spans []Span, start, end int) []Span {
	var out []Span
	for _, s := range spans {
		if s.End <= start {
			continue
		}
		if s.Start >= end {
			break
		}
		s.Start = max(s.Start, start)
		s.End = min(s.End, end)
		out = append(out, s)
	}
	return out
}

// None is a Provider that never returns spans.
type None struct{}

func (None) Highlight(text string, start, end int) []Span {
	return nil
}

// ErrUnknownHighlighter is returned by New for an unrecognized name.
var ErrUnknownHighlighter = errors.New("unknown highlighter")

// Highlighters lists the names accepted by New.
var Highlighters = []string{"chroma", "patterns", "none"}

// New returns the named provider for a file. The patterns provider only
// knows Go and highlights nothing in other files.
func New(name, filename, text string, logger *zap.Logger) (Provider, error) {
	switch name {
	case "", "chroma":
		return NewChroma(filename, text, logger), nil
	case "patterns":
		if strings.HasSuffix(filename, ".go") {
			return GoPatterns(), nil
		}
		return None{}, nil
	case "none":
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlighter, name)
	}
}
