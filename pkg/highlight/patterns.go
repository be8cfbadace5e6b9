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
	"regexp"
	"strings"
	"unicode/utf8"
)

// A Rule tags every match of Pattern with Capture. A match that starts on
// a character already tagged Unless is skipped.
type Rule struct {
	Capture string
	Pattern *regexp.Regexp
	Unless  string
}

// Patterns highlights line by line with regular expressions.
// Later rules take precedence over earlier ones.
type Patterns struct {
	rules []Rule
}

// NewPatterns returns a provider applying rules in order.
func NewPatterns(rules ...Rule) *Patterns {
	return &Patterns{rules: rules}
}

// GoPatterns returns a small rule set for Go source.
func GoPatterns() *Patterns {
	return NewPatterns(
		Rule{Capture: "keyword", Pattern: regexp.MustCompile(`\b(break|case|chan|const|continue|default|defer|else|fallthrough|for|func|go|goto|if|import|interface|map|package|range|return|select|struct|switch|type|var)\b`)},
		Rule{Capture: "constant.numeric", Pattern: regexp.MustCompile(`\b(0[xX][0-9a-fA-F]+|[0-9]+(\.[0-9]*)?)\b`)},
		Rule{Capture: "punctuation.bracket", Pattern: regexp.MustCompile(`[()\[\]{}]`)},
		Rule{Capture: "operator", Pattern: regexp.MustCompile(`[=+\-*/<>!&|]`)},
		Rule{Capture: "punctuation.delimiter", Pattern: regexp.MustCompile(`[,:;.]`)},
		Rule{Capture: "string", Pattern: regexp.MustCompile(`"(\\.|[^"\\])*"|` + "`[^`]*`")},
		Rule{Capture: "comment", Pattern: regexp.MustCompile(`//.*$`), Unless: "string"},
	)
}

func (p *Patterns) Highlight(text string, start, end int) []Span {
	if start >= end {
		return nil
	}
	captures := make([]string, end-start)
	offset := 0 // character offset of the current line
	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf8.RuneCountInString(line)
		if offset >= end {
			break
		}
		if offset+n > start {
			p.tag(captures, strings.TrimSuffix(line, "\n"), offset-start)
		}
		offset += n
	}
	return mergeCaptures(captures, start)
}

// tag records the captures of line, whose first character is at base
// in captures.
func (p *Patterns) tag(captures []string, line string, base int) {
	tags := make([]string, utf8.RuneCountInString(line))
	for _, rule := range p.rules {
		for _, m := range rule.matches(line, tags) {
			from := utf8.RuneCountInString(line[:m[0]])
			to := from + utf8.RuneCountInString(line[m[0]:m[1]])
			for i := from; i < to; i++ {
				tags[i] = rule.Capture
			}
		}
	}
	for i, c := range tags {
		if j := base + i; j >= 0 && j < len(captures) {
			captures[j] = c
		}
	}
}

// matches returns the byte ranges of the matches of r in line. When a
// match is skipped the search resumes at the next character.
func (r Rule) matches(line string, tags []string) [][]int {
	if r.Unless == "" {
		return r.Pattern.FindAllStringIndex(line, -1)
	}
	var out [][]int
	for pos := 0; pos < len(line); {
		m := r.Pattern.FindStringIndex(line[pos:])
		if m == nil {
			break
		}
		m[0] += pos
		m[1] += pos
		if m[0] >= len(line) {
			break
		}
		_, size := utf8.DecodeRuneInString(line[m[0]:])
		if tags[utf8.RuneCountInString(line[:m[0]])] == r.Unless {
			pos = m[0] + size
			continue
		}
		out = append(out, m)
		pos = max(m[1], m[0]+size)
	}
	return out
}

// mergeCaptures turns runs of equal captures into spans.
func mergeCaptures(captures []string, start int) []Span {
	var out []Span
	for i, c := range captures {
		if c == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == start+i && out[n-1].Capture == c {
			out[n-1].End++
			continue
		}
		out = append(out, Span{Start: start + i, End: start + i + 1, Capture: c})
	}
	return out
}
