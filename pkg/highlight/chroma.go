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
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.uber.org/zap"
)

// Chroma is a Provider backed by a chroma lexer.
// It keeps the spans of the last text it saw.
type Chroma struct {
	lexer  chroma.Lexer
	logger *zap.Logger

	text  string
	spans []Span
	valid bool
}

// NewChroma picks a lexer by file name, then by analysing text, then
// falls back to plain text.
func NewChroma(filename, text string, logger *zap.Logger) *Chroma {
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil && text != "" {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chroma{lexer: chroma.Coalesce(lexer), logger: logger}
}

// NewChromaLanguage returns a provider using the lexer registered under
// name, or nil if there is none.
func NewChromaLanguage(name string, logger *zap.Logger) *Chroma {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chroma{lexer: chroma.Coalesce(lexer), logger: logger}
}

// Language returns the name of the lexer in use.
func (c *Chroma) Language() string {
	return c.lexer.Config().Name
}

func (c *Chroma) Highlight(text string, start, end int) []Span {
	if !c.valid || text != c.text {
		c.text = text
		c.spans = c.tokenise(text)
		c.valid = true
	}
	return Clip(c.spans, start, end)
}

func (c *Chroma) tokenise(text string) []Span {
	// no EnsureLF: offsets must match the document
	it, err := c.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		c.logger.Warn("tokenise failed", zap.String("lexer", c.Language()), zap.Error(err))
		return nil
	}
	var spans []Span
	offset := 0
	for _, tok := range it.Tokens() {
		n := utf8.RuneCountInString(tok.Value)
		if capture := Capture(tok); capture != "" {
			if last := len(spans) - 1; last >= 0 && spans[last].Capture == capture && spans[last].End == offset {
				spans[last].End += n
			} else {
				spans = append(spans, Span{Start: offset, End: offset + n, Capture: capture})
			}
		}
		offset += n
	}
	return spans
}

// Capture returns the capture name for a token, or "" for plain text.
func Capture(tok chroma.Token) string {
	t := tok.Type
	switch {
	case t.InCategory(chroma.Comment):
		return "comment"
	case t == chroma.KeywordConstant:
		return "constant"
	case t == chroma.KeywordType:
		return "type.builtin"
	case t.InCategory(chroma.Keyword):
		return "keyword"
	case t == chroma.NameBuiltinPseudo:
		return "variable.builtin"
	case t.InSubCategory(chroma.NameBuiltin):
		return "function.builtin"
	case t == chroma.NameFunctionMagic, t == chroma.NameDecorator:
		return "function.special"
	case t.InSubCategory(chroma.NameFunction):
		return "function"
	case t.InSubCategory(chroma.NameVariable):
		return "variable"
	case t == chroma.NameClass, t == chroma.NameNamespace:
		return "type"
	case t == chroma.NameConstant:
		return "constant"
	case t == chroma.NameTag:
		return "tag"
	case t == chroma.NameAttribute:
		return "attribute"
	case t == chroma.NameProperty:
		return "property"
	case t == chroma.LiteralStringEscape, t == chroma.LiteralStringRegex, t == chroma.LiteralStringSymbol:
		return "string.special"
	case t.InSubCategory(chroma.LiteralString):
		return "string"
	case t.InSubCategory(chroma.LiteralNumber):
		return "constant.numeric"
	case t.InCategory(chroma.Operator):
		return "operator"
	case t.InCategory(chroma.Punctuation):
		return punctuation(tok.Value)
	}
	return ""
}

func punctuation(value string) string {
	switch {
	case strings.Trim(value, "()[]{}") == "":
		return "punctuation.bracket"
	case strings.Trim(value, ",;:.") == "":
		return "punctuation.delimiter"
	}
	return "punctuation"
}
