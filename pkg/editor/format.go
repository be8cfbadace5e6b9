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

package editor

import (
	"fmt"
	"go/format"

	"go.uber.org/zap"

	"github.com/timburks/ted/pkg/selection"
)

// Format replaces the document with its gofmt formatting. The document
// is left alone if it does not parse as Go source.
func (e *Editor) Format() error {
	text := e.doc.String()
	formatted, err := format.Source([]byte(text))
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if string(formatted) == text {
		e.message = "already formatted"
		return nil
	}
	cursor := e.Cursor()
	e.doc.Delete(0, e.doc.LenChars())
	e.doc.Insert(0, string(formatted))
	e.logger.Debug("formatted", zap.Int("before", len(text)), zap.Int("after", len(formatted)))

	// keep the cursor on the same line; edits inside lines move columns
	line := min(cursor.Row, e.doc.LenLines()-1)
	start := e.doc.LineToChar(line)
	col := min(cursor.Col, max(e.doc.LineLen(line)-1, 0))
	root := e.selections.Root()
	width := max(root.Width(), 1)
	*root = selection.New(start+col, start+col+width)
	e.selections.Clamp(e.doc.LenChars())
	e.message = "formatted"
	return nil
}
