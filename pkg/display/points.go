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

package display

import "github.com/timburks/ted/pkg/types"

// LineIndex converts between document offsets and lines.
type LineIndex interface {
	CharToLine(offset int) int
	LineToChar(line int) int
	Slice(start, end int) string
}

// Point returns the window position of a document offset for a window
// whose first line is top. Rows above the window are negative. Columns
// count cells, so wide characters before offset count twice.
func Point(lines LineIndex, top, offset int) types.Point {
	line := lines.CharToLine(offset)
	return types.Point{Row: line - top, Col: Width(lines.Slice(lines.LineToChar(line), offset))}
}

// Points returns the window positions of both ends of [start, end).
func Points(lines LineIndex, top, start, end int) (types.Point, types.Point) {
	return Point(lines, top, start), Point(lines, top, end)
}
