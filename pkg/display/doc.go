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

// Package display turns a window of document text into a grid of styled
// cells and writes grids to a terminal.
//
// A frame is built in three passes over a fresh Grid: the glyphs of the
// visible text, the foreground of each syntax span, and the background of
// each selection. Later overlays win, so selections always show through
// syntax colors. Serialize walks the grid row by row and emits a style
// change only where the (fg, bg) pair of a cell differs from the cell
// before it.
//
// Document offsets reach the grid through Points, which uses the line index
// of the document to find window-relative rows and columns.
package display
