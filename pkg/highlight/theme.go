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

	"github.com/timburks/ted/pkg/types"
)

var defaultColors = map[string]types.Color{
	"attribute":             types.ColorRed,
	"constant":              types.ColorRed,
	"function.builtin":      types.ColorRed,
	"function":              types.ColorRed,
	"keyword":               types.ColorBlue,
	"operator":              types.ColorBlue,
	"property":              types.ColorMagenta,
	"punctuation":           types.ColorLightGreen,
	"punctuation.bracket":   types.ColorLightCyan,
	"punctuation.delimiter": types.ColorYellow,
	"string":                types.ColorGreen,
	"string.special":        types.ColorLightGreen,
	"tag":                   types.ColorRed,
	"type":                  types.ColorRed,
	"type.builtin":          types.ColorBlue,
	"variable":              types.ColorRed,
	"variable.builtin":      types.ColorLightYellow,
	"variable.parameter":    types.ColorLightMagenta,
	"comment":               types.ColorLightBlack,
	"function.method":       types.ColorYellow,
	"function.special":      types.ColorRed,
}

// A Theme maps capture names to foreground colors.
type Theme struct {
	colors map[string]types.Color
}

// DefaultTheme returns a theme holding the built-in color table.
func DefaultTheme() *Theme {
	t := &Theme{colors: make(map[string]types.Color, len(defaultColors))}
	for name, c := range defaultColors {
		t.colors[name] = c
	}
	return t
}

// Set changes the color of a capture name.
func (t *Theme) Set(capture string, c types.Color) {
	t.colors[capture] = c
}

// Color returns the color of a capture name. Unknown names fall back to
// their parent ("punctuation.bracket" to "punctuation") and finally to the
// default color.
func (t *Theme) Color(capture string) types.Color {
	for name := capture; name != ""; {
		if c, ok := t.colors[name]; ok {
			return c
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return types.ColorDefault
}
