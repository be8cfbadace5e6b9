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

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// A Color is an entry of the 256 color terminal palette.
// ColorDefault is the terminal's own foreground or background.
type Color int16

const ColorDefault Color = -1

// The sixteen ANSI colors.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorLightBlack
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorLightWhite
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"reset":         ColorDefault,
	"black":         ColorBlack,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"light-black":   ColorLightBlack,
	"light-red":     ColorLightRed,
	"light-green":   ColorLightGreen,
	"light-yellow":  ColorLightYellow,
	"light-blue":    ColorLightBlue,
	"light-magenta": ColorLightMagenta,
	"light-cyan":    ColorLightCyan,
	"light-white":   ColorLightWhite,
}

// ParseColor accepts a color name ("light-blue", "light_blue" and "lightblue"
// are equivalent) or a palette number between 0 and 255.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return ColorDefault, fmt.Errorf("color %d out of range [0, 255]", n)
		}
		return Color(n), nil
	}
	name = strings.ReplaceAll(name, "_", "-")
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "light") && !strings.HasPrefix(name, "light-") {
		if c, ok := colorNames["light-"+name[len("light"):]]; ok {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", s)
}
