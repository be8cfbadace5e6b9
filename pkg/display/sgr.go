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

import (
	"github.com/muesli/termenv"

	"github.com/timburks/ted/pkg/types"
)

const (
	defaultFg = "39"
	defaultBg = "49"
)

// SGR returns the select-graphic-rendition sequence that sets both the
// foreground and background color.
func SGR(fg, bg types.Color) string {
	return termenv.CSI + colorParam(fg, false) + ";" + colorParam(bg, true) + "m"
}

// Reset returns the sequence that restores the default style.
func Reset() string {
	return termenv.CSI + termenv.ResetSeq + "m"
}

func colorParam(c types.Color, bg bool) string {
	switch {
	case c < 0:
		if bg {
			return defaultBg
		}
		return defaultFg
	case c < 16:
		return termenv.ANSIColor(c).Sequence(bg)
	default:
		return termenv.ANSI256Color(c).Sequence(bg)
	}
}
