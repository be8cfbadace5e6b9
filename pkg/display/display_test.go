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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ted/pkg/types"
)

func TestANSIWrite(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, types.Size{Rows: 2, Cols: 5})
	assert.Equal(t, types.Size{Rows: 2, Cols: 5}, a.Size())

	err := a.Write(&Frame{
		Grid:   Build("hi", 5, 2),
		Status: ":q",
		Cursor: types.Point{Row: 0, Col: 1},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"\x1b[1;1H"+"hi    \r\n"+"      \r\n"+"\x1b[0m"+":q"+"\x1b[0K"+"\x1b[1;2H",
		buf.String())
}

func TestANSITruncatesStatus(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, types.Size{Rows: 1, Cols: 4})
	require.NoError(t, a.Write(&Frame{Grid: Build("", 4, 1), Status: "-- insert --"}))
	assert.Contains(t, buf.String(), "\x1b[0m-- i\x1b[0K")
}

var errBroken = errors.New("broken pipe")

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func TestANSIWriteError(t *testing.T) {
	a := NewANSI(brokenWriter{}, types.Size{Rows: 1, Cols: 4})
	err := a.Write(&Frame{Grid: Build("x", 4, 1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
}
