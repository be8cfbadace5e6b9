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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--backend", "tcell", "--log", "/tmp/x.log", "--eval", "(down 2)", "main.go"})
	require.NoError(t, err)
	assert.Equal(t, "tcell", opts.backend)
	assert.Equal(t, "/tmp/x.log", opts.logFile)
	assert.Equal(t, "(down 2)", opts.script)
	assert.Equal(t, "main.go", opts.filename)

	_, err = parseFlags([]string{"a", "b"})
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "four-score.txt")
	require.NoError(t, os.WriteFile(path, []byte("Four score\nand seven years ago\n"), 0o644))

	doc, err := readDocument(path)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.LenLines())
	assert.Equal(t, "and seven years ago\n", doc.Line(1))

	doc, err = readDocument(filepath.Join(dir, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.LenChars())

	_, err = readDocument(dir)
	assert.Error(t, err)
}
