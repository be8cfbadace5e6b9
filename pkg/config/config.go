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

// Package config reads the editor settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/timburks/ted/pkg/highlight"
	"github.com/timburks/ted/pkg/types"
)

// ErrUnknownFormat is returned by Load for a file that is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds the editor settings.
type Config struct {
	// Backend names the screen backend: ansi, termbox or tcell.
	Backend string `toml:"backend" yaml:"backend"`
	// LogFile is the path of the log. A leading ~ is the home directory.
	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Highlighter names the syntax highlighter: chroma, patterns or none.
	Highlighter string `toml:"highlighter" yaml:"highlighter"`
	// SelectionColor is the background of selected text.
	SelectionColor string `toml:"selection_color" yaml:"selection_color"`
	// Theme maps capture names to colors and overrides the defaults.
	Theme map[string]string `toml:"theme" yaml:"theme"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Backend:        "ansi",
		LogFile:        "~/.tedlog",
		LogLevel:       "info",
		Highlighter:    "chroma",
		SelectionColor: "light-black",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return c, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// LogPath expands a leading ~ in LogFile.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "~" && !strings.HasPrefix(c.LogFile, "~/") {
		return c.LogFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(c.LogFile, "~")), nil
}

// Selection returns the selection background.
func (c *Config) Selection() (types.Color, error) {
	color, err := types.ParseColor(c.SelectionColor)
	if err != nil {
		return types.ColorDefault, fmt.Errorf("selection_color: %w", err)
	}
	return color, nil
}

// HighlightTheme returns the default theme with the configured overrides applied.
func (c *Config) HighlightTheme() (*highlight.Theme, error) {
	t := highlight.DefaultTheme()
	captures := make([]string, 0, len(c.Theme))
	for capture := range c.Theme {
		captures = append(captures, capture)
	}
	sort.Strings(captures)
	for _, capture := range captures {
		color, err := types.ParseColor(c.Theme[capture])
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", capture, err)
		}
		t.Set(capture, color)
	}
	return t, nil
}
