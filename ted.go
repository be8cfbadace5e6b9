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

// ted is a modal terminal text editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/timburks/ted/pkg/commander"
	"github.com/timburks/ted/pkg/config"
	"github.com/timburks/ted/pkg/document"
	"github.com/timburks/ted/pkg/editor"
	"github.com/timburks/ted/pkg/highlight"
	"github.com/timburks/ted/pkg/input"
	"github.com/timburks/ted/pkg/screen"
)

type options struct {
	configPath string
	backend    string
	logFile    string
	script     string
	filename   string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	var opts options
	flags := flag.NewFlagSet("ted", flag.ContinueOnError)
	flags.StringVar(&opts.configPath, "config", defaultConfigPath(), "configuration file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.backend, "backend", "", "screen backend: ansi, termbox or tcell")
	flags.StringVar(&opts.logFile, "log", "", "log file")
	flags.StringVar(&opts.script, "eval", "", "lisp expression to evaluate after the file is loaded")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: ted [options] [file]\n\nOptions:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	switch flags.NArg() {
	case 0:
	case 1:
		opts.filename = flags.Arg(0)
	default:
		return nil, fmt.Errorf("only one file can be edited, got %d", flags.NArg())
	}
	return &opts, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ted", "config.toml")
}

func run(opts *options) (err error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	doc, err := readDocument(opts.filename)
	if err != nil {
		return err
	}
	theme, err := cfg.HighlightTheme()
	if err != nil {
		return err
	}
	selectionColor, err := cfg.Selection()
	if err != nil {
		return err
	}

	provider, err := highlight.New(cfg.Highlighter, opts.filename, doc.String(), logger)
	if err != nil {
		return err
	}

	s, err := screen.New(cfg.Backend, logger)
	if err != nil {
		return err
	}
	defer func() {
		r := recover()
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if r != nil {
			panic(r)
		}
	}()

	e := editor.New(doc, s,
		editor.WithName(opts.filename),
		editor.WithProvider(provider),
		editor.WithTheme(theme),
		editor.WithSelectionColor(selectionColor),
		editor.WithLogger(logger),
	)
	c := commander.New(e, logger)
	if opts.script != "" {
		value, err := c.Eval(opts.script)
		if err != nil {
			return err
		}
		e.SetMessage(value)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := input.NewQueue()
	go input.Pump(ctx, s, events)

	logger.Info("editing", zap.String("file", opts.filename), zap.String("backend", cfg.Backend))
	for c.IsRunning() {
		if err := e.Render(); err != nil {
			logger.Error("render", zap.Error(err))
			return err
		}
		event, err := events.Next(ctx)
		if err != nil {
			logger.Info("stopping", zap.Error(err))
			return nil
		}
		if err := c.ProcessEvent(&event); err != nil {
			logger.Error("event", zap.Error(err))
			return err
		}
	}
	return nil
}

// newLogger writes JSON logs to the configured file.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	return logger, nil
}

// readDocument loads filename. A file that does not exist yet starts empty.
func readDocument(filename string) (*document.Document, error) {
	if filename == "" {
		return document.New(""), nil
	}
	f, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		return document.New(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filename)
	}
	return document.NewFromReader(f)
}
