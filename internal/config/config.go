// Package config loads formatting settings from quill.toml or .quill.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"quill/internal/format"
	"quill/internal/printer"
)

// Имена файлов в порядке приоритета внутри одного каталога.
const (
	TOMLName = "quill.toml"
	YAMLName = ".quill.yaml"
)

const (
	maxPrintWidth  = 1000
	maxIndentWidth = 16
)

// Error reports a problem in a config file; Key is empty when the file as
// a whole could not be read.
type Error struct {
	Path string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: [format].%s: %v", e.Path, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config is a loaded settings file. Path is empty when nothing was found
// and the defaults are in effect.
type Config struct {
	Path   string
	Format format.Options
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{Format: format.DefaultOptions()}
}

type fileConfig struct {
	Format section `toml:"format" yaml:"format"`
}

// section: указатели, чтобы отличить отсутствующий ключ от нуля.
type section struct {
	PrintWidth  *int    `toml:"print_width" yaml:"print_width"`
	IndentStyle *string `toml:"indent_style" yaml:"indent_style"`
	IndentWidth *int    `toml:"indent_width" yaml:"indent_width"`
	LineEnding  *string `toml:"line_ending" yaml:"line_ending"`
	QuoteStyle  *string `toml:"quote_style" yaml:"quote_style"`
}

// Find walks up from startDir to the first directory holding quill.toml or
// .quill.yaml. A start path naming a file starts from its directory.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		for _, name := range []string{TOMLName, YAMLName} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the config governing startDir, falling back to
// the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a config file; the format is chosen by its extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &fc)
	case ".yaml", ".yml":
		err = decodeYAML(data, &fc)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = path
			return Config{}, cerr
		}
		return Config{}, &Error{Path: path, Err: err}
	}
	opts := format.DefaultOptions()
	if err := fc.Format.apply(&opts); err != nil {
		err.Path = path
		return Config{}, err
	}
	return Config{Path: path, Format: opts}, nil
}

func decodeTOML(data []byte, fc *fileConfig) error {
	meta, err := toml.Decode(string(data), fc)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0]
		if len(key) == 2 && key[0] == "format" {
			return &Error{Key: key[1], Err: errors.New("unknown key")}
		}
		return fmt.Errorf("unknown key %q", key.String())
	}
	return nil
}

func decodeYAML(data []byte, fc *fileConfig) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (s section) apply(opts *format.Options) *Error {
	if s.PrintWidth != nil {
		if *s.PrintWidth < 1 || *s.PrintWidth > maxPrintWidth {
			return &Error{Key: "print_width", Err: fmt.Errorf("%d is out of range 1..%d", *s.PrintWidth, maxPrintWidth)}
		}
		opts.PrintWidth = *s.PrintWidth
	}
	if s.IndentWidth != nil {
		if *s.IndentWidth < 1 || *s.IndentWidth > maxIndentWidth {
			return &Error{Key: "indent_width", Err: fmt.Errorf("%d is out of range 1..%d", *s.IndentWidth, maxIndentWidth)}
		}
		opts.IndentWidth = *s.IndentWidth
	}
	if s.IndentStyle != nil {
		style, err := printer.ParseIndentStyle(*s.IndentStyle)
		if err != nil {
			return &Error{Key: "indent_style", Err: err}
		}
		opts.IndentStyle = style
	}
	if s.LineEnding != nil {
		ending, err := printer.ParseLineEnding(*s.LineEnding)
		if err != nil {
			return &Error{Key: "line_ending", Err: err}
		}
		opts.LineEnding = ending
	}
	if s.QuoteStyle != nil {
		quote, err := format.ParseQuoteStyle(*s.QuoteStyle)
		if err != nil {
			return &Error{Key: "quote_style", Err: err}
		}
		opts.QuoteStyle = quote
	}
	return nil
}
