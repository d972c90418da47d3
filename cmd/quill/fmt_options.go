package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"quill/internal/config"
	"quill/internal/format"
	"quill/internal/printer"
)

// layoutOverrides holds the layout flags the user set explicitly; they win
// over config files.
type layoutOverrides struct {
	printWidth  *int
	indentStyle *printer.IndentStyle
	indentWidth *int
	lineEnding  *printer.LineEnding
	quoteStyle  *format.QuoteStyle
}

func addLayoutFlags(cmd *cobra.Command) {
	def := format.DefaultOptions()
	cmd.Flags().Int("print-width", def.PrintWidth, "preferred maximum line width")
	cmd.Flags().String("indent-style", def.IndentStyle.String(), "indentation (space|tab)")
	cmd.Flags().Int("indent-width", def.IndentWidth, "columns per indentation level")
	cmd.Flags().String("line-ending", def.LineEnding.String(), "line endings (lf|crlf)")
	cmd.Flags().String("quote-style", def.QuoteStyle.String(), "quotes for script strings (double|single)")
	cmd.Flags().String("config", "", "use this config file instead of searching for one")
}

func readLayoutOverrides(cmd *cobra.Command) (layoutOverrides, error) {
	var ov layoutOverrides
	flags := cmd.Flags()
	if flags.Changed("print-width") {
		v, err := flags.GetInt("print-width")
		if err != nil {
			return ov, err
		}
		if v <= 0 {
			return ov, fmt.Errorf("--print-width must be positive, got %d", v)
		}
		ov.printWidth = &v
	}
	if flags.Changed("indent-width") {
		v, err := flags.GetInt("indent-width")
		if err != nil {
			return ov, err
		}
		if v <= 0 {
			return ov, fmt.Errorf("--indent-width must be positive, got %d", v)
		}
		ov.indentWidth = &v
	}
	if flags.Changed("indent-style") {
		raw, err := flags.GetString("indent-style")
		if err != nil {
			return ov, err
		}
		v, err := printer.ParseIndentStyle(raw)
		if err != nil {
			return ov, fmt.Errorf("--indent-style: %w", err)
		}
		ov.indentStyle = &v
	}
	if flags.Changed("line-ending") {
		raw, err := flags.GetString("line-ending")
		if err != nil {
			return ov, err
		}
		v, err := printer.ParseLineEnding(raw)
		if err != nil {
			return ov, fmt.Errorf("--line-ending: %w", err)
		}
		ov.lineEnding = &v
	}
	if flags.Changed("quote-style") {
		raw, err := flags.GetString("quote-style")
		if err != nil {
			return ov, err
		}
		v, err := format.ParseQuoteStyle(raw)
		if err != nil {
			return ov, fmt.Errorf("--quote-style: %w", err)
		}
		ov.quoteStyle = &v
	}
	return ov, nil
}

func (ov layoutOverrides) apply(opts format.Options) format.Options {
	if ov.printWidth != nil {
		opts.PrintWidth = *ov.printWidth
	}
	if ov.indentStyle != nil {
		opts.IndentStyle = *ov.indentStyle
	}
	if ov.indentWidth != nil {
		opts.IndentWidth = *ov.indentWidth
	}
	if ov.lineEnding != nil {
		opts.LineEnding = *ov.lineEnding
	}
	if ov.quoteStyle != nil {
		opts.QuoteStyle = *ov.quoteStyle
	}
	return opts
}

// optionResolver picks options per file: the nearest config file, then
// the flag overrides. Lookups are memoized per directory.
type optionResolver struct {
	overrides layoutOverrides
	fixed     *config.Config

	mu    sync.Mutex
	byDir map[string]resolved
}

type resolved struct {
	opts format.Options
	err  error
}

func newOptionResolver(cmd *cobra.Command) (*optionResolver, error) {
	ov, err := readLayoutOverrides(cmd)
	if err != nil {
		return nil, err
	}
	r := &optionResolver{overrides: ov, byDir: make(map[string]resolved)}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		r.fixed = &cfg
	}
	return r, nil
}

// Resolve has the signature driver.FormatOptions.Resolve expects.
func (r *optionResolver) Resolve(path string) (format.Options, error) {
	if r.fixed != nil {
		return r.overrides.apply(r.fixed.Format), nil
	}
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.byDir[dir]; ok {
		return res.opts, res.err
	}
	cfg, err := config.Discover(dir)
	res := resolved{err: err}
	if err == nil {
		res.opts = r.overrides.apply(cfg.Format)
	}
	r.byDir[dir] = res
	return res.opts, res.err
}
