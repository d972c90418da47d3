package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"quill/internal/diag"
	"quill/internal/format"
	"quill/internal/logging"
	"quill/internal/observ"
	"quill/internal/source"
)

// ErrNoFiles is returned when the given paths hold no supported files.
var ErrNoFiles = errors.New("format: no source files found")

// FormatOptions configures a batch run.
type FormatOptions struct {
	// Check reports files that would change without writing them.
	Check bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool
	// Verify formats the output once more and fails files that change.
	Verify bool

	Jobs           int
	MaxDiagnostics int
	Options        format.Options
	// Resolve, when set, picks options per file (nearest config file);
	// Options is used otherwise.
	Resolve func(path string) (format.Options, error)

	Cache    *DiskCache
	Progress ProgressFunc
	Logger   *zerolog.Logger
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Status    FileStatus
	Changed   bool
	Err       error
	Formatted []byte
	// FileSet resolves the spans in Bag.
	FileSet *source.FileSet
	Bag     *diag.Bag
	Timing  observ.Report
}

// FormatPaths formats the supported files under paths, one worker per file
// bounded by opts.Jobs. Results come back in path order whatever the
// scheduling. A failing file does not stop the others; the returned error
// is reserved for collection problems and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return FormatFiles(ctx, files, opts)
}

// FormatFiles is FormatPaths over an already collected file list.
func FormatFiles(ctx context.Context, files []string, opts FormatOptions) ([]FormatResult, error) {
	logger := opts.logger()
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	var done atomic.Int64
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := formatOne(path, opts, logger)
			results[i] = res
			if opts.Progress != nil {
				opts.Progress(ProgressEvent{
					Path:   path,
					Status: res.Status,
					Done:   int(done.Add(1)),
					Total:  len(files),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	logger.Info().
		Int("files", len(files)).
		Int("jobs", jobs).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")
	return results, nil
}

func (opts FormatOptions) logger() zerolog.Logger {
	if opts.Logger != nil {
		return *opts.Logger
	}
	return logging.GetLogger("driver")
}

func formatOne(path string, opts FormatOptions, logger zerolog.Logger) FormatResult {
	result := FormatResult{Path: path}
	fail := func(err error) FormatResult {
		result.Status = StatusFailed
		result.Err = err
		logger.Debug().Err(err).Str("path", path).Msg("format failed")
		return result
	}

	fileOpts := opts.Options
	if opts.Resolve != nil {
		resolved, err := opts.Resolve(path)
		if err != nil {
			return fail(err)
		}
		fileOpts = resolved
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}

	key := ContentDigest(raw, fileOpts)
	var entry CacheEntry
	if hit, err := opts.Cache.Get(key, &entry); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("cache read failed")
	} else if hit {
		result.Status = StatusCached
		if opts.Stdout {
			result.Formatted = raw
		}
		logger.Trace().Str("path", path).Msg("cache hit")
		return result
	}

	out, err := formatContent(path, raw, fileOpts, opts.MaxDiagnostics, opts.Verify)
	result.FileSet = out.fileSet
	result.Bag = out.bag
	result.Timing = out.timing
	if err != nil {
		return fail(err)
	}

	formatted := out.formatted
	result.Changed = !bytes.Equal(raw, formatted)
	result.Status = StatusUnchanged
	if result.Changed {
		result.Status = StatusChanged
	}
	if opts.Stdout {
		result.Formatted = formatted
	}

	// в кэш попадает содержимое, которое после прогона лежит на диске отформатированным
	remember := !result.Changed
	if result.Changed && !opts.Check && !opts.Stdout {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			return fail(err)
		}
		key = ContentDigest(formatted, fileOpts)
		remember = true
	}
	if remember && opts.Cache != nil {
		putErr := opts.Cache.Put(key, &CacheEntry{
			Path:    path,
			Size:    len(formatted),
			Options: fileOpts.String(),
			Stored:  time.Now().UTC(),
		})
		if putErr != nil {
			logger.Warn().Err(putErr).Str("path", path).Msg("cache write failed")
		}
	}

	logger.Debug().
		Str("path", path).
		Stringer("status", result.Status).
		Float64("ms", out.timing.TotalMS).
		Msg("formatted")
	return result
}

// FormatSource formats in-memory content (stdin) named by path.
func FormatSource(path string, content []byte, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	out, err := formatContent(path, content, opts.Options, opts.MaxDiagnostics, opts.Verify)
	result.FileSet = out.fileSet
	result.Bag = out.bag
	result.Timing = out.timing
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		return result
	}
	result.Formatted = out.formatted
	result.Changed = !bytes.Equal(content, out.formatted)
	result.Status = StatusUnchanged
	if result.Changed {
		result.Status = StatusChanged
	}
	return result
}
