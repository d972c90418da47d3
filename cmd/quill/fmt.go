package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/observ"
	"quill/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format JSON, JavaScript and TypeScript files",
	Long: `Format rewrites the given files, or the supported files under the given
directories, in place. A single "-" formats standard input to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the formatted-files cache")
	fmtCmd.Flags().Bool("verify", false, "format the output again and fail files that are not stable")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	fmtCmd.Flags().String("stdin-path", "stdin.js", "file name used to pick the language of standard input")
	addLayoutFlags(fmtCmd)
}

type fmtSettings struct {
	check   bool
	stdout  bool
	verify  bool
	format  string
	quiet   bool
	timings bool
	color   bool
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var s fmtSettings
	var err error
	flags := cmd.Flags()
	if s.check, err = flags.GetBool("check"); err != nil {
		return err
	}
	if s.format, err = flags.GetString("format"); err != nil {
		return err
	}
	if s.stdout, err = flags.GetBool("stdout"); err != nil {
		return err
	}
	if s.verify, err = flags.GetBool("verify"); err != nil {
		return err
	}
	if s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return err
	}
	if s.timings, err = cmd.Root().PersistentFlags().GetBool("timings"); err != nil {
		return err
	}
	s.color = stderrColor(cmd)

	if s.stdout && s.check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if s.stdout && s.format != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if s.format != "text" && s.format != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", s.format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	resolver, err := newOptionResolver(cmd)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(cmd, s, resolver, maxDiagnostics)
	}

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	opts := driver.FormatOptions{
		Check:          s.check,
		Stdout:         s.stdout,
		Verify:         s.verify,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Resolve:        resolver.Resolve,
	}
	if noCache, _ := flags.GetBool("no-cache"); !noCache {
		opts.Cache = openCache()
	}

	files, err := driver.CollectSourceFiles(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("fmt: %w", driver.ErrNoFiles)
	}

	rawUI, err := flags.GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(rawUI)
	if err != nil {
		return err
	}

	var results []driver.FormatResult
	if !s.stdout && s.format == "text" && !s.quiet && shouldUseTUI(mode) {
		results, err = runFormatWithUI(cmd.Context(), "formatting", files, opts)
	} else {
		results, err = driver.FormatFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	if s.timings {
		var agg observ.Aggregate
		for _, res := range results {
			agg.Add(res.Timing)
		}
		printTimings(os.Stderr, agg.Report())
	}
	return reportFmt(cmd.OutOrStdout(), os.Stderr, results, s)
}

func openCache() *driver.DiskCache {
	cache, err := driver.OpenDiskCache("quill")
	if err != nil {
		log.Warn().Err(err).Msg("cache disabled")
		return nil
	}
	return cache
}

func runFmtStdin(cmd *cobra.Command, s fmtSettings, resolver *optionResolver, maxDiagnostics int) error {
	name, err := cmd.Flags().GetString("stdin-path")
	if err != nil {
		return err
	}
	if source.LanguageFromPath(name) == source.LangUnknown {
		return fmt.Errorf("fmt: cannot tell the language of %q; set --stdin-path", name)
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("fmt: reading stdin: %w", err)
	}
	opts, err := resolver.Resolve(name)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	res := driver.FormatSource(name, content, driver.FormatOptions{
		Verify:         s.verify,
		MaxDiagnostics: maxDiagnostics,
		Options:        opts,
	})
	if s.timings {
		printTimings(os.Stderr, res.Timing)
	}
	if res.Err != nil {
		printFileFailure(os.Stderr, res, s.color)
		return fmt.Errorf("fmt: failed to format %s", name)
	}
	if s.format == "json" {
		return renderFmtJSON(cmd.OutOrStdout(), []driver.FormatResult{res}, s.check)
	}
	if s.check {
		if res.Changed {
			return fmt.Errorf("fmt: formatting changes required")
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(res.Formatted)
	return err
}

// reportFmt prints per-file outcomes and turns them into the exit status.
func reportFmt(out, errOut io.Writer, results []driver.FormatResult, s fmtSettings) error {
	var hasErrors, hasChanges bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
		}
		if res.Changed {
			hasChanges = true
		}
	}

	switch s.format {
	case "json":
		if err := renderFmtJSON(out, results, s.check); err != nil {
			return err
		}
	default:
		for _, res := range results {
			if res.Err != nil {
				printFileFailure(errOut, res, s.color)
				continue
			}
			switch {
			case s.stdout:
				if _, err := out.Write(res.Formatted); err != nil {
					return err
				}
			case s.quiet || !res.Changed:
			case s.check:
				fmt.Fprintln(out, res.Path)
			default:
				fmt.Fprintf(out, "reformatted %s\n", res.Path)
			}
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if s.check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// printFileFailure shows the diagnostics behind a failed file, or the bare
// error when there are none.
func printFileFailure(w io.Writer, res driver.FormatResult, colored bool) {
	if res.Bag != nil && res.Bag.Len() > 0 && res.FileSet != nil {
		diagfmt.Pretty(w, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     colored,
			Context:   1,
			ShowNotes: true,
		})
		if res.Bag.HasErrors() {
			return
		}
	}
	fmt.Fprintf(w, "fmt: %s: %v\n", res.Path, res.Err)
}

type fmtJSONResult struct {
	Path        string                   `json:"path"`
	Status      string                   `json:"status"`
	Changed     bool                     `json:"changed"`
	CheckRun    bool                     `json:"check"`
	Error       string                   `json:"error,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	TotalMS     float64                  `json:"total_ms,omitempty"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	payload := make([]fmtJSONResult, 0, len(results))
	for _, res := range results {
		jr := fmtJSONResult{
			Path:     res.Path,
			Status:   res.Status.String(),
			Changed:  res.Changed,
			CheckRun: check,
			TotalMS:  res.Timing.TotalMS,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Bag != nil && res.FileSet != nil && res.Bag.Len() > 0 {
			jr.Diagnostics = diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}).Diagnostics
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
