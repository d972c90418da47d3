package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quill/internal/logging"
	"quill/internal/prof"
	"quill/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Formatter and source tools for JSON, JavaScript and TypeScript",
	Long:  `quill formats JSON, JSONC, JavaScript and TypeScript sources and dumps their tokens, syntax trees and layout documents`,

	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to this file")
}

// profiling is started in setupGlobals and stopped after the command,
// whether it failed or not.
var profiling *prof.Session

// main executes the root command; a command error exits with status 1.
func main() {
	err := rootCmd.Execute()
	if stopErr := profiling.Stop(); stopErr != nil {
		fmt.Fprintln(os.Stderr, stopErr)
	}
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}

func setupGlobals(cmd *cobra.Command, _ []string) error {
	mode, err := readColorMode(cmd)
	if err != nil {
		return err
	}
	verbosity, err := cmd.Root().PersistentFlags().GetCount("verbose")
	if err != nil {
		return err
	}
	color.NoColor = !useColor(mode, os.Stdout)
	logging.SetupLogger(os.Stderr, verbosity, !useColor(mode, os.Stderr))
	log.Debug().Str("command", cmd.Name()).Msg("starting")

	var opts prof.Options
	pf := cmd.Root().PersistentFlags()
	if opts.CPUProfile, err = pf.GetString("cpuprofile"); err != nil {
		return err
	}
	if opts.MemProfile, err = pf.GetString("memprofile"); err != nil {
		return err
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return err
	}
	profiling, err = prof.Start(opts)
	return err
}

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func parseColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	}
	return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
}

func readColorMode(cmd *cobra.Command) (colorMode, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", err
	}
	return parseColorMode(value)
}

func useColor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(f)
}

// stderrColor решает, красить ли диагностику в stderr
func stderrColor(cmd *cobra.Command) bool {
	mode, err := readColorMode(cmd)
	if err != nil {
		return false
	}
	return useColor(mode, os.Stderr)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
