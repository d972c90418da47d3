package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Parse a source file and print its syntax tree",
	Long: `Parse builds the lossless syntax tree of a file and prints it. Statements
the parser keeps verbatim show up as Unknown nodes.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Bool("note-unknown", false, "report statements kept verbatim as info diagnostics")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noteUnknown, err := cmd.Flags().GetBool("note-unknown")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics, noteUnknown)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printDiagnostics(os.Stderr, result.Bag, result.FileSet, stderrColor(cmd))

	switch format {
	case "pretty":
		err = diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Root, result.FileSet)
	case "json":
		err = diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Root)
	case "tree":
		// байтовые смещения и число trivia, без line:col
		err = syntax.Dump(cmd.OutOrStdout(), result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("parse: %s has syntax errors", filePath)
	}
	return nil
}
