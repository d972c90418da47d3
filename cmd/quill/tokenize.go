package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/diag"
	"quill/internal/diagfmt"
	"quill/internal/driver"
	"quill/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file down into tokens with their leading and trailing trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(os.Stderr, result.Bag, result.FileSet, stderrColor(cmd))

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// printDiagnostics выводит ошибки и предупреждения, если они есть
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, colored bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     colored,
		Context:   2,
		ShowNotes: true,
	})
}
