package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quill/internal/doc"
	"quill/internal/driver"
	"quill/internal/format"
	"quill/internal/printer"
)

var docCmd = &cobra.Command{
	Use:   "doc [flags] <file>",
	Short: "Print the layout document built for a file",
	Long: `Doc prints the intermediate document the formatter builds for a file,
before line breaking. With --print it also shows the printed result.`,
	Args: cobra.ExactArgs(1),
	RunE: runDoc,
}

func init() {
	docCmd.Flags().Bool("print", false, "also print the formatted output and its range mappings")
	addLayoutFlags(docCmd)
}

func runDoc(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	withPrint, err := cmd.Flags().GetBool("print")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	resolver, err := newOptionResolver(cmd)
	if err != nil {
		return fmt.Errorf("doc: %w", err)
	}
	opts, err := resolver.Resolve(filePath)
	if err != nil {
		return fmt.Errorf("doc: %w", err)
	}

	res, d, err := driver.BuildDoc(filePath, maxDiagnostics, opts)
	if res != nil {
		printDiagnostics(os.Stderr, res.Bag, res.FileSet, stderrColor(cmd))
	}
	if err != nil {
		var fe *format.FormatError
		if errors.As(err, &fe) {
			return fmt.Errorf("doc: cannot lay out %s: %w", filePath, err)
		}
		return fmt.Errorf("doc: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, doc.Dump(d))
	if withPrint {
		printResult(out, printer.Print(d, opts.PrinterOptions()))
	}
	return nil
}

func printResult(out io.Writer, res printer.Result) {
	fmt.Fprintln(out, "--- output")
	fmt.Fprint(out, res.Text)
	fmt.Fprintln(out, "--- mappings")
	for _, m := range res.Mappings {
		fmt.Fprintf(out, "%d..%d -> %d..%d\n", m.Original.Start, m.Original.End, m.Start, m.End)
	}
}
