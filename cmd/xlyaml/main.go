// Package main provides the CLI entry point for xlyaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml"
	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/output"
)

type flags struct {
	outDir     string
	format     string
	pretty     bool
	sheets     []string
	area       string
	printAreas bool
	raw        bool
	lenient    bool
	workers    int
	query      string
	stdout     bool
	logLevel   string
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "xlyaml [input.xlsx]",
		Short: "Convert indented Excel worksheets into YAML",
		Long: `xlyaml reads every worksheet of an Excel workbook and rebuilds the
objects laid out in it. Objects are separated by blank rows; nesting is
expressed by indenting rows one column to the right.

One output file is written per worksheet.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], fl)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&fl.outDir, "out-dir", "o", ".", "Directory for per-sheet output files")
	f.StringVarP(&fl.format, "format", "f", "yaml", "Output format: yaml, json")
	f.BoolVar(&fl.pretty, "pretty", false, "Pretty-print JSON output")
	f.StringSliceVarP(&fl.sheets, "sheet", "s", nil, "Sheet to convert (repeatable, default: all)")
	f.StringVar(&fl.area, "area", "", "Only read this cell range of each sheet, e.g. B2:F40")
	f.BoolVar(&fl.printAreas, "print-area", false, "Only read each sheet's print area when one is defined")
	f.BoolVar(&fl.raw, "raw", false, "Read raw cell values instead of formatted text")
	f.BoolVar(&fl.lenient, "lenient", false, "Truncate table rows that do not match their header instead of failing")
	f.IntVar(&fl.workers, "workers", 0, "Blocks reduced concurrently (default: number of CPUs)")
	f.StringVarP(&fl.query, "query", "q", "", "jq expression applied to every object before writing")
	f.BoolVar(&fl.stdout, "stdout", false, "Write to stdout instead of files")
	f.StringVar(&fl.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&fl.logFormat, "log-format", "text", "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, fl flags) error {
	logger := newLogger(fl.logLevel, fl.logFormat, cmd.ErrOrStderr())

	format, err := output.ParseFormat(fl.format)
	if err != nil {
		return err
	}

	var query *output.Query
	if fl.query != "" {
		if query, err = output.CompileQuery(fl.query); err != nil {
			return err
		}
	}

	opts := xlyaml.DefaultOptions()
	opts.Sheets = fl.sheets
	opts.Area = fl.area
	opts.UsePrintAreas = fl.printAreas
	opts.RawValues = fl.raw
	opts.Lenient = fl.lenient
	if fl.workers > 0 {
		opts.Workers = fl.workers
	}
	opts.Logger = logger

	wb, err := xlyaml.Convert(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	sheets, err := outputSheets(wb, query)
	if err != nil {
		return err
	}
	outOpts := output.Options{Format: format, Pretty: fl.pretty}

	if fl.stdout {
		for _, sheet := range sheets {
			if err := output.WriteSheet(cmd.OutOrStdout(), sheet, outOpts); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}

	paths, err := output.WriteFiles(fl.outDir, sheets, outOpts)
	for _, p := range paths {
		logger.Info("completed output file", "path", p)
	}
	return err
}

// outputSheets turns converted sheets into output documents, in workbook order.
func outputSheets(wb *xlyaml.WorkbookData, query *output.Query) ([]output.Sheet, error) {
	sheets := make([]output.Sheet, 0, len(wb.SheetOrder))
	for _, name := range wb.SheetOrder {
		sheet := wb.Sheets[name]
		docs := make([]any, len(sheet.Collections))
		for i, c := range sheet.Collections {
			if query != nil {
				docs[i] = c.Map()
			} else {
				docs[i] = c
			}
		}
		if query != nil {
			var err error
			if docs, err = query.Apply(docs); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", name, err)
			}
		}
		sheets = append(sheets, output.Sheet{Name: name, Docs: docs})
	}
	return sheets, nil
}
