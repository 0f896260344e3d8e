// Package xlyaml converts indented worksheets into nested collections.
package xlyaml

import (
	"log/slog"
	"runtime"
	"slices"
)

// Options configures conversion behavior.
type Options struct {
	// Sheets limits conversion to the named sheets. Empty converts every sheet.
	Sheets []string
	// Area restricts every sheet to an A1 range such as "B2:F40".
	Area string
	// UsePrintAreas restricts each sheet to its print area when one is
	// defined and Area is empty.
	UsePrintAreas bool
	// RawValues reads unformatted cell values instead of display text.
	RawValues bool
	// Lenient pairs table rows with sub-keys by position instead of
	// rejecting rows whose width differs from the header.
	Lenient bool
	// Workers bounds how many blocks are reduced at once.
	// Zero or less means one per CPU.
	Workers int
	// Logger receives progress and debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

// ShouldConvertSheet returns whether the named sheet is selected.
func (o Options) ShouldConvertSheet(name string) bool {
	return len(o.Sheets) == 0 || slices.Contains(o.Sheets, name)
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
