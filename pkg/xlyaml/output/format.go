// Package output serializes converted sheets.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatYAML writes each collection as its own YAML document.
	FormatYAML Format = "yaml"
	// FormatJSON writes a JSON array of collections.
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format. Empty defaults to FormatYAML.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatYAML, "yml", "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected yaml|json)", s)
	}
}

// Extension returns the file extension used for a sheet file.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".yml"
}
