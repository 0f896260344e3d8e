package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlyaml-go/pkg/xlyaml/collection"
	"gopkg.in/yaml.v3"
)

// Sheet is one worksheet ready to be written: one document per collection.
// Docs hold *collection.Collection values or the plain values a query
// produced.
type Sheet struct {
	Name string
	Docs []any
}

// Options configures serialization.
type Options struct {
	Format Format
	// Pretty indents JSON output.
	Pretty bool
}

// WriteSheet writes a sheet to w.
//
// YAML output starts with a "# <name>" comment, introduces every document
// with "---" and ends the stream with "...". JSON output is an array.
func WriteSheet(w io.Writer, sheet Sheet, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, sheet, opts.Pretty)
	case FormatYAML, "":
		return writeYAML(w, sheet)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func writeYAML(w io.Writer, sheet Sheet) error {
	if _, err := fmt.Fprintf(w, "# %s\n", sheet.Name); err != nil {
		return err
	}
	for _, doc := range sheet.Docs {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
		node, err := collection.YAMLNode(doc)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", sheet.Name, err)
		}
		data, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", sheet.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "...\n")
	return err
}

func writeJSON(w io.Writer, sheet Sheet, pretty bool) error {
	docs := sheet.Docs
	if docs == nil {
		docs = []any{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(docs)
}

// WriteFiles writes every sheet to its own file in dir and returns the paths.
func WriteFiles(dir string, sheets []Sheet, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		filename := filepath.Join(dir, sheet.Name+opts.Format.Extension())
		if err := writeFile(filename, sheet, opts); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", filename, err)
		}
		paths = append(paths, filename)
	}

	return paths, nil
}

func writeFile(filename string, sheet Sheet, opts Options) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteSheet(f, sheet, opts)
}
