// Package document reads and writes semantic values as JSON or YAML files.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", fmt.Errorf("%w: cannot tell the format of %s from its extension", ErrUnknownFormat, path)
	}
	return f, nil
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (semantic.Value, error) {
	switch f {
	case FormatJSON:
		return semantic.DecodeJSON(data)
	case FormatYAML:
		return semantic.DecodeYAML(data)
	}
	return semantic.Null(), fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// LoadValue reads and decodes the file at path, picking the format from its
// extension.
func LoadValue(path string) (semantic.Value, error) {
	f, err := FormatOf(path)
	if err != nil {
		return semantic.Null(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return semantic.Null(), err
	}
	v, err := Decode(data, f)
	if err != nil {
		return semantic.Null(), fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Load reads a document whose root must be a mapping.
func Load(path string) (*semantic.Mapping, error) {
	v, err := LoadValue(path)
	if err != nil {
		return nil, err
	}
	m, ok := v.AsMapping()
	if !ok {
		return nil, fmt.Errorf("%s: %w (got %s)", path, ErrNotMapping, v.Kind())
	}
	return m, nil
}

// LoadContainer reads a document whose root must be a mapping or a sequence.
func LoadContainer(path string) (semantic.Container, error) {
	v, err := LoadValue(path)
	if err != nil {
		return nil, err
	}
	c, ok := v.AsContainer()
	if !ok {
		return nil, fmt.Errorf("%s: %w (got %s)", path, ErrNotContainer, v.Kind())
	}
	return c, nil
}

// LoadAll loads every path with [Load]. All files are attempted; the
// returned error combines every failure.
func LoadAll(paths []string) ([]*semantic.Mapping, error) {
	var (
		docs []*semantic.Mapping
		err  error
	)
	for _, p := range paths {
		m, loadErr := Load(p)
		if loadErr != nil {
			err = multierr.Append(err, loadErr)
			continue
		}
		docs = append(docs, m)
	}
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Encode writes v to w in format f, followed by a newline. JSON output is
// indented by two spaces and keeps mapping key order, as does YAML.
func Encode(w io.Writer, v semantic.Value, f Format) error {
	switch f {
	case FormatJSON:
		raw, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
