package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatDump = "dump"
)

// document is a decoded YAML or JSON file.
type document struct {
	path   string
	format string
	root   any
}

func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc := &document{path: path, format: formatOf(path)}

	if err := decode(data, doc.format, &doc.root); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	if doc.root == nil {
		doc.root = map[string]any{}
	}

	return doc, nil
}

func (d *document) encode() ([]byte, error) {
	return encode(d.root, d.format)
}

func (d *document) save() error {
	data, err := d.encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", d.path, err)
	}

	return nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

func decode(data []byte, format string, v *any) error {
	if format == FormatJSON {
		return json.Unmarshal(data, v)
	}

	return yaml.Unmarshal(data, v)
}

func encode(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil

	case FormatDump:
		return []byte(spew.Sdump(v)), nil
	}

	return yaml.Marshal(v)
}

// parseValue reads a command-line value as a YAML scalar or flow
// collection; text that does not parse is taken verbatim.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	return v
}
