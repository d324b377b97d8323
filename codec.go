package lingo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported catalog file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// codec serializes catalogs to and from their on-disk representation.
type codec struct {
	marshal   func(v any, indent int) ([]byte, error)
	unmarshal func(data []byte, v any) error
	ext       string
}

func codecFor(format string) (codec, error) {
	switch format {
	case FormatJSON:
		return codec{ext: ".json", marshal: marshalJSON, unmarshal: json.Unmarshal}, nil
	case FormatYAML:
		return codec{ext: ".yaml", marshal: marshalYAML, unmarshal: yaml.Unmarshal}, nil
	default:
		return codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// decode parses file content and flattens it for lookups.
func (c codec) decode(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := c.unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flatten(raw, ""), nil
}

// encode expands the catalog to nested form and serializes it.
func (c codec) encode(cat Catalog, indent int) ([]byte, error) {
	return c.marshal(cat.nested(), indent)
}

func marshalJSON(v any, indent int) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func marshalYAML(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
