// Package render writes URL segments as text, YAML or JSON.
//
// Segments keep their report order in every format.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sgaunet/urlseg/pkg/urlparser"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when an output format name is not recognised.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

const yamlIndent = 2

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatJSON)}
}

// ParseFormat converts a format name into a [Format].
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Result is one segmented input.
type Result struct {
	// Label optionally names the input, such as a git remote name.
	Label    string
	Input    string
	Segments urlparser.Segments
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatText:
		return writeText(w, results)
	case FormatYAML:
		return writeYAML(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, results []Result) error {
	width := 0
	for _, key := range urlparser.AllKeys() {
		width = max(width, len(key))
	}

	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		if r.Label != "" {
			b.WriteString(r.Label)
			b.WriteString(": ")
		}
		b.WriteString(r.Input)
		b.WriteByte('\n')
		for _, key := range r.Segments.Keys() {
			fmt.Fprintf(&b, "  %-*s %q\n", width+1, key+":", r.Segments.Value(key))
		}
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

// orderedSegments marshals segments as a mapping in report order.
type orderedSegments urlparser.Segments

// MarshalYAML implements yaml.Marshaler.
func (o orderedSegments) MarshalYAML() (any, error) {
	segs := urlparser.Segments(o)
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range segs.Keys() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: segs.Value(key)},
		)
	}
	return node, nil
}

// MarshalJSON implements json.Marshaler.
func (o orderedSegments) MarshalJSON() ([]byte, error) {
	segs := urlparser.Segments(o)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range segs.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(segs.Value(key))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type document struct {
	Label    string          `json:"label,omitempty" yaml:"label,omitempty"`
	Input    string          `json:"input"           yaml:"input"`
	Segments orderedSegments `json:"segments"        yaml:"segments"`
}

func documents(results []Result) []document {
	docs := make([]document, len(results))
	for i, r := range results {
		docs[i] = document{Label: r.Label, Input: r.Input, Segments: orderedSegments(r.Segments)}
	}
	return docs
}

func writeYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(documents(results)); err != nil {
		return fmt.Errorf("failed to encode yaml output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml output: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(documents(results)); err != nil {
		return fmt.Errorf("failed to encode json output: %w", err)
	}
	return nil
}
