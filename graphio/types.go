package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvbalance/core"
)

var (
	// ErrUnknownFormat is returned for an unsupported format name or extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrEmptyDocument is returned when the input holds no definition at all.
	ErrEmptyDocument = errors.New("graphio: empty document")

	// ErrUnknownField is returned when a TOML input carries keys outside Document.
	ErrUnknownField = errors.New("graphio: unknown field")
)

// Format identifies a definition encoding.
type Format int

// Supported formats.
const (
	YAML Format = iota + 1
	JSON
	TOML
)

// String returns the canonical lower-case name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the preferred file extension, including the dot.
func (f Format) Ext() string {
	if f == YAML {
		return ".yaml"
	}

	return "." + f.String()
}

// ParseFormat resolves "yaml", "yml", "json" or "toml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	}

	return 0, fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("FormatFromPath: %q has no extension: %w", path, ErrUnknownFormat)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, fmt.Errorf("FormatFromPath: %q: %w", path, ErrUnknownFormat)
	}

	return f, nil
}

// EdgeSpec is one signed edge of a Document.
type EdgeSpec struct {
	From string        `yaml:"from" json:"from" toml:"from"`
	To   string        `yaml:"to" json:"to" toml:"to"`
	Sign core.Polarity `yaml:"sign" json:"sign" toml:"sign"`
}

// Document is a graph definition.
// Nodes lists nodes that may have no edges; edge endpoints are added implicitly.
type Document struct {
	Name        string     `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Nodes       []string   `yaml:"nodes,omitempty" json:"nodes,omitempty" toml:"nodes,omitempty"`
	Edges       []EdgeSpec `yaml:"edges" json:"edges" toml:"edges"`
}
