// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbalance/core"
)

// Decode reads one Document in format f. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Decode: reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrEmptyDocument)
	}

	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode: parsing yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("Decode: parsing json: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("Decode: parsing toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("Decode: %s: %w", strings.Join(keys, ", "), ErrUnknownField)
		}
	default:
		return nil, fmt.Errorf("Decode: %v: %w", f, ErrUnknownFormat)
	}

	return &doc, nil
}

// Encode writes doc in format f.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Encode: json: %w", err)
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("Encode: toml: %w", err)
		}
	default:
		return fmt.Errorf("Encode: %v: %w", f, ErrUnknownFormat)
	}

	return nil
}

// Graph builds a fresh graph: listed nodes first, then edges in order.
// Errors carry the offending node or edge index.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.Nodes) + 2*len(d.Edges)))
	for i, id := range d.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("graphio: node %d: %w", i, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Sign); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%q-%q): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Document. Edges come in g.Edges() order and
// Nodes holds only the isolated nodes, so Graph() rebuilds an equal graph.
func FromGraph(name string, g *core.Graph) *Document {
	doc := &Document{Name: name, Edges: []EdgeSpec{}}
	if g == nil {
		return doc
	}
	for _, id := range g.Nodes() {
		if g.Degree(id) == 0 {
			doc.Nodes = append(doc.Nodes, id)
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.U, To: e.V, Sign: e.Polarity})
	}
	sort.Strings(doc.Nodes)

	return doc
}

// ReadFile decodes the definition at path (format by extension) and builds
// its graph.
func ReadFile(path string) (*Document, *core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %w", err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %s: %w", path, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %s: %w", path, err)
	}

	return doc, g, nil
}

// WriteFile encodes doc to path, choosing the format by extension.
func WriteFile(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	var buf bytes.Buffer
	if err = Encode(&buf, doc, f); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}
