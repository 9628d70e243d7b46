// Package graphio reads and writes graph documents. A document names a graph,
// lists its vertices and its undirected edges. Three encodings are supported:
//
//	# YAML
//	name: triangle
//	vertices: [a, b, c]
//	edges: [[a, b], [b, c], [c, a]]
//
//	{"name": "triangle", "vertices": ["a","b","c"], "edges": [["a","b"], ...]}
//
//	# HCL
//	name     = "triangle"
//	vertices = ["a", "b", "c"]
//	edge {
//	  from = "a"
//	  to   = "b"
//	}
//
// Vertices that only appear in edges are added implicitly.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ullman/core"
)

// Supported document formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

var (
	// ErrUnknownFormat indicates an unsupported file extension or format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrBadEdge indicates an edge entry that does not name exactly two vertices
	// or that the graph rejects (loop or duplicate).
	ErrBadEdge = errors.New("graphio: bad edge")
)

// Document is the on-disk form of a graph.
type Document struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Vertices []string   `json:"vertices,omitempty" yaml:"vertices,omitempty,flow"`
	Edges    [][]string `json:"edges" yaml:"edges,flow"`
}

// FormatFromPath maps a file extension to a format name.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the document at path, choosing the decoder by extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	doc, err := decode(f, format, path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return doc, nil
}

// LoadGraph reads the document at path and builds its graph.
func LoadGraph(path string) (*Document, *core.Graph, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return doc, g, nil
}

// Save writes doc to path, choosing the encoder by extension.
func Save(path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Encode(f, doc, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Decode parses a document in the given format from r.
func Decode(r io.Reader, format string) (*Document, error) {
	return decode(r, format, "input."+format)
}

func decode(r io.Reader, format, filename string) (*Document, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatHCL:
		src, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeHCL(src, filename)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Document, format string) error {
	var err error
	switch format {
	case FormatYAML:
		err = encodeYAML(w, doc)
	case FormatJSON:
		err = encodeJSON(w, doc)
	case FormatHCL:
		_, err = w.Write(encodeHCL(doc))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("graphio: encode %s: %w", format, err)
	}

	return nil
}

// Graph builds a core.Graph from the document. Listed vertices are added
// first, then every edge; endpoints not listed are created on the fly.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d endpoints", ErrBadEdge, i, len(e))
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: %s-%s: %w", ErrBadEdge, e[0], e[1], err)
		}
	}

	return g, nil
}

// FromGraph returns the document of g with vertices and edges in natural
// order.
func FromGraph(name string, g *core.Graph) *Document {
	doc := &Document{Name: name, Vertices: g.Vertices(), Edges: [][]string{}}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []string{e.From, e.To})
	}

	return doc
}
