package graphio

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument is the top-level structure of an HCL graph file.
type hclDocument struct {
	Name     string     `hcl:"name,optional"`
	Vertices []string   `hcl:"vertices,optional"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

func decodeHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var parsed hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}

	doc := &Document{Name: parsed.Name, Vertices: parsed.Vertices, Edges: make([][]string, 0, len(parsed.Edges))}
	for _, e := range parsed.Edges {
		doc.Edges = append(doc.Edges, []string{e.From, e.To})
	}

	return doc, nil
}

func encodeHCL(doc *Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if doc.Name != "" {
		body.SetAttributeValue("name", cty.StringVal(doc.Name))
	}
	if len(doc.Vertices) > 0 {
		vals := make([]cty.Value, len(doc.Vertices))
		for i, id := range doc.Vertices {
			vals[i] = cty.StringVal(id)
		}
		body.SetAttributeValue("vertices", cty.ListVal(vals))
	}
	for _, e := range doc.Edges {
		if len(e) != 2 {
			continue
		}
		body.AppendNewline()
		eb := body.AppendNewBlock("edge", nil).Body()
		eb.SetAttributeValue("from", cty.StringVal(e[0]))
		eb.SetAttributeValue("to", cty.StringVal(e[1]))
	}

	return f.Bytes()
}
