package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"tagattr/internal/ast"
	"tagattr/internal/source"
)

// ASTOutput: корень машиночитаемого дампа атрибутов.
type ASTOutput struct {
	Attributes []ast.Attribute `json:"attributes" yaml:"attributes" msgpack:"attributes"`
	Count      int             `json:"count" yaml:"count" msgpack:"count"`
}

func newASTOutput(attrs []ast.Attribute) ASTOutput {
	if attrs == nil {
		attrs = []ast.Attribute{}
	}
	return ASTOutput{Attributes: attrs, Count: len(attrs)}
}

func FormatASTJSON(w io.Writer, attrs []ast.Attribute) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newASTOutput(attrs))
}

func FormatASTYAML(w io.Writer, attrs []ast.Attribute) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newASTOutput(attrs)); err != nil {
		return err
	}
	return encoder.Close()
}

func FormatASTMsgpack(w io.Writer, attrs []ast.Attribute) error {
	return msgpack.NewEncoder(w).Encode(newASTOutput(attrs))
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty печатает атрибуты деревом:
//
//	Attribute[0] (span: 1:1-1:8)
//	├─ Key: "key" (span: 1:1-1:4)
//	└─ Value: variable val (span: 1:5-1:8)
func FormatASTPretty(w io.Writer, attrs []ast.Attribute, fs *source.FileSet) error {
	for i := range attrs {
		if err := writeTree(w, attributeNode(&attrs[i], i, fs), "", true, true); err != nil {
			return err
		}
	}
	return nil
}

func attributeNode(a *ast.Attribute, idx int, fs *source.FileSet) *treeNode {
	node := &treeNode{label: fmt.Sprintf("Attribute[%d] (span: %s)", idx, formatSpan(a.Span, fs))}
	if a.Key != nil {
		node.children = append(node.children, &treeNode{label: fmt.Sprintf("Key: %q (span: %s)", a.Key.Text, formatSpan(a.Key.Span, fs))})
	}
	node.children = append(node.children, valueNode("Value", &a.Value, fs))
	return node
}

func valueNode(role string, v *ast.Value, fs *source.FileSet) *treeNode {
	label := fmt.Sprintf("%s: %s", role, v.Kind)
	if v.Spread != ast.SpreadNone {
		label += " spread " + string(v.Spread)
	}
	switch v.Kind {
	case ast.KindList, ast.KindDict:
		label += fmt.Sprintf(" (span: %s)", formatSpan(v.Span, fs))
	default:
		label += fmt.Sprintf(" %s (span: %s)", v.Token.Text, formatSpan(v.Span, fs))
	}
	node := &treeNode{label: label}

	switch v.Kind {
	case ast.KindList:
		for i := range v.Children {
			node.children = append(node.children, valueNode(fmt.Sprintf("Item[%d]", i), &v.Children[i], fs))
		}
	case ast.KindDict:
		for i, e := range v.Entries() {
			if e.Key == nil {
				node.children = append(node.children, valueNode(fmt.Sprintf("Entry[%d]", i), e.Value, fs))
				continue
			}
			entry := &treeNode{label: fmt.Sprintf("Entry[%d]", i)}
			entry.children = append(entry.children, valueNode("Key", e.Key, fs), valueNode("Value", e.Value, fs))
			node.children = append(node.children, entry)
		}
	}

	for i := range v.Filters {
		f := &v.Filters[i]
		fn := &treeNode{label: fmt.Sprintf("Filter: |%s (span: %s)", f.Name.Text, formatSpan(f.Span, fs))}
		if f.Arg != nil {
			fn.children = append(fn.children, valueNode("Arg", f.Arg, fs))
		}
		node.children = append(node.children, fn)
	}
	return node
}

// writeTree печатает n и его детей с отступами ├─ / └─.
func writeTree(w io.Writer, n *treeNode, prefix string, last, root bool) error {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	if root {
		branch, next = "", ""
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, n.label); err != nil {
		return err
	}
	for i, c := range n.children {
		if err := writeTree(w, c, prefix+next, i == len(n.children)-1, false); err != nil {
			return err
		}
	}
	return nil
}

// formatSpan formats a source.Span into a string.
// If fs is non-nil, it resolves the span to start and end positions and returns "startLine:startCol-endLine:endCol".
// If fs is nil, it returns "span(start-end)".
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
