// Package ast defines the semantic tree of a tag attribute list.
//
// Every node carries a half-open byte span into the parsed input and the
// 1-based (line, column) of its start; columns count code points.
// Nodes are plain values: a parse call returns a fresh tree and nothing
// mutates it afterwards.
package ast
