// Package tagattr parses the attribute list of a template tag.
//
// Given the text between a tag name and its closing delimiter, for example
//
//	"my_comp" key=val ...attrs data={"a": [1, *rest]|length} title=_("Hi")|upper
//
// ParseTag returns one Attribute per positional value, key=value pair or
// '...' spread. Every node records its byte span and its 1-based line and
// column in the input, so callers can point diagnostics back at the
// template.
//
// Parsing stops at the first problem and returns a *ParseError; there is
// never a partial result.
package tagattr
