package ast

import "tagattr/internal/source"

// Value is a literal, a variable, a translation or a container, together
// with its spread marker and filters.
//
// Token covers the value alone: the literal, or the bracketed text of a
// list or dict. Span additionally covers the spread marker and the filters.
// Without either of them Span equals Token.Span.
//
// Dict children are flat: key, value, key, value. A '**' entry contributes
// a single child with Spread == SpreadDict. Use Entries to pair them.
type Value struct {
	Kind     ValueKind      `json:"kind" yaml:"kind" msgpack:"kind"`
	Token    Token          `json:"token" yaml:"token" msgpack:"token"`
	Children []Value        `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
	Spread   Spread         `json:"spread,omitempty" yaml:"spread,omitempty" msgpack:"spread,omitempty"`
	Filters  []Filter       `json:"filters,omitempty" yaml:"filters,omitempty" msgpack:"filters,omitempty"`
	Span     source.Span    `json:"span" yaml:"span" msgpack:"span"`
	Pos      source.LineCol `json:"pos" yaml:"pos" msgpack:"pos"`
}

// Entry is one dict item. Key is nil for a '**' spread.
type Entry struct {
	Key   *Value
	Value *Value
}

// Entries pairs the flat children of a dict. Returns nil for other kinds.
func (v *Value) Entries() []Entry {
	if v.Kind != KindDict {
		return nil
	}
	out := make([]Entry, 0, len(v.Children)/2+1)
	for i := 0; i < len(v.Children); i++ {
		child := &v.Children[i]
		if child.Spread == SpreadDict || i+1 == len(v.Children) {
			out = append(out, Entry{Value: child})
			continue
		}
		out = append(out, Entry{Key: child, Value: &v.Children[i+1]})
		i++
	}
	return out
}

// IsLiteral reports whether the value is known without a template context.
func (v *Value) IsLiteral() bool {
	switch v.Kind {
	case KindInt, KindFloat, KindString, KindTranslation:
		return true
	default:
		return false
	}
}

// Filter is `|name` or `|name:arg`.
// Span starts at the pipe. Arg.Span starts right after the filter name.
type Filter struct {
	Name Token          `json:"name" yaml:"name" msgpack:"name"`
	Arg  *Value         `json:"arg,omitempty" yaml:"arg,omitempty" msgpack:"arg,omitempty"`
	Span source.Span    `json:"span" yaml:"span" msgpack:"span"`
	Pos  source.LineCol `json:"pos" yaml:"pos" msgpack:"pos"`
}

// Attribute is one item of a tag: `key=value`, `...value` or a bare value.
type Attribute struct {
	Key   *Token         `json:"key,omitempty" yaml:"key,omitempty" msgpack:"key,omitempty"`
	Value Value          `json:"value" yaml:"value" msgpack:"value"`
	Span  source.Span    `json:"span" yaml:"span" msgpack:"span"`
	Pos   source.LineCol `json:"pos" yaml:"pos" msgpack:"pos"`
}

// IsSpread reports whether the attribute is `...value`.
func (a *Attribute) IsSpread() bool {
	return a.Value.Spread == SpreadAttr
}
