package ast

import "strings"

// Serialize renders attributes back into tag syntax in a normalised form:
// one space between attributes, ", " between items, no comments.
// Parsing the output yields the same tree up to positions.
func Serialize(attrs []Attribute) string {
	var b strings.Builder
	for i := range attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeAttribute(&b, &attrs[i])
	}
	return b.String()
}

// SerializeValue renders a single value with its spread and filters.
func SerializeValue(v *Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeAttribute(b *strings.Builder, a *Attribute) {
	if a.Key != nil {
		b.WriteString(a.Key.Text)
		b.WriteByte('=')
	}
	writeValue(b, &a.Value)
}

func writeValue(b *strings.Builder, v *Value) {
	b.WriteString(string(v.Spread))

	switch v.Kind {
	case KindList:
		b.WriteByte('[')
		for i := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, &v.Children[i])
		}
		b.WriteByte(']')
	case KindDict:
		b.WriteByte('{')
		for i, e := range v.Entries() {
			if i > 0 {
				b.WriteString(", ")
			}
			if e.Key != nil {
				writeValue(b, e.Key)
				b.WriteString(": ")
			}
			writeValue(b, e.Value)
		}
		b.WriteByte('}')
	default:
		b.WriteString(v.Token.Text)
	}

	for i := range v.Filters {
		f := &v.Filters[i]
		b.WriteByte('|')
		b.WriteString(f.Name.Text)
		if f.Arg != nil {
			b.WriteByte(':')
			writeValue(b, f.Arg)
		}
	}
}
