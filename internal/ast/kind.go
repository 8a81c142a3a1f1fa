package ast

import "fmt"

type ValueKind uint8

const (
	KindList ValueKind = iota
	KindDict
	KindInt
	KindFloat
	KindVariable
	KindExpression  // string literal containing template markup
	KindTranslation // _("...")
	KindString
)

var valueKindNames = [...]string{
	KindList:        "list",
	KindDict:        "dict",
	KindInt:         "int",
	KindFloat:       "float",
	KindVariable:    "variable",
	KindExpression:  "expression",
	KindTranslation: "translation",
	KindString:      "string",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

func (k ValueKind) MarshalText() ([]byte, error) {
	if int(k) >= len(valueKindNames) {
		return nil, fmt.Errorf("unknown value kind %d", k)
	}
	return []byte(valueKindNames[k]), nil
}

func (k *ValueKind) UnmarshalText(b []byte) error {
	for i, name := range valueKindNames {
		if name == string(b) {
			*k = ValueKind(i) // #nosec G115 -- bounded by len(valueKindNames)
			return nil
		}
	}
	return fmt.Errorf("unknown value kind %q", b)
}

// Spread is the marker in front of a value.
type Spread string

const (
	SpreadNone Spread = ""
	SpreadAttr Spread = "..." // tag attribute
	SpreadList Spread = "*"   // list item
	SpreadDict Spread = "**"  // dict item
)
