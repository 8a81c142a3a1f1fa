package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Key is an attribute key; produced only when '=' follows immediately.
	Key // @click.stop, attr:key
	// Ident is a variable reference or a filter name.
	Ident // my.nested.value
	// IntLit represents the integer literal token.
	IntLit // 42, -1, 001
	// FloatLit represents the float literal token.
	FloatLit // -1.5, .3, 20.e+02
	// StringLit represents a single- or double-quoted string.
	StringLit
	// I18nOpen opens a translation: _(
	I18nOpen

	Assign   // =
	Pipe     // |
	Colon    // :
	Comma    // ,
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	RParen   // )
	Ellipsis // ...
	Star     // *
	StarStar // **
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Key:       "Key",
	Ident:     "Ident",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	I18nOpen:  "I18nOpen",
	Assign:    "Assign",
	Pipe:      "Pipe",
	Colon:     "Colon",
	Comma:     "Comma",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	RParen:    "RParen",
	Ellipsis:  "Ellipsis",
	Star:      "Star",
	StarStar:  "StarStar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindSymbols = map[Kind]string{
	EOF:      "end of input",
	Assign:   "'='",
	Pipe:     "'|'",
	Colon:    "':'",
	Comma:    "','",
	LBracket: "'['",
	RBracket: "']'",
	LBrace:   "'{'",
	RBrace:   "'}'",
	RParen:   "')'",
	I18nOpen: "'_('",
	Ellipsis: "'...'",
	Star:     "'*'",
	StarStar: "'**'",
}

// Describe returns the form used in diagnostics ("':'", "end of input", "IntLit").
func (k Kind) Describe() string {
	if s, ok := kindSymbols[k]; ok {
		return s
	}
	return k.String()
}
