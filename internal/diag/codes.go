package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004

	// Синтаксические
	SynInfo                   Code = 2000
	SynUnexpectedToken        Code = 2001
	SynExpectValue            Code = 2002
	SynExpectFilterName       Code = 2003
	SynExpectString           Code = 2004
	SynUnclosedBracket        Code = 2005
	SynUnclosedBrace          Code = 2006
	SynUnclosedParen          Code = 2007
	SynAssignSpacing          Code = 2008 // trivia around '='
	SynExpectSeparator        Code = 2009
	SynUnexpectedColon        Code = 2010
	SynFilterArgWithoutFilter Code = 2011
	SynDictKeyMissingValue    Code = 2012

	// spread markers
	SynSpreadMissingValue  Code = 2100
	SynSpreadSpacing       Code = 2101
	SynSpreadInList        Code = 2102
	SynSpreadInDict        Code = 2103
	SynSpreadAfterKey      Code = 2104
	SynSpreadInFilter      Code = 2105
	SynSpreadAsDictValue   Code = 2106
	SynStarOutsideList     Code = 2107
	SynStarStarOutsideDict Code = 2108
	SynSpreadAsDictKey     Code = 2109

	// Семантические
	SemInfo           Code = 3000
	SemMissingValue   Code = 3001
	SemInvalidDictKey Code = 3002
	SemUnexpectedRule Code = 3003
	SemI18nQuotes     Code = 3004
	SemMaxDepth       Code = 3005

	// ввод-вывод (check)
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Наблюдаемость
	ObsTimings Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unknown character",
		LexUnterminatedString:  "Unterminated string literal",
		LexUnterminatedComment: "Unterminated comment",
		LexBadNumber:           "Malformed number",

		SynInfo:                   "Syntax information",
		SynUnexpectedToken:        "Unexpected token",
		SynExpectValue:            "Expected value",
		SynExpectFilterName:       "Expected filter name",
		SynExpectString:           "Expected string literal in translation",
		SynUnclosedBracket:        "Unclosed '['",
		SynUnclosedBrace:          "Unclosed '{'",
		SynUnclosedParen:          "Unclosed '_('",
		SynAssignSpacing:          "Whitespace or comment around '='",
		SynExpectSeparator:        "Expected separator",
		SynUnexpectedColon:        "Unexpected colon",
		SynFilterArgWithoutFilter: "Filter argument without filter",
		SynDictKeyMissingValue:    "Dictionary key is missing a value",

		SynSpreadMissingValue:  "Spread is missing a value",
		SynSpreadSpacing:       "Whitespace after spread marker",
		SynSpreadInList:        "Attribute spread inside a list",
		SynSpreadInDict:        "Attribute spread inside a dictionary",
		SynSpreadAfterKey:      "Attribute spread after a key",
		SynSpreadInFilter:      "Spread inside a filter",
		SynSpreadAsDictValue:   "Spread as a dictionary value",
		SynStarOutsideList:     "List spread outside of a list",
		SynStarStarOutsideDict: "Dictionary spread outside of a dictionary",
		SynSpreadAsDictKey:     "Spread as a dictionary key",

		SemInfo:           "Semantic information",
		SemMissingValue:   "Missing value for key",
		SemInvalidDictKey: "Invalid dictionary key",
		SemUnexpectedRule: "Unexpected syntax node",
		SemI18nQuotes:     "No quotes in translation",
		SemMaxDepth:       "Nesting too deep",

		IOLoadFileError: "Failed to load file",
		IOCacheError:    "Result cache failure",

		ObsTimings: "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

// IsSemantic reports whether the code belongs to the tree-to-AST phase.
func (c Code) IsSemantic() bool {
	return c >= 3000 && c < 4000
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
