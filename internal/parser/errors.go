package parser

import (
	"tagattr/internal/diag"
	"tagattr/internal/token"
)

const (
	msgUnexpectedColon      = "Unexpected colon"
	msgFilterArgNeedsFilter = "Filter argument (':arg') must follow a filter ('|filter')"
	msgDictKeyMissingValue  = "Dictionary key is missing a value"
	msgSpreadMissingValue   = "Spread syntax '...' is missing a value"
	msgSpreadAfterKey       = "Spread syntax '...' cannot follow a key ('key=...attrs')"
	msgSpreadInList         = "Spread syntax '...' found in list. It must be used on tag attributes only"
	msgSpreadInDict         = "Spread syntax '...' found in dict. It must be used on tag attributes only"
	msgSpreadInFilter       = "Spread syntax cannot be used inside of a filter"
	msgSpreadAsDictValue    = "Spread syntax cannot be used in place of a dictionary value"
	msgSpreadAsDictKey      = "Spread syntax cannot be used in place of a dictionary key"
	msgStarOutsideList      = "Spread syntax '*' found outside of a list"
	msgStarStarOutsideDict  = "Spread syntax '**' found outside of a dictionary"
)

// valueCtx: где разбирается значение; от него зависят сообщения об ошибках.
type valueCtx uint8

const (
	ctxAttr      valueCtx = iota // верхний уровень (в т.ч. после '...')
	ctxAfterKey                  // key=<value>
	ctxList                      // элемент списка (в т.ч. после '*')
	ctxDictKey                   // ключ словаря
	ctxDictValue                 // значение словаря
	ctxDictSpread                // после '**'
	ctxFilterArg                 // аргумент фильтра
)

// spreadMisplaced репортит маркер spread там, где он запрещён.
func (p *Parser) spreadMisplaced(ctx valueCtx) bool {
	sp := p.tok.Span
	switch ctx {
	case ctxFilterArg:
		return p.fail(diag.SynSpreadInFilter, sp, msgSpreadInFilter)
	case ctxDictValue:
		return p.fail(diag.SynSpreadAsDictValue, sp, msgSpreadAsDictValue)
	}

	switch p.tok.Kind {
	case token.Ellipsis:
		switch ctx {
		case ctxList:
			return p.fail(diag.SynSpreadInList, sp, msgSpreadInList)
		case ctxDictKey, ctxDictSpread:
			return p.fail(diag.SynSpreadInDict, sp, msgSpreadInDict)
		case ctxAfterKey:
			return p.fail(diag.SynSpreadAfterKey, sp, msgSpreadAfterKey)
		default:
			return p.fail(diag.SynSpreadMissingValue, sp, msgSpreadMissingValue)
		}
	case token.Star:
		return p.fail(diag.SynStarOutsideList, sp, msgStarOutsideList)
	default:
		return p.fail(diag.SynStarStarOutsideDict, sp, msgStarStarOutsideDict)
	}
}

// colonAfterValue репортит ':' после законченного значения.
func (p *Parser) colonAfterValue(ctx valueCtx) bool {
	if ctx == ctxDictSpread {
		return p.fail(diag.SynSpreadAsDictKey, p.tok.Span, msgSpreadAsDictKey)
	}
	return p.fail(diag.SynFilterArgWithoutFilter, p.tok.Span, msgFilterArgNeedsFilter)
}
