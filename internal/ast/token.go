package ast

import "tagattr/internal/source"

// Token is a piece of source text with its position.
type Token struct {
	Text string         `json:"text" yaml:"text" msgpack:"text"`
	Span source.Span    `json:"span" yaml:"span" msgpack:"span"`
	Pos  source.LineCol `json:"pos" yaml:"pos" msgpack:"pos"`
}
