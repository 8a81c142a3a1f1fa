// Package cst holds the concrete syntax tree produced by the parser.
//
// Every node records the rule that matched and the exact input span it
// covers; comments are kept as RuleComment leaves of the enclosing node.
// The tree is consumed by internal/build and printed by `tagattr parse --tree`.
package cst

import (
	"tagattr/internal/source"
)

type Rule uint8

const (
	RuleTag Rule = iota
	RuleAttribute
	RuleKey
	RuleSpread      // marker: '...', '*' or '**'
	RuleSpreadValue // '...' filtered_value
	RuleFilteredValue
	RuleFilteredBasicValue // dictionary key
	RuleList
	RuleListItem
	RuleDict
	RuleDictItemPair
	RuleDictItemSpread
	RuleFilterChain
	RuleFilterChainNoArg
	RuleFilter
	RuleFilterNoArg
	RuleFilterName
	RuleFilterArg
	RuleI18nString
	RuleStringLiteral
	RuleInt
	RuleFloat
	RuleVariable
	RuleComment
)

var ruleNames = [...]string{
	RuleTag:                "tag",
	RuleAttribute:          "attribute",
	RuleKey:                "key",
	RuleSpread:             "spread",
	RuleSpreadValue:        "spread_value",
	RuleFilteredValue:      "filtered_value",
	RuleFilteredBasicValue: "filtered_basic_value",
	RuleList:               "list",
	RuleListItem:           "list_item",
	RuleDict:               "dict",
	RuleDictItemPair:       "dict_item_pair",
	RuleDictItemSpread:     "dict_item_spread",
	RuleFilterChain:        "filter_chain",
	RuleFilterChainNoArg:   "filter_chain_noarg",
	RuleFilter:             "filter",
	RuleFilterNoArg:        "filter_noarg",
	RuleFilterName:         "filter_name",
	RuleFilterArg:          "filter_arg",
	RuleI18nString:         "i18n_string",
	RuleStringLiteral:      "string_literal",
	RuleInt:                "int",
	RuleFloat:              "float",
	RuleVariable:           "variable",
	RuleComment:            "comment",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "rule(?)"
}

// Node is one matched rule.
type Node struct {
	Rule     Rule
	Span     source.Span
	Text     string // input covered by Span
	Children []*Node
}

// Inner returns the children without comments.
func (n *Node) Inner() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Rule != RuleComment {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first direct child matching rule, or nil.
func (n *Node) Find(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
