// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tagattr/internal/ast"
	"tagattr/internal/source"
)

// CheckAttributeInvariants runs the structural checks on a successful parse:
//  1. every attribute span is non-empty, inside the file, and after the previous one
//  2. every value Span covers its Token span, its children and its filters
//  3. token text matches the source (translations are normalised, so skipped)
//  4. Pos agrees with Span.Start
//  5. dict children pair up: a non-spread key is always followed by a value
func CheckAttributeInvariants(attrs []ast.Attribute, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := checker{file: sf, size: size}

	var prevEnd uint32
	for i := range attrs {
		a := &attrs[i]
		if err := c.span("attribute", a.Span); err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
		if a.Span.Start < prevEnd {
			return fmt.Errorf("attribute %d span %v overlaps previous end %d", i, a.Span, prevEnd)
		}
		prevEnd = a.Span.End
		if err := c.pos(a.Span, a.Pos); err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
		if a.Key != nil {
			if err := c.token(*a.Key, a.Span); err != nil {
				return fmt.Errorf("attribute %d key: %w", i, err)
			}
		}
		if !a.Span.Contains(a.Value.Span) {
			return fmt.Errorf("attribute %d: value span %v outside %v", i, a.Value.Span, a.Span)
		}
		if err := c.value(&a.Value, false); err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
	}
	return nil
}

type checker struct {
	file *source.File
	size uint32
}

func (c checker) span(what string, sp source.Span) error {
	if sp.File != c.file.ID {
		return fmt.Errorf("%s span points to file %d, want %d", what, sp.File, c.file.ID)
	}
	if sp.End <= sp.Start {
		return fmt.Errorf("empty %s span %v", what, sp)
	}
	if sp.End > c.size {
		return fmt.Errorf("%s span end beyond content: %d > %d", what, sp.End, c.size)
	}
	return nil
}

func (c checker) pos(sp source.Span, got source.LineCol) error {
	if want := c.file.LineCol(sp.Start); got != want {
		return fmt.Errorf("pos %d:%d, want %d:%d for %v", got.Line, got.Col, want.Line, want.Col, sp)
	}
	return nil
}

func (c checker) token(tok ast.Token, outer source.Span) error {
	if err := c.span("token", tok.Span); err != nil {
		return err
	}
	if !outer.Contains(tok.Span) {
		return fmt.Errorf("token span %v outside %v", tok.Span, outer)
	}
	if text := c.file.Text(tok.Span); text != tok.Text {
		return fmt.Errorf("token text %q, source has %q", tok.Text, text)
	}
	return c.pos(tok.Span, tok.Pos)
}

// value checks v recursively. A filter argument's Span starts at the ':'
// after the filter name, so for it only containment of the token is checked.
func (c checker) value(v *ast.Value, arg bool) error {
	if err := c.span(v.Kind.String(), v.Span); err != nil {
		return err
	}
	if err := c.pos(v.Span, v.Pos); err != nil {
		return err
	}
	if v.Kind == ast.KindTranslation {
		if !v.Span.Contains(v.Token.Span) {
			return fmt.Errorf("translation token %v outside %v", v.Token.Span, v.Span)
		}
	} else if err := c.token(v.Token, v.Span); err != nil {
		return fmt.Errorf("%s: %w", v.Kind, err)
	}
	if !arg && v.Spread == ast.SpreadNone && len(v.Filters) == 0 && v.Span != v.Token.Span {
		return fmt.Errorf("%s: plain value span %v differs from token %v", v.Kind, v.Span, v.Token.Span)
	}

	switch v.Kind {
	case ast.KindList, ast.KindDict:
	default:
		if len(v.Children) != 0 {
			return fmt.Errorf("%s has %d children", v.Kind, len(v.Children))
		}
	}
	for i := range v.Children {
		child := &v.Children[i]
		if !v.Token.Span.Contains(child.Span) {
			return fmt.Errorf("%s child %d span %v outside %v", v.Kind, i, child.Span, v.Token.Span)
		}
		if err := c.value(child, false); err != nil {
			return err
		}
	}
	if v.Kind == ast.KindDict {
		for i, e := range v.Entries() {
			if e.Key == nil && e.Value.Spread != ast.SpreadDict {
				return fmt.Errorf("dict entry %d: key %v has no value", i, e.Value.Span)
			}
		}
	}

	for i := range v.Filters {
		f := &v.Filters[i]
		if !v.Span.Contains(f.Span) {
			return fmt.Errorf("filter %d span %v outside %v", i, f.Span, v.Span)
		}
		if err := c.token(f.Name, f.Span); err != nil {
			return fmt.Errorf("filter %d name: %w", i, err)
		}
		if f.Arg != nil {
			if !f.Span.Contains(f.Arg.Span) {
				return fmt.Errorf("filter %d arg span %v outside %v", i, f.Arg.Span, f.Span)
			}
			if err := c.value(f.Arg, true); err != nil {
				return fmt.Errorf("filter %d arg: %w", i, err)
			}
		}
	}
	return nil
}
