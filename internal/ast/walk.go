package ast

// Walk visits v, its children and its filter arguments depth-first in
// source order. Returning false from fn skips everything below that value.
func Walk(v *Value, fn func(*Value) bool) {
	if v == nil || !fn(v) {
		return
	}
	for i := range v.Children {
		Walk(&v.Children[i], fn)
	}
	for i := range v.Filters {
		Walk(v.Filters[i].Arg, fn)
	}
}
