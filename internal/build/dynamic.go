package build

import (
	"regexp"
	"strings"
	"sync"
)

// Template markup inside a string literal makes it an expression:
// {{ var }}, {% tag %} or {# comment #}, each on one line.
var dynamicPatterns = sync.OnceValue(func() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\{\{.*?\}\}`),
		regexp.MustCompile(`\{%.*?%\}`),
		regexp.MustCompile(`\{#.*?#\}`),
	}
})

// IsDynamicExpression reports whether a string literal holds template markup.
// Translations (`_(...)`) are never dynamic.
func IsDynamicExpression(s string) bool {
	if strings.HasPrefix(s, "_(") {
		return false
	}
	for _, re := range dynamicPatterns() {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
