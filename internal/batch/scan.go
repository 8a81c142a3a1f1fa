package batch

import (
	"bytes"
)

// Invocation is one `{% tag attrs %}` found in a template.
// Start and End delimit the attribute text inside the template.
type Invocation struct {
	Tag         string
	TagStart    uint32 // offset of "{%"
	Start       uint32
	End         uint32
	SelfClosing bool // `{% tag ... / %}`
}

var (
	blockOpen  = []byte("{%")
	blockClose = []byte("%}")
)

// Scan returns the invocations of tags in content, in source order.
// Quoted strings inside a tag may contain "%}". An unterminated block ends the scan.
func Scan(content []byte, tags []string) []Invocation {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}

	var out []Invocation
	pos := 0
	for {
		rel := bytes.Index(content[pos:], blockOpen)
		if rel < 0 {
			return out
		}
		open := pos + rel
		end, ok := findBlockEnd(content, open+len(blockOpen))
		if !ok {
			return out
		}
		if inv, ok := invocation(content, open, end, want); ok {
			out = append(out, inv)
		}
		pos = end + len(blockClose)
	}
}

// findBlockEnd ищет "%}" вне кавычек.
func findBlockEnd(content []byte, from int) (int, bool) {
	var quote byte
	for i := from; i < len(content); i++ {
		c := content[i]
		switch {
		case quote != 0:
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '%' && i+1 < len(content) && content[i+1] == '}':
			return i, true
		}
	}
	return 0, false
}

func invocation(content []byte, open, end int, want map[string]bool) (Invocation, bool) {
	i := skipSpace(content, open+len(blockOpen), end)
	nameStart := i
	for i < end && isTagNameByte(content[i], i == nameStart) {
		i++
	}
	name := string(content[nameStart:i])
	if name == "" || !want[name] {
		return Invocation{}, false
	}
	// имя должно заканчиваться пробелом или концом блока
	if i < end && !isSpace(content[i]) {
		return Invocation{}, false
	}

	start := skipSpace(content, i, end)
	stop := trimSpaceRight(content, start, end)
	selfClosing := false
	if stop > start && content[stop-1] == '/' && (stop-1 == start || isSpace(content[stop-2])) {
		selfClosing = true
		stop = trimSpaceRight(content, start, stop-1)
	}

	return Invocation{
		Tag:         name,
		TagStart:    uint32(open),  // #nosec G115 -- file size checked by FileSet
		Start:       uint32(start), // #nosec G115
		End:         uint32(stop),  // #nosec G115
		SelfClosing: selfClosing,
	}, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(content []byte, i, end int) int {
	for i < end && isSpace(content[i]) {
		i++
	}
	return i
}

func trimSpaceRight(content []byte, start, end int) int {
	for end > start && isSpace(content[end-1]) {
		end--
	}
	return end
}

func isTagNameByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case !first && (c >= '0' && c <= '9' || c == '-'):
		return true
	}
	return false
}
