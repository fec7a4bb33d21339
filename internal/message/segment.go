package message

import "strings"

// maxBraceDepth is the deepest nesting a bracketed span may contain.
// Depth 2 covers plural groups ({{...}}) and switch-case transforms.
const maxBraceDepth = 2

// Span is a region of the raw template.
type Span struct {
	// Text is the region as written, braces included for bracketed spans.
	Text string
	// Bracketed is true for {...} regions.
	Bracketed bool
	// Offset is the byte offset of Text in the raw template.
	Offset int
}

// Segment splits raw into literal and bracketed spans in source order.
// A '{' that does not open a balanced span of depth at most two is kept
// as literal text and scanning resumes right after it. Empty spans are
// never emitted.
func Segment(raw string) []Span {
	var (
		spans []Span
		lit   strings.Builder
		start int
	)

	flush := func() {
		if lit.Len() > 0 {
			spans = append(spans, Span{Text: lit.String(), Offset: start})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		if raw[i] == '{' {
			if end, ok := matchBrace(raw, i); ok {
				flush()
				spans = append(spans, Span{Text: raw[i : end+1], Bracketed: true, Offset: i})
				i = end + 1
				continue
			}
		}
		if lit.Len() == 0 {
			start = i
		}
		lit.WriteByte(raw[i])
		i++
	}
	flush()

	return spans
}

// matchBrace returns the index of the '}' closing the '{' at open.
func matchBrace(raw string, open int) (int, bool) {
	depth := 0
	for j := open; j < len(raw); j++ {
		switch raw[j] {
		case '{':
			depth++
			if depth > maxBraceDepth {
				return 0, false
			}
		case '}':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// stripBraces removes exactly one leading and one trailing character.
func stripBraces(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
