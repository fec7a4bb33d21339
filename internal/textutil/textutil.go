package textutil

import (
	"strconv"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a stable hex key for a template, used by the parse cache.
func Hash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}

// Truncate shortens s to at most maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
