package interpolation

import (
	"fmt"
	"slices"
	"strings"

	"message-parser/internal/message"
)

// Mapping stores the original placeholder and its safe replacement.
type Mapping struct {
	Original    string
	Placeholder string
	Index       int
}

// Protect replaces every bracketed span of a template (parameters, plural
// groups, switch-cases) with a [[var_N]] token that machine translation
// leaves alone. Returns the safe string and the mapping to restore it.
func Protect(text string) (string, []Mapping) {
	var (
		sb       strings.Builder
		mappings []Mapping
	)
	for _, span := range message.Segment(text) {
		if !span.Bracketed {
			sb.WriteString(span.Text)
			continue
		}
		idx := len(mappings) + 1
		placeholder := fmt.Sprintf("[[var_%d]]", idx)
		mappings = append(mappings, Mapping{
			Original:    span.Text,
			Placeholder: placeholder,
			Index:       idx,
		})
		sb.WriteString(placeholder)
	}
	return sb.String(), mappings
}

// Restore replaces [[var_N]] tokens back with the original spans.
func Restore(translated string, mappings []Mapping) string {
	result := translated
	for _, m := range mappings {
		result = strings.Replace(result, m.Placeholder, m.Original, 1)
	}
	return result
}

// Missing returns the mappings whose token no longer appears in translated.
func Missing(translated string, mappings []Mapping) []Mapping {
	var missing []Mapping
	for _, m := range mappings {
		if !strings.Contains(translated, m.Placeholder) {
			missing = append(missing, m)
		}
	}
	return missing
}

// KeyDiff lists the placeholder keys that differ between a source template
// and its translation.
type KeyDiff struct {
	// Missing keys are used by the source but not by the translation.
	Missing []string
	// Extra keys are used by the translation but not by the source.
	Extra []string
}

// Empty reports whether both templates reference the same keys.
func (d KeyDiff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Compare parses both templates and reports the keys they do not share.
func Compare(parser *message.Parser, source, translation string) (KeyDiff, error) {
	src, err := parser.Parse(source)
	if err != nil {
		return KeyDiff{}, fmt.Errorf("parse source: %w", err)
	}
	dst, err := parser.Parse(translation)
	if err != nil {
		return KeyDiff{}, fmt.Errorf("parse translation: %w", err)
	}

	srcKeys, dstKeys := src.Keys(), dst.Keys()
	var diff KeyDiff
	for _, k := range srcKeys {
		if !slices.Contains(dstKeys, k) {
			diff.Missing = append(diff.Missing, k)
		}
	}
	for _, k := range dstKeys {
		if !slices.Contains(srcKeys, k) {
			diff.Extra = append(diff.Extra, k)
		}
	}
	return diff, nil
}
