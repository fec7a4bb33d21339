package message

import "strings"

// parseSwitchCases parses "male: his, female: her, *: their" into branches.
// A backslash-escaped comma is kept as a literal comma inside a branch.
// Each branch splits at its first ':'; a branch without one has an empty value.
func parseSwitchCases(content string) []SwitchCase {
	branches := splitUnescaped(content, ',')
	cases := make([]SwitchCase, 0, len(branches))
	for _, branch := range branches {
		key, value, _ := strings.Cut(branch, ":")
		cases = append(cases, SwitchCase{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return cases
}

// splitUnescaped splits s on sep, treating `\`+sep as a literal sep.
// Other backslashes are preserved.
func splitUnescaped(s string, sep byte) []string {
	var (
		parts []string
		cur   strings.Builder
	)
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == sep:
			cur.WriteByte(sep)
			i++
		case s[i] == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	return append(parts, cur.String())
}
