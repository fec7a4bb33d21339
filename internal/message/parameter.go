package message

import "strings"

// parseParameter parses the inner content of a {...} placeholder, e.g.
// "name?:string|upper|{ a: b }". Whitespace is left for Normalize.
func parseParameter(content string) *ParameterPart {
	exprs := strings.Split(content, "|")

	key, typ, typed := strings.Cut(exprs[0], ":")
	if !typed {
		typ = UnknownType
	}

	// "name?" is optional; anything after the first '?' other than nothing
	// at all leaves the parameter required.
	key, marker, marked := strings.Cut(key, "?")
	optional := marked && marker == ""

	param := &ParameterPart{
		Key:        key,
		Type:       typ,
		Optional:   optional,
		Transforms: make([]Transform, 0, len(exprs)-1),
	}
	for _, expr := range exprs[1:] {
		param.Transforms = append(param.Transforms, parseTransform(expr))
	}
	return param
}

// parseTransform classifies one pipe-separated transform expression.
func parseTransform(expr string) Transform {
	trimmed := strings.TrimSpace(expr)
	if isSwitchCase(trimmed) {
		return &SwitchCasePart{
			Cases: parseSwitchCases(stripBraces(trimmed)),
			Raw:   trimmed,
		}
	}
	return &FormatterPart{Name: trimmed}
}

// isSwitchCase reports whether expr is a single pair of braces around
// arbitrary content.
func isSwitchCase(expr string) bool {
	return len(expr) >= 2 && expr[0] == '{' && expr[len(expr)-1] == '}'
}
