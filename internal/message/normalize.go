package message

import (
	"slices"
	"strings"
)

// pluralAllowEmpty lists the plural forms kept even when empty:
// an empty "other" is a valid rendering ("Mitglied{{er|}}").
var pluralAllowEmpty = []CountForm{FormOther}

// Normalize returns a copy of part with every string leaf trimmed and empty
// values removed. It returns nil when nothing meaningful remains. Text
// content is literal and only checked for emptiness. Normalize is idempotent.
func Normalize(part Part) Part {
	switch p := part.(type) {
	case *TextPart:
		if p == nil || p.Content == "" {
			return nil
		}
		return &TextPart{Content: p.Content}
	case *ParameterPart:
		if p == nil {
			return nil
		}
		return normalizeParameter(p)
	case *PluralPart:
		if p == nil {
			return nil
		}
		return normalizePlural(p, pluralAllowEmpty)
	default:
		return nil
	}
}

func normalizeParameter(p *ParameterPart) *ParameterPart {
	typ := strings.TrimSpace(p.Type)
	if typ == "" {
		typ = UnknownType
	}

	out := &ParameterPart{
		Key:        strings.TrimSpace(p.Key),
		Type:       typ,
		Optional:   p.Optional,
		Transforms: make([]Transform, 0, len(p.Transforms)),
	}
	for _, t := range p.Transforms {
		if nt := normalizeTransform(t); nt != nil {
			out.Transforms = append(out.Transforms, nt)
		}
	}
	return out
}

func normalizeTransform(t Transform) Transform {
	switch v := t.(type) {
	case *FormatterPart:
		if v == nil {
			return nil
		}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return nil
		}
		return &FormatterPart{Name: name}
	case *SwitchCasePart:
		if v == nil {
			return nil
		}
		out := &SwitchCasePart{
			Cases: make([]SwitchCase, 0, len(v.Cases)),
			Raw:   strings.TrimSpace(v.Raw),
		}
		for _, c := range v.Cases {
			c = SwitchCase{Key: strings.TrimSpace(c.Key), Value: strings.TrimSpace(c.Value)}
			if c.Key == "" && c.Value == "" {
				continue
			}
			out.Cases = append(out.Cases, c)
		}
		return out
	default:
		return nil
	}
}

func normalizePlural(p *PluralPart, allowEmpty []CountForm) *PluralPart {
	out := &PluralPart{
		Key:   strings.TrimSpace(p.Key),
		Forms: make(map[CountForm]string, len(p.Forms)),
	}
	for form, text := range p.Forms {
		text = strings.TrimSpace(text)
		if text == "" && !slices.Contains(allowEmpty, form) {
			continue
		}
		out.Forms[form] = text
	}
	return out
}
