package message

import (
	"strings"
)

// CountForm names one of the plural categories a PluralPart can declare.
type CountForm string

const (
	FormZero  CountForm = "zero"
	FormOne   CountForm = "one"
	FormTwo   CountForm = "two"
	FormFew   CountForm = "few"
	FormMany  CountForm = "many"
	FormOther CountForm = "other"
)

// CountForms lists every form in declaration order of the full syntax.
var CountForms = []CountForm{FormZero, FormOne, FormTwo, FormFew, FormMany, FormOther}

// pluralLayouts maps the number of supplied values to the forms they fill.
// Counts not listed here fall back to the positional order of CountForms.
var pluralLayouts = map[int][]CountForm{
	1: {FormOther},
	2: {FormOne, FormOther},
	3: {FormZero, FormOne, FormOther},
	6: CountForms,
}

// parsePlural parses the inner content of a {{...}} group.
// inherited is the count key established earlier in the same message; the
// returned key replaces it for following groups.
func (p *Parser) parsePlural(content, inherited string, offset int) (*PluralPart, string, error) {
	// Only the first ':' separates the key; later ones belong to the values.
	key, values, explicit := strings.Cut(content, ":")
	if !explicit {
		values = key
		key = ""
	}

	key = strings.TrimSpace(key)
	if key == "" {
		key = inherited
	}
	if key == "" {
		return nil, "", &PluralKeyMissingError{Group: content, Offset: offset}
	}

	entries := strings.Split(values, "|")
	layout, ok := pluralLayouts[len(entries)]
	if !ok {
		p.log.Debug().
			Int("values", len(entries)).
			Str("group", content).
			Msg("plural group has an unspecified number of values, mapping positionally")
		layout = CountForms
	}

	forms := make(map[CountForm]string, len(layout))
	for i, form := range layout {
		if i < len(entries) {
			forms[form] = entries[i]
		}
	}
	if _, ok := forms[FormOther]; !ok {
		forms[FormOther] = ""
	}

	return &PluralPart{Key: key, Forms: forms}, key, nil
}
