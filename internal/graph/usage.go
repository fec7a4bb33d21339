package graph

import (
	"message-parser/internal/message"
)

// ParamUse is one parameter reference in a message.
type ParamUse struct {
	Key        string
	Type       string
	Optional   bool
	Formatters []string
	SwitchCase bool
}

// Usage summarizes which keys and formatters a catalog message references.
type Usage struct {
	MessageKey string
	File       string
	Params     []ParamUse
	// CountKeys are the keys plural groups select on, in first-seen order.
	CountKeys []string
}

// Extract builds the Usage of a parsed message.
func Extract(messageKey, file string, msg message.ParsedMessage) Usage {
	u := Usage{MessageKey: messageKey, File: file}
	seenCount := make(map[string]bool)

	for _, part := range msg {
		switch p := part.(type) {
		case *message.ParameterPart:
			use := ParamUse{Key: p.Key, Type: p.Type, Optional: p.Optional}
			for _, t := range p.Transforms {
				switch tr := t.(type) {
				case *message.FormatterPart:
					use.Formatters = append(use.Formatters, tr.Name)
				case *message.SwitchCasePart:
					use.SwitchCase = true
				}
			}
			u.Params = append(u.Params, use)
		case *message.PluralPart:
			if !seenCount[p.Key] {
				seenCount[p.Key] = true
				u.CountKeys = append(u.CountKeys, p.Key)
			}
		case *message.TextPart:
		}
	}
	return u
}
