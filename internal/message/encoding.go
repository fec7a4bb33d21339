package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidEncoding is returned by Decode for malformed input.
var ErrInvalidEncoding = errors.New("invalid encoded message")

type textJSON struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
}

type parameterJSON struct {
	Kind       Kind              `json:"kind"`
	Key        string            `json:"key"`
	Type       string            `json:"type"`
	Optional   bool              `json:"optional"`
	Transforms []json.RawMessage `json:"transforms"`
}

type pluralJSON struct {
	Kind  Kind    `json:"kind"`
	Key   string  `json:"key"`
	Zero  *string `json:"zero,omitempty"`
	One   *string `json:"one,omitempty"`
	Two   *string `json:"two,omitempty"`
	Few   *string `json:"few,omitempty"`
	Many  *string `json:"many,omitempty"`
	Other string  `json:"other"`
}

type formatterJSON struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

type switchCaseJSON struct {
	Kind  Kind             `json:"kind"`
	Cases []switchCaseItem `json:"cases"`
	Raw   string           `json:"raw,omitempty"`
}

type switchCaseItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (t *TextPart) MarshalJSON() ([]byte, error) {
	return json.Marshal(textJSON{Kind: KindText, Content: t.Content})
}

func (p *ParameterPart) MarshalJSON() ([]byte, error) {
	out := parameterJSON{
		Kind:       KindParameter,
		Key:        p.Key,
		Type:       p.Type,
		Optional:   p.Optional,
		Transforms: make([]json.RawMessage, 0, len(p.Transforms)),
	}
	for _, t := range p.Transforms {
		raw, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("marshal transform: %w", err)
		}
		out.Transforms = append(out.Transforms, raw)
	}
	return json.Marshal(out)
}

func (p *PluralPart) MarshalJSON() ([]byte, error) {
	form := func(f CountForm) *string {
		if v, ok := p.Forms[f]; ok {
			return &v
		}
		return nil
	}
	return json.Marshal(pluralJSON{
		Kind:  KindPlural,
		Key:   p.Key,
		Zero:  form(FormZero),
		One:   form(FormOne),
		Two:   form(FormTwo),
		Few:   form(FormFew),
		Many:  form(FormMany),
		Other: p.Forms[FormOther],
	})
}

func (f *FormatterPart) MarshalJSON() ([]byte, error) {
	return json.Marshal(formatterJSON{Kind: KindFormatter, Name: f.Name})
}

func (s *SwitchCasePart) MarshalJSON() ([]byte, error) {
	out := switchCaseJSON{
		Kind:  KindSwitchCase,
		Cases: make([]switchCaseItem, 0, len(s.Cases)),
		Raw:   s.Raw,
	}
	for _, c := range s.Cases {
		out.Cases = append(out.Cases, switchCaseItem(c))
	}
	return json.Marshal(out)
}

// Decode restores a ParsedMessage from its JSON encoding.
func Decode(data []byte) (ParsedMessage, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidEncoding)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of parts", ErrInvalidEncoding)
	}

	var (
		msg = make(ParsedMessage, 0)
		err error
	)
	root.ForEach(func(_, item gjson.Result) bool {
		var part Part
		part, err = decodePart(item)
		if err != nil {
			return false
		}
		msg = append(msg, part)
		return true
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func decodePart(item gjson.Result) (Part, error) {
	switch kind := Kind(item.Get("kind").String()); kind {
	case KindText:
		var v textJSON
		if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
			return nil, fmt.Errorf("decode text part: %w", err)
		}
		return &TextPart{Content: v.Content}, nil
	case KindParameter:
		var v parameterJSON
		if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
			return nil, fmt.Errorf("decode parameter part: %w", err)
		}
		param := &ParameterPart{
			Key:        v.Key,
			Type:       v.Type,
			Optional:   v.Optional,
			Transforms: make([]Transform, 0, len(v.Transforms)),
		}
		for _, raw := range v.Transforms {
			t, err := decodeTransform(gjson.ParseBytes(raw))
			if err != nil {
				return nil, err
			}
			param.Transforms = append(param.Transforms, t)
		}
		return param, nil
	case KindPlural:
		var v pluralJSON
		if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
			return nil, fmt.Errorf("decode plural part: %w", err)
		}
		forms := map[CountForm]string{FormOther: v.Other}
		for form, text := range map[CountForm]*string{
			FormZero: v.Zero, FormOne: v.One, FormTwo: v.Two, FormFew: v.Few, FormMany: v.Many,
		} {
			if text != nil {
				forms[form] = *text
			}
		}
		return &PluralPart{Key: v.Key, Forms: forms}, nil
	default:
		return nil, fmt.Errorf("%w: unknown part kind %q", ErrInvalidEncoding, kind)
	}
}

func decodeTransform(item gjson.Result) (Transform, error) {
	switch kind := Kind(item.Get("kind").String()); kind {
	case KindFormatter:
		return &FormatterPart{Name: item.Get("name").String()}, nil
	case KindSwitchCase:
		var v switchCaseJSON
		if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
			return nil, fmt.Errorf("decode switch-case transform: %w", err)
		}
		sc := &SwitchCasePart{Cases: make([]SwitchCase, 0, len(v.Cases)), Raw: v.Raw}
		for _, c := range v.Cases {
			sc.Cases = append(sc.Cases, SwitchCase(c))
		}
		return sc, nil
	default:
		return nil, fmt.Errorf("%w: unknown transform kind %q", ErrInvalidEncoding, kind)
	}
}
