package message

import (
	"strings"

	"github.com/rs/zerolog"
)

// Parser turns template text into a ParsedMessage.
// It holds no per-call state and is safe for concurrent use.
type Parser struct {
	log zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report permissive recoveries at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = l
	}
}

// New creates a Parser. Without options it logs nothing.
func New(opts ...Option) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses raw with a default Parser.
func Parse(raw string) (ParsedMessage, error) {
	return defaultParser.Parse(raw)
}

// Parse parses raw in a single left-to-right pass. A plural group without
// an explicit key inherits the key of the closest preceding number
// parameter or plural group, so such groups must follow the part that
// establishes their key. The only error is *PluralKeyMissingError; no
// partial result is returned with it.
func (p *Parser) Parse(raw string) (ParsedMessage, error) {
	var (
		msg      = make(ParsedMessage, 0)
		countKey string
	)
	for _, span := range Segment(raw) {
		part, next, err := p.parseSpan(span, countKey)
		if err != nil {
			return nil, err
		}
		countKey = next
		if part == nil {
			continue
		}
		// Keyless placeholders come back as text; join them with their neighbours.
		if text, ok := part.(*TextPart); ok && len(msg) > 0 {
			if prev, ok := msg[len(msg)-1].(*TextPart); ok {
				msg[len(msg)-1] = &TextPart{Content: prev.Content + text.Content}
				continue
			}
		}
		msg = append(msg, part)
	}
	return msg, nil
}

// parseSpan classifies and parses one span. It takes the inherited count
// key and returns the key in effect after the span.
func (p *Parser) parseSpan(span Span, countKey string) (Part, string, error) {
	if !span.Bracketed {
		return Normalize(&TextPart{Content: span.Text}), countKey, nil
	}

	content := stripBraces(span.Text)
	if strings.HasPrefix(content, "{") {
		plural, key, err := p.parsePlural(stripBraces(content), countKey, span.Offset)
		if err != nil {
			return nil, countKey, err
		}
		return Normalize(plural), key, nil
	}

	param := normalizeParameter(parseParameter(content))
	if param.Key == "" {
		p.log.Debug().
			Str("placeholder", span.Text).
			Int("offset", span.Offset).
			Msg("placeholder without a key, keeping it as text")
		return &TextPart{Content: span.Text}, countKey, nil
	}
	if param.Type == NumberType {
		countKey = param.Key
	}
	return param, countKey, nil
}
