package message

// UnknownType is the type assigned to parameters without a type annotation.
const UnknownType = "unknown"

// NumberType marks a parameter whose key can be inherited by later plural groups.
const NumberType = "number"

// Kind discriminates the concrete type behind a Part or Transform.
type Kind string

const (
	KindText       Kind = "text"
	KindParameter  Kind = "parameter"
	KindPlural     Kind = "plural"
	KindFormatter  Kind = "formatter"
	KindSwitchCase Kind = "switch-case"
)

// ParsedMessage is the ordered result of parsing a template.
// Part order reproduces source order and is the contract with renderers.
type ParsedMessage []Part

// Part is one element of a ParsedMessage: *TextPart, *ParameterPart or *PluralPart.
type Part interface {
	Kind() Kind
	part()
}

// TextPart is literal text copied verbatim by renderers.
type TextPart struct {
	Content string
}

// ParameterPart is a placeholder bound to a runtime value by key.
type ParameterPart struct {
	Key        string
	Type       string
	Optional   bool
	Transforms []Transform
}

// PluralPart selects one of its count forms from the value bound to Key.
// Forms always holds FormOther.
type PluralPart struct {
	Key   string
	Forms map[CountForm]string
}

func (*TextPart) Kind() Kind      { return KindText }
func (*ParameterPart) Kind() Kind { return KindParameter }
func (*PluralPart) Kind() Kind    { return KindPlural }

func (*TextPart) part()      {}
func (*ParameterPart) part() {}
func (*PluralPart) part()    {}

// Form returns the text for a count form and whether it was declared.
func (p *PluralPart) Form(f CountForm) (string, bool) {
	v, ok := p.Forms[f]
	return v, ok
}

// Other returns the mandatory fallback form.
func (p *PluralPart) Other() string {
	return p.Forms[FormOther]
}

// Transform is a post-processing step applied to a parameter value:
// *FormatterPart or *SwitchCasePart.
type Transform interface {
	Kind() Kind
	transform()
}

// FormatterPart names a formatter resolved by the rendering engine.
type FormatterPart struct {
	Name string
}

// SwitchCasePart maps discrete values to replacement text.
// Cases keep declaration order; duplicate keys are passed through.
type SwitchCasePart struct {
	Cases []SwitchCase
	// Raw is the original bracketed expression.
	Raw string
}

// SwitchCase is one branch of a SwitchCasePart. The default branch is keyed "*".
type SwitchCase struct {
	Key   string
	Value string
}

func (*FormatterPart) Kind() Kind  { return KindFormatter }
func (*SwitchCasePart) Kind() Kind { return KindSwitchCase }

func (*FormatterPart) transform()  {}
func (*SwitchCasePart) transform() {}

// Keys returns the parameter and plural keys referenced by the message,
// in first-seen order without duplicates.
func (m ParsedMessage) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	for _, p := range m {
		switch v := p.(type) {
		case *ParameterPart:
			add(v.Key)
		case *PluralPart:
			add(v.Key)
		case *TextPart:
		}
	}
	return keys
}
