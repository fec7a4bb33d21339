package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"message-parser/internal/message"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []message.Span
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "literal only",
			input:    "plain text",
			expected: []message.Span{{Text: "plain text"}},
		},
		{
			name:  "adjacent brackets produce no empty literal",
			input: "{a}{b}",
			expected: []message.Span{
				{Text: "{a}", Bracketed: true, Offset: 0},
				{Text: "{b}", Bracketed: true, Offset: 3},
			},
		},
		{
			name:  "one level of nesting",
			input: "I have {{count:one|many}} items",
			expected: []message.Span{
				{Text: "I have ", Offset: 0},
				{Text: "{{count:one|many}}", Bracketed: true, Offset: 7},
				{Text: " items", Offset: 25},
			},
		},
		{
			name:  "several nested groups in one span",
			input: "{x|{a: b}|{c: d}}",
			expected: []message.Span{
				{Text: "{x|{a: b}|{c: d}}", Bracketed: true},
			},
		},
		{
			name:  "second level of nesting is rejected",
			input: "{{{a}}}",
			expected: []message.Span{
				{Text: "{", Offset: 0},
				{Text: "{{a}}", Bracketed: true, Offset: 1},
				{Text: "}", Offset: 6},
			},
		},
		{
			name:     "unclosed brace",
			input:    "left {open",
			expected: []message.Span{{Text: "left {open"}},
		},
		{
			name:  "extra closing brace",
			input: "{a}}",
			expected: []message.Span{
				{Text: "{a}", Bracketed: true},
				{Text: "}", Offset: 3},
			},
		},
		{
			name:  "multibyte literal offsets are byte offsets",
			input: "Größe {n}",
			expected: []message.Span{
				{Text: "Größe "},
				{Text: "{n}", Bracketed: true, Offset: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, message.Segment(tt.input))
		})
	}
}

func TestSegment_PreservesInput(t *testing.T) {
	inputs := []string{
		"Hi {name: string | upper}, today is: {date: Date | dateTime}",
		"{{{ nested }}} and {unclosed",
		"}{}{",
	}
	for _, in := range inputs {
		var joined string
		for _, s := range message.Segment(in) {
			assert.Equal(t, in[s.Offset:s.Offset+len(s.Text)], s.Text)
			joined += s.Text
		}
		assert.Equal(t, in, joined)
	}
}
