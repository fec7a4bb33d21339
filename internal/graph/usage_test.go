package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"message-parser/internal/message"
)

func TestExtract(t *testing.T) {
	msg, err := message.Parse("{name?:string|upper|trim} has {count:number} apple{{s}}, {g|{ m: his }} {{count:x|y}}")
	require.NoError(t, err)

	u := Extract("cart.summary", "en.json", msg)
	assert.Equal(t, Usage{
		MessageKey: "cart.summary",
		File:       "en.json",
		Params: []ParamUse{
			{Key: "name", Type: "string", Optional: true, Formatters: []string{"upper", "trim"}},
			{Key: "count", Type: "number"},
			{Key: "g", Type: "unknown", SwitchCase: true},
		},
		CountKeys: []string{"count"},
	}, u)
	assert.Equal(t, "en.json#cart.summary", messageID(u))
}
