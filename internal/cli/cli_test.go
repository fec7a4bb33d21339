package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"message-parser/internal/cache"
	"message-parser/internal/message"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "Test{{count:s}}")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind":"text","content":"Test"},
		{"kind":"plural","key":"count","other":"s"}
	]`, out)

	_, err = run(t, "parse", "Test{{s}}")
	assert.ErrorIs(t, err, message.ErrPluralKeyMissing)
}

func TestProtectCommand(t *testing.T) {
	out, err := run(t, "protect", "Hi {name}, {{n:one|many}}")
	require.NoError(t, err)
	assert.Equal(t, "Hi [[var_1]], [[var_2]]\n[[var_1]]\t{name}\n[[var_2]]\t{{n:one|many}}\n", out)
}

func TestDiffCommand(t *testing.T) {
	out, err := run(t, "diff", "{a} {b}", "{b} {a}")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "diff", "{a} {b}", "{b} {c}")
	assert.Error(t, err)
	assert.Equal(t, "- a\n+ c\n", out)
}

func TestParseCatalogs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/loc/en.json", []byte(`{
  "ok": "{count:number} apple{{s}}",
  "dup": "{count:number} apple{{s}}",
  "broken": "apple{{s}}"
}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/loc/de.ini", []byte("greeting = Hallo {name}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/loc/bad.yaml", []byte("- not a mapping\n"), 0o644))

	parseCache := cache.NewParseCache(message.New(), nil)
	parsed, failed, err := parseCatalogs(context.Background(), fs, "/loc", 4, parseCache)
	require.NoError(t, err)

	// bad.yaml fails to load and "broken" fails to parse.
	assert.Equal(t, 2, failed)
	require.Len(t, parsed, 3)
	assert.Equal(t, 2, parseCache.Len())

	keys := make([]string, 0, len(parsed))
	for _, p := range parsed {
		keys = append(keys, p.Entry.Key)
	}
	assert.ElementsMatch(t, []string{"greeting", "ok", "dup"}, keys)

	_, _, err = parseCatalogs(context.Background(), fs, "/nowhere", 1, parseCache)
	assert.Error(t, err)
}
