package catalog_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"message-parser/internal/catalog"
)

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func keysAndTexts(cat *catalog.Catalog) map[string]string {
	out := make(map[string]string, len(cat.Entries))
	for _, e := range cat.Entries {
		out[e.Key] = e.Text
	}
	return out
}

func TestJSONLoader(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/locales/en.json": `{
  "greeting": "Hello {name}",
  "cart": {
    "items": "{count:number} item{{s}}",
    "empty": ""
  },
  "steps": ["one", "{n}"],
  "version": 3
}`,
		"/locales/bad.json":   `{"a": `,
		"/locales/array.json": `["a"]`,
	})
	l := catalog.NewJSONLoader()

	assert.True(t, l.CanLoad(".json"))
	assert.False(t, l.CanLoad(".yaml"))

	cat, err := l.Load(fs, "/locales/en.json")
	require.NoError(t, err)
	assert.Equal(t, "json", cat.Format)
	assert.Equal(t, map[string]string{
		"greeting":    "Hello {name}",
		"cart.items":  "{count:number} item{{s}}",
		"cart.empty":  "",
		"steps.0":     "one",
		"steps.1":     "{n}",
	}, keysAndTexts(cat))

	_, err = l.Load(fs, "/locales/bad.json")
	assert.Error(t, err)

	_, err = l.Load(fs, "/locales/array.json")
	assert.Error(t, err)

	_, err = l.Load(fs, "/locales/missing.json")
	assert.Error(t, err)
}

func TestYAMLLoader(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/en.yml": `greeting: "Hello {name}"
cart:
  items: '{count:number} item{{s}}'
  total: 42
list:
  - first
`,
		"/scalar.yaml": `just text`,
		"/empty.yaml":  ``,
	})
	l := catalog.NewYAMLLoader()

	assert.True(t, l.CanLoad(".yml"))
	assert.True(t, l.CanLoad(".yaml"))

	cat, err := l.Load(fs, "/en.yml")
	require.NoError(t, err)
	require.Len(t, cat.Entries, 3)

	assert.Equal(t, catalog.Entry{Key: "greeting", Text: "Hello {name}", File: "/en.yml", Line: 1}, cat.Entries[0])
	assert.Equal(t, catalog.Entry{Key: "cart.items", Text: "{count:number} item{{s}}", File: "/en.yml", Line: 3}, cat.Entries[1])
	assert.Equal(t, catalog.Entry{Key: "list.0", Text: "first", File: "/en.yml", Line: 6}, cat.Entries[2])

	_, err = l.Load(fs, "/scalar.yaml")
	assert.Error(t, err)

	cat, err = l.Load(fs, "/empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, cat.Entries)
}

func TestINILoader(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/de.ini": `; comment
top = Hallo {name}

[members]
count = {count:number} weitere{{s|}} Mitglied{{er}}
padded = "  {x}  "
# skipped
novalue
`,
	})
	l := catalog.NewINILoader()

	cat, err := l.Load(fs, "/de.ini")
	require.NoError(t, err)
	require.Len(t, cat.Entries, 3)

	assert.Equal(t, "top", cat.Entries[0].Key)
	assert.Equal(t, 2, cat.Entries[0].Line)
	assert.Equal(t, "members.count", cat.Entries[1].Key)
	assert.Equal(t, "{count:number} weitere{{s|}} Mitglied{{er}}", cat.Entries[1].Text)
	assert.Equal(t, 5, cat.Entries[1].Line)
	assert.Equal(t, "  {x}  ", cat.Entries[2].Text)
}

func TestTSVLoader(t *testing.T) {
	fs := memFS(t, map[string]string{
		"/msgs.tsv": "# key\tnote\ttext\n" +
			"greeting\tshown on login\tHello {name}\n" +
			"short\t{n:number} apple{{s}}\n" +
			"blank\t\t\n" +
			"lonely\n",
	})
	l := catalog.NewTSVLoader()

	cat, err := l.Load(fs, "/msgs.tsv")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Entry{
		{Key: "greeting", Text: "Hello {name}", File: "/msgs.tsv", Line: 2},
		{Key: "short", Text: "{n:number} apple{{s}}", File: "/msgs.tsv", Line: 3},
	}, cat.Entries)
}

func TestLoaders(t *testing.T) {
	exts := []string{".json", ".yaml", ".yml", ".ini", ".tsv"}
	for _, ext := range exts {
		matched := 0
		for _, l := range catalog.Loaders() {
			if l.CanLoad(ext) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, ext)
	}
}
