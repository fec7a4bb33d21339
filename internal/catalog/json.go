package catalog

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// JSONLoader reads nested JSON objects, flattening object keys with ".".
// Array elements are keyed by index. Non-string leaves are skipped.
type JSONLoader struct{}

func NewJSONLoader() *JSONLoader { return &JSONLoader{} }

func (l *JSONLoader) CanLoad(ext string) bool {
	return ext == ".json"
}

func (l *JSONLoader) Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read json catalog: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse json catalog %s: invalid JSON", path)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("parse json catalog %s: top level must be an object", path)
	}

	cat := &Catalog{
		Path:   path,
		Format: "json",
	}
	walkJSON(root, "", func(key string, value gjson.Result) {
		cat.Entries = append(cat.Entries, Entry{
			Key:  key,
			Text: value.String(),
			File: path,
			Line: lineAt(data, value.Index),
		})
	})
	return cat, nil
}

func walkJSON(node gjson.Result, prefix string, emit func(string, gjson.Result)) {
	i := 0
	node.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if node.IsArray() {
			key = strconv.Itoa(i)
		}
		i++

		full := joinKey(prefix, key)
		switch {
		case v.IsObject(), v.IsArray():
			walkJSON(v, full, emit)
		case v.Type == gjson.String:
			emit(full, v)
		}
		return true
	})
}

// lineAt converts a byte offset into a 1-based line, 0 when unknown.
func lineAt(data []byte, offset int) int {
	if offset <= 0 || offset > len(data) {
		return 0
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
