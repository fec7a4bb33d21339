package catalog

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// INILoader reads key = template pairs, prefixing keys with their section.
type INILoader struct{}

func NewINILoader() *INILoader { return &INILoader{} }

func (l *INILoader) CanLoad(ext string) bool {
	return ext == ".ini"
}

func (l *INILoader) Load(fs afero.Fs, path string) (*Catalog, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ini catalog: %w", err)
	}
	defer file.Close()

	cat := &Catalog{
		Path:   path,
		Format: "ini",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	section := ""

	for scanner.Scan() {
		lineNum++
		trimmed := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Section header.
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		cat.Entries = append(cat.Entries, Entry{
			Key:  joinKey(section, key),
			Text: unquote(strings.TrimSpace(value)),
			File: path,
			Line: lineNum,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ini catalog: %w", err)
	}

	return cat, nil
}

// unquote strips one pair of matching surrounding quotes, keeping
// whitespace that a quoted value protects.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
