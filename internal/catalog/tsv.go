package catalog

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// TSVLoader reads tab-separated catalogs: the first column is the key and
// the last non-empty column is the template, so exports carrying extra
// context columns (key, comment, text) load as well.
type TSVLoader struct{}

func NewTSVLoader() *TSVLoader { return &TSVLoader{} }

func (l *TSVLoader) CanLoad(ext string) bool {
	return ext == ".tsv"
}

func (l *TSVLoader) Load(fs afero.Fs, path string) (*Catalog, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tsv catalog: %w", err)
	}
	defer file.Close()

	cat := &Catalog{
		Path:   path,
		Format: "tsv",
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4*1024*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			continue
		}
		text := lastNonEmpty(cols[1:])
		if text == "" {
			continue
		}

		cat.Entries = append(cat.Entries, Entry{
			Key:  strings.TrimSpace(cols[0]),
			Text: text,
			File: path,
			Line: lineNum,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan tsv catalog: %w", err)
	}

	return cat, nil
}

func lastNonEmpty(cols []string) string {
	for i := len(cols) - 1; i >= 0; i-- {
		if strings.TrimSpace(cols[i]) != "" {
			return cols[i]
		}
	}
	return ""
}
