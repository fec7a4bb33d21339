package catalog

import "github.com/spf13/afero"

// Entry is one message template extracted from a catalog file.
type Entry struct {
	// Key is the message identifier, nested keys joined with ".".
	Key string
	// Text is the raw template.
	Text string
	// File is the catalog path.
	File string
	// Line is the 1-based line of the template, 0 if unknown.
	Line int
}

// Catalog holds the entries of a single file.
type Catalog struct {
	// Path is the path the catalog was loaded from.
	Path string
	// Format is the detected format (json, yaml, ini, tsv).
	Format string
	// Entries keep file order.
	Entries []Entry
}

// Loader is the interface for all catalog formats.
type Loader interface {
	// CanLoad returns true if this loader handles the given file extension.
	CanLoad(ext string) bool
	// Load extracts the message templates of a file.
	Load(fs afero.Fs, path string) (*Catalog, error)
}

// Loaders returns one loader per supported format.
func Loaders() []Loader {
	return []Loader{
		NewJSONLoader(),
		NewYAMLLoader(),
		NewINILoader(),
		NewTSVLoader(),
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
