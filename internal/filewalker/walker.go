package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"message-parser/internal/catalog"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Walker traverses directories and dispatches catalog files to the matching loader.
type Walker struct {
	fs      afero.Fs
	loaders []catalog.Loader
}

// NewWalker creates a Walker over fs with the default catalog loaders.
func NewWalker(fs afero.Fs) *Walker {
	return &Walker{
		fs:      fs,
		loaders: catalog.Loaders(),
	}
}

// FileEntry represents a discovered catalog ready for loading.
type FileEntry struct {
	Path   string
	Ext    string
	Loader catalog.Loader
}

// Walk discovers all supported catalogs under the given root directory,
// in lexical path order.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	info, err := w.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, l := range w.loaders {
			if l.CanLoad(ext) {
				entries = append(entries, FileEntry{
					Path:   path,
					Ext:    ext,
					Loader: l,
				})
				break
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered catalogs")
	return entries, nil
}

// Load reads a single catalog using its loader.
func (w *Walker) Load(entry FileEntry) (*catalog.Catalog, error) {
	return entry.Loader.Load(w.fs, entry.Path)
}
