package catalog

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads nested YAML mappings, flattening keys with ".".
type YAMLLoader struct{}

func NewYAMLLoader() *YAMLLoader { return &YAMLLoader{} }

func (l *YAMLLoader) CanLoad(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func (l *YAMLLoader) Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read yaml catalog: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml catalog %s: %w", path, err)
	}

	cat := &Catalog{
		Path:   path,
		Format: "yaml",
	}
	if len(doc.Content) == 0 {
		return cat, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml catalog %s: top level must be a mapping", path)
	}
	walkYAML(root, "", func(key string, n *yaml.Node) {
		cat.Entries = append(cat.Entries, Entry{
			Key:  key,
			Text: n.Value,
			File: path,
			Line: n.Line,
		})
	})
	return cat, nil
}

func walkYAML(node *yaml.Node, prefix string, emit func(string, *yaml.Node)) {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			walkYAML(node.Content[i+1], joinKey(prefix, node.Content[i].Value), emit)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			walkYAML(child, joinKey(prefix, strconv.Itoa(i)), emit)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			walkYAML(node.Alias, prefix, emit)
		}
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			emit(prefix, node)
		}
	}
}
