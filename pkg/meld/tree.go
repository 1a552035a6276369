package meld

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GenerateTree renders the directory tree rooted at root as box-drawn,
// indented lines. The root's ignore file is merged into the pattern set
// before the walk; excluded entries are omitted and excluded directories
// are never descended into.
func (m *Melder) GenerateTree(root string) (string, error) {
	if err := m.loadRootIgnoreFile(root); err != nil {
		return "", err
	}
	return m.generateTree(root, "")
}

// generateTree walks one directory level. Entries are visited in the
// lexicographic order returned by os.ReadDir; the connector for each entry
// reflects its position among all siblings, excluded or not, matching the
// original tool's rendering.
func (m *Melder) generateTree(directory, prefix string) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", directory, err)
	}

	var tree strings.Builder
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}

		if m.patterns.ShouldExclude(name) {
			m.logger.Debug("Excluding entry from tree",
				zap.String("name", name),
				zap.String("directory", directory))
			continue
		}

		tree.WriteString(prefix + connector + name + "\n")

		if entry.IsDir() {
			subtree, err := m.generateTree(filepath.Join(directory, entry.Name()), prefix+extension)
			if err != nil {
				return "", err
			}
			tree.WriteString(subtree)
		}
	}

	return tree.String(), nil
}
