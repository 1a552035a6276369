package meld

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MergeFiles concatenates the contents of every non-excluded, readable
// regular file under root, each framed by delimiter headers naming the
// file. The root's ignore file is merged into the pattern set before the
// walk. Files that cannot be read as text are silently omitted and
// recorded with FileSkippedUnreadable; the ignore file itself is never
// merged even though it appears in the tree.
func (m *Melder) MergeFiles(root string) (string, error) {
	if err := m.loadRootIgnoreFile(root); err != nil {
		return "", err
	}
	return m.mergeFiles(root)
}

func (m *Melder) mergeFiles(directory string) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", directory, err)
	}

	var merged strings.Builder
	for _, entry := range entries {
		name := entry.Name()
		entryPath := filepath.Join(directory, name)

		if entry.IsDir() {
			if m.patterns.ShouldExclude(name + "/") {
				m.report(name+"/", FileExcluded)
				m.logger.Debug("Excluding directory from merge",
					zap.String("directory", entryPath))
				continue
			}
			subtree, err := m.mergeFiles(entryPath)
			if err != nil {
				return "", err
			}
			merged.WriteString(subtree)
			continue
		}

		if name == IgnoreFileName || m.patterns.ShouldExclude(name) {
			m.report(name, FileExcluded)
			continue
		}

		content, err := os.ReadFile(entryPath)
		if err != nil || !isTextContent(content) {
			m.report(name, FileSkippedUnreadable)
			m.logger.Debug("Skipping unreadable file",
				zap.String("path", entryPath),
				zap.Error(err))
			continue
		}

		merged.WriteString("\n" + fileDelimiter + "\n")
		merged.WriteString("File: " + name + "\n")
		merged.WriteString(fileDelimiter + "\n")
		merged.Write(content)
		merged.WriteString("\n")
		m.report(name, FileIncluded)
	}

	return merged.String(), nil
}
