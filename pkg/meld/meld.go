// Package meld concatenates the textual contents of a directory tree into a
// single artifact suitable for language-model context ingestion: a rendered
// directory tree followed by every non-excluded file's content, separated by
// delimiter headers. Exclusions come from built-in defaults, caller-supplied
// patterns, and the root directory's ignore file.
package meld

import (
	"strings"

	"go.uber.org/zap"
)

// Melder drives the two traversal passes (tree rendering and content
// merging) over one shared pattern set. A Melder is single-use and not
// safe for concurrent invocations: the pattern set grows as ignore files
// are discovered, and reports accumulate across passes.
type Melder struct {
	patterns     *PatternSet
	logger       *zap.Logger
	ignoreLoaded bool
	reports      []FileReport
}

// NewMelder constructs a Melder whose pattern set holds the supplied
// exclusion patterns plus the built-in defaults.
func NewMelder(excludePatterns []string, logger *zap.Logger) *Melder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Melder{
		patterns: NewPatternSet(excludePatterns, logger),
		logger:   logger,
	}
}

// Patterns exposes the pattern set shared by both traversal passes.
func (m *Melder) Patterns() *PatternSet {
	return m.patterns
}

// Reports returns the per-file outcomes recorded by the merge pass, in
// traversal order.
func (m *Melder) Reports() []FileReport {
	out := make([]FileReport, len(m.reports))
	copy(out, m.reports)
	return out
}

// loadRootIgnoreFile merges the root directory's ignore file into the
// pattern set. Both passes call it, but the file is read only once per
// Melder so the set does not accumulate duplicate patterns. Nested ignore
// files are deliberately not consulted.
func (m *Melder) loadRootIgnoreFile(root string) error {
	if m.ignoreLoaded {
		return nil
	}
	if err := m.patterns.LoadIgnoreFile(root); err != nil {
		return err
	}
	m.ignoreLoaded = true
	return nil
}

func (m *Melder) report(name string, status FileStatus) {
	m.reports = append(m.reports, FileReport{Name: name, Status: status})
}

// ProcessDirectory renders the directory tree and the merged file contents
// of root and assembles them into the final artifact.
func (m *Melder) ProcessDirectory(root string) (string, error) {
	tree, err := m.GenerateTree(root)
	if err != nil {
		return "", err
	}

	merged, err := m.MergeFiles(root)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString("Directory Structure:\n")
	out.WriteString(sectionRule + "\n")
	out.WriteString(tree)
	out.WriteString("\nMerged Content:\n")
	out.WriteString(sectionRule + "\n")
	out.WriteString(merged)

	m.logger.Debug("Assembled artifact",
		zap.String("root", root),
		zap.Int("sizeBytes", out.Len()))
	return out.String(), nil
}
