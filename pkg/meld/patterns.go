package meld

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// PatternSet is an append-only collection of shell-glob exclusion patterns.
// Matching is any-match: a name is excluded as soon as one pattern matches.
// A PatternSet is not safe for concurrent use; each top-level run owns its
// own instance.
type PatternSet struct {
	patterns []string
	logger   *zap.Logger
}

// NewPatternSet builds a pattern set from the caller-supplied patterns with
// the built-in defaults appended. Pattern syntax is not validated: a
// malformed glob simply never matches anything.
func NewPatternSet(userPatterns []string, logger *zap.Logger) *PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	ps := &PatternSet{
		patterns: make([]string, 0, len(userPatterns)+len(DefaultPatterns)),
		logger:   logger,
	}
	ps.patterns = append(ps.patterns, userPatterns...)
	ps.patterns = append(ps.patterns, DefaultPatterns...)
	return ps
}

// Add appends patterns verbatim to the set.
func (ps *PatternSet) Add(patterns ...string) {
	ps.patterns = append(ps.patterns, patterns...)
}

// Patterns returns a copy of the current pattern sequence.
func (ps *PatternSet) Patterns() []string {
	out := make([]string, len(ps.patterns))
	copy(out, ps.patterns)
	return out
}

// Len reports the number of patterns in the set.
func (ps *PatternSet) Len() int {
	return len(ps.patterns)
}

// LoadIgnoreFile reads the ignore file in directory, if present, and appends
// each non-blank, non-comment line verbatim to the set. Inline comments and
// trailing whitespace are NOT stripped; only the line terminator is. An
// absent ignore file is a no-op. Repeated calls append duplicates.
func (ps *PatternSet) LoadIgnoreFile(directory string) error {
	ignorePath := filepath.Join(directory, IgnoreFileName)
	content, err := os.ReadFile(ignorePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ps.logger.Debug("No ignore file present", zap.String("path", ignorePath))
			return nil
		}
		return fmt.Errorf("read ignore file %s: %w", ignorePath, err)
	}

	added := 0
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		ps.patterns = append(ps.patterns, line)
		added++
	}
	ps.logger.Debug("Loaded ignore file",
		zap.String("path", ignorePath),
		zap.Int("patterns", added))
	return nil
}

// ShouldExclude reports whether name matches any pattern in the set.
// Directory names must carry a trailing separator so directory-only
// patterns such as "tmp/" can match; file names must not. Malformed
// patterns are treated as non-matching rather than surfaced as errors.
func (ps *PatternSet) ShouldExclude(name string) bool {
	for _, pattern := range ps.patterns {
		matched, err := path.Match(pattern, name)
		if err != nil {
			continue
		}
		if matched {
			ps.logger.Debug("Name matches exclusion pattern",
				zap.String("name", name),
				zap.String("pattern", pattern))
			return true
		}
	}
	return false
}
