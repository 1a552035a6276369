package meld

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Copier places text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// TokenCounter estimates the token count of text under a named encoding.
type TokenCounter interface {
	Name() string
	CountString(input string) (int, error)
}

// Run executes one meld invocation: it validates the root directory,
// produces the artifact, and delivers it to the configured destinations.
// The copier and counter collaborators may be nil; they are consulted only
// when the corresponding Arguments fields are set. Token counting failures
// are reported as warnings, never as run failures.
func Run(args Arguments, copier Copier, counter TokenCounter, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := filepath.Abs(args.Directory)
	if err != nil {
		return fmt.Errorf("resolve directory path %s: %w", args.Directory, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s is not a directory", root)
	}

	logger.Debug("Starting meld run",
		zap.String("directory", root),
		zap.Strings("excludePatterns", args.ExcludePatterns))

	melder := NewMelder(args.ExcludePatterns, logger)
	artifact, err := melder.ProcessDirectory(root)
	if err != nil {
		return fmt.Errorf("process directory %s: %w", root, err)
	}

	if args.CountTokens && counter != nil {
		if count, countErr := counter.CountString(artifact); countErr != nil {
			logger.Warn("Token counting failed", zap.Error(countErr))
		} else {
			logger.Info("Estimated token count",
				zap.String("encoding", counter.Name()),
				zap.Int("tokens", count))
		}
	}

	if args.CopyToClipboard && copier != nil {
		if copyErr := copier.Copy(artifact); copyErr != nil {
			return fmt.Errorf("copy artifact to clipboard: %w", copyErr)
		}
		logger.Debug("Copied artifact to clipboard", zap.Int("sizeBytes", len(artifact)))
	}

	if err := writeArtifact(args.Output, artifact, logger); err != nil {
		return err
	}

	included, excluded, skipped := summarize(melder.Reports())
	logger.Info("Meld run completed",
		zap.String("directory", root),
		zap.Int("includedFiles", included),
		zap.Int("excludedEntries", excluded),
		zap.Int("skippedUnreadable", skipped))
	return nil
}

// writeArtifact writes the artifact to the output path, or to stdout when
// no path is configured. Parent directories of the output path are created
// as needed.
func writeArtifact(output, artifact string, logger *zap.Logger) error {
	if output == "" {
		if _, err := os.Stdout.WriteString(artifact); err != nil {
			return fmt.Errorf("write artifact to stdout: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, []byte(artifact), 0o644); err != nil {
		return fmt.Errorf("write artifact to %s: %w", output, err)
	}
	logger.Debug("Wrote artifact", zap.String("output", output), zap.Int("sizeBytes", len(artifact)))
	return nil
}

func summarize(reports []FileReport) (included, excluded, skipped int) {
	for _, r := range reports {
		switch r.Status {
		case FileIncluded:
			included++
		case FileExcluded:
			excluded++
		case FileSkippedUnreadable:
			skipped++
		}
	}
	return included, excluded, skipped
}
