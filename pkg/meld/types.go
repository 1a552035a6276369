package meld

// Arguments holds the configuration options for one meld run.
type Arguments struct {
	Directory       string   // Root directory to process.
	Output          string   // Destination path for the artifact; empty means stdout.
	ExcludePatterns []string // Additional exclusion patterns supplied by the caller.
	CopyToClipboard bool     // If true, the artifact is also placed on the system clipboard.
	CountTokens     bool     // If true, an estimated token count is reported after the run.
}

// FileStatus records the outcome of one merge-pass visit.
type FileStatus int

const (
	// FileIncluded means the file's content was merged into the artifact.
	FileIncluded FileStatus = iota
	// FileExcluded means the entry matched an exclusion pattern (or is the
	// ignore file itself) and was skipped.
	FileExcluded
	// FileSkippedUnreadable means the file could not be read as text and
	// was silently omitted.
	FileSkippedUnreadable
)

func (s FileStatus) String() string {
	switch s {
	case FileIncluded:
		return "included"
	case FileExcluded:
		return "excluded"
	case FileSkippedUnreadable:
		return "skipped-unreadable"
	default:
		return "unknown"
	}
}

// FileReport pairs an entry name with the outcome of its merge-pass visit.
// Directory entries carry a trailing separator.
type FileReport struct {
	Name   string
	Status FileStatus
}

const (
	// IgnoreFileName is the per-directory ignore file read from the
	// traversal root.
	IgnoreFileName = ".gitignore"

	// sectionRule underlines the two section headers of the artifact.
	sectionRule = "===================="
	// fileDelimiter frames each per-file header in the merged content.
	fileDelimiter = "=========="
)

// DefaultPatterns are always present in a pattern set, regardless of any
// caller-supplied patterns.
var DefaultPatterns = []string{".git/", "__pycache__/"}
