package meld

import (
	"bytes"
	"unicode/utf8"
)

// probeSize bounds the null-byte scan to the front of the file, which is
// where binary formats are cheapest to recognize.
const probeSize = 512

// isTextContent is a best-effort readability probe: content is treated as
// text when it is valid UTF-8 and its leading bytes contain no null byte.
// Empty files are text.
func isTextContent(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	probe := content
	if len(probe) > probeSize {
		probe = probe[:probeSize]
	}
	if bytes.IndexByte(probe, 0) >= 0 {
		return false
	}

	return utf8.Valid(content)
}
