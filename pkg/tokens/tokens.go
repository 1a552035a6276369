// Package tokens estimates how many language-model tokens a text artifact
// will consume, so users can judge whether it fits a model's context window.
package tokens

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when none is specified. It
// matches the tokenizers of current OpenAI chat models.
const DefaultEncoding = "cl100k_base"

// Counter estimates token counts for text content.
type Counter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewCounter initializes a Counter for the named encoding; an empty name
// selects DefaultEncoding. Initialization may fetch encoding data on first
// use, so failures here should be treated as degraded rather than fatal.
func NewCounter(encodingName string) (*Counter, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("initialize %s tokenizer: %w", encodingName, err)
	}
	return &Counter{encoding: encoding, name: encodingName}, nil
}

// Name returns the encoding name the counter was built with.
func (c *Counter) Name() string {
	return c.name
}

// CountString returns the number of tokens input encodes to.
func (c *Counter) CountString(input string) (int, error) {
	if c.encoding == nil {
		return 0, errors.New("nil tiktoken encoder")
	}
	return len(c.encoding.Encode(input, nil, nil)), nil
}
