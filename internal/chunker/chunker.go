// Package chunker splits text into bounded, order-preserving chunks at
// sentence boundaries.
package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/diacritice/internal/core/domain"
)

// DefaultMaxSize is the default maximum number of characters per chunk.
const DefaultMaxSize = domain.DefaultMaxChunkSize

// Chunker splits text after sentence terminators and newlines, grouping
// fragments into chunks of at most maxSize characters.
type Chunker struct {
	maxSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxSize sets the maximum chunk size in characters.
func WithMaxSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		maxSize: DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MaxSize returns the configured maximum chunk size.
func (c *Chunker) MaxSize() int {
	return c.maxSize
}

// Split splits text into chunks.
func (c *Chunker) Split(text string) []domain.Chunk {
	return Split(text, c.maxSize)
}

// Split splits text into chunks of at most maxSize characters.
// Concatenating the chunks in order yields text exactly. A single fragment
// longer than maxSize is emitted whole rather than cut mid-sentence.
// Empty text yields no chunks; maxSize <= 0 selects DefaultMaxSize.
func Split(text string, maxSize int) []domain.Chunk {
	if text == "" {
		return nil
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	var (
		chunks []domain.Chunk
		buf    strings.Builder
		bufLen int
	)

	flush := func() {
		chunks = append(chunks, domain.Chunk{
			Index: len(chunks),
			Text:  buf.String(),
		})
		buf.Reset()
		bufLen = 0
	}

	for _, frag := range Fragments(text) {
		fragLen := utf8.RuneCountInString(frag)
		if bufLen > 0 && bufLen+fragLen > maxSize {
			flush()
		}
		buf.WriteString(frag)
		bufLen += fragLen
	}

	if bufLen > 0 {
		flush()
	}

	return chunks
}

// Fragments splits text immediately after every '.', '!', '?' and '\n'.
// The fragments concatenate to text; the last one may lack a terminator.
func Fragments(text string) []string {
	var out []string
	start := 0

	// Terminators are ASCII, so scanning bytes never splits a UTF-8 sequence.
	for i := 0; i < len(text); i++ {
		if isBoundary(text[i]) {
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}

	if start < len(text) {
		out = append(out, text[start:])
	}

	return out
}

func isBoundary(b byte) bool {
	switch b {
	case '.', '!', '?', '\n':
		return true
	default:
		return false
	}
}
