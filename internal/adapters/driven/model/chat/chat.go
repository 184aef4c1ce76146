// Package chat holds helpers shared by chat-style model adapters, which
// restore a chunk by sending it as the user message under a system prompt.
package chat

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// SystemPrompt loads the restoration system prompt from store, falling back
// to the built-in prompt when the store is nil, fails, or is empty.
func SystemPrompt(store driven.PromptStore) string {
	if store == nil {
		return driven.DefaultRestoreSystemPrompt
	}
	prompt, err := store.Load(driven.PromptRestoreSystem)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return driven.DefaultRestoreSystemPrompt
	}
	return prompt
}

// Reattach trims output and restores the leading and trailing whitespace
// of input around it. Chat models drop the newlines that end a chunk, and
// chunks are joined by plain concatenation.
func Reattach(input, output string) string {
	body := strings.TrimSpace(output)
	if body == "" {
		return ""
	}
	lead := input[:len(input)-len(strings.TrimLeftFunc(input, unicode.IsSpace))]
	rest := strings.TrimRightFunc(input, unicode.IsSpace)
	trail := input[len(rest):]
	if rest == "" {
		trail = ""
	}
	return lead + body + trail
}
