package driven

// PromptStore provides access to model prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptRestoreSystem is the system prompt for chat-style providers.
	// It has no format placeholders; the chunk is sent as the user message.
	PromptRestoreSystem = "restore_system"
)

// PromptStoreAware is an optional interface for model services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service should use its built-in prompt.
	SetPromptStore(store PromptStore)
}

// DefaultRestoreSystemPrompt is used when no prompt store is configured
// and as the initial content of the user-editable prompt file.
const DefaultRestoreSystemPrompt = `You restore Romanian diacritics. The user message is Romanian text written without diacritics (ă, â, î, ș, ț).

Return the same text with the correct diacritics added. Use comma-below ș and ț, never the cedilla forms.
Do not translate, rephrase, correct grammar, or change punctuation, spacing, or line breaks.
Return ONLY the restored text, nothing else.`
