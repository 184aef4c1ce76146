package driven

// TextNormaliser canonicalises text before and after restoration.
// Implementations must be idempotent and must not change text that is
// already canonical.
type TextNormaliser interface {
	// Normalise returns the canonical form of text.
	Normalise(text string) string
}
