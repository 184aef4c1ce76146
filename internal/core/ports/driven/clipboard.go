package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteAll replaces the clipboard content with text.
	WriteAll(text string) error
}
