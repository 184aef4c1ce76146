// Package romanian normalises Romanian text to NFC with comma-below letters.
package romanian

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// cedillaReplacer maps the legacy cedilla forms to the standard comma-below
// letters. Both forms are precomposed after NFC.
var cedillaReplacer = strings.NewReplacer(
	"\u015f", "\u0219", // ş -> ș
	"\u0163", "\u021b", // ţ -> ț
	"\u015e", "\u0218", // Ş -> Ș
	"\u0162", "\u021a", // Ţ -> Ț
)

// Normaliser composes decomposed diacritics and replaces cedilla letters
// with their comma-below equivalents.
type Normaliser struct{}

// New creates a new Romanian normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns text in NFC with comma-below ș and ț.
// Text without combining marks or cedillas is returned unchanged.
func (n *Normaliser) Normalise(text string) string {
	return Normalise(text)
}

// Normalise is the package-level form of Normaliser.Normalise.
func Normalise(text string) string {
	if !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	if !hasCedilla(text) {
		return text
	}
	return cedillaReplacer.Replace(text)
}

func hasCedilla(s string) bool {
	for _, r := range s {
		switch r {
		case '\u015f', '\u0163', '\u015e', '\u0162':
			return true
		}
	}
	return false
}
