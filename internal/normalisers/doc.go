// Package normalisers provides text normalisers applied around diacritic
// restoration. Each normaliser implements driven.TextNormaliser.
package normalisers
