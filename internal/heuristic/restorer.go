// Package heuristic restores common Romanian diacritics with an ordered list
// of conservative whole-word substitution rules.
//
// Precision is preferred over recall: a word is only rewritten when its
// unaccented spelling is practically never correct. Everything else is left
// as typed.
package heuristic

import (
	"github.com/custodia-labs/diacritice/internal/core/ports/driven"
)

// Ensure Restorer implements the interface.
var _ driven.TextRestorer = (*Restorer)(nil)

// Restorer applies an immutable ordered rule list.
// It is safe for concurrent use.
type Restorer struct {
	rules []Rule
}

// Option configures the restorer.
type Option func(*Restorer)

// WithRules replaces the rule list. The slice is copied.
func WithRules(rules []Rule) Option {
	return func(r *Restorer) {
		r.rules = make([]Rule, len(rules))
		copy(r.rules, rules)
	}
}

// New creates a restorer using the built-in rules unless overridden.
func New(opts ...Option) *Restorer {
	r := &Restorer{
		rules: defaultRules,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Restore applies every rule in order to the whole text.
// Text no rule matches is returned unchanged.
func (r *Restorer) Restore(text string) string {
	for _, rule := range r.rules {
		text = rule.Apply(text)
	}
	return text
}

// Len returns the number of rules.
func (r *Restorer) Len() int {
	return len(r.rules)
}
