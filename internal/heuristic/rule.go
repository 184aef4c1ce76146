package heuristic

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordPattern matches a maximal run of word characters. Accented letters
// and combining marks are word characters, unlike RE2's ASCII-only \b.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Rule is a single ordered substitution. Pattern is anchored to a whole word.
type Rule struct {
	// Name identifies the rule in tests and debug logs.
	Name string

	// Pattern matches one whole word. Submatches are passed to Replace.
	Pattern *regexp.Regexp

	// Replace builds the replacement from the submatches (index 0 is the word).
	Replace func(groups []string) string

	// CaseInsensitive rules restore the case of the matched word on output.
	CaseInsensitive bool
}

// Apply rewrites every whole word in text matched by the rule.
func (r Rule) Apply(text string) string {
	return wordPattern.ReplaceAllStringFunc(text, r.rewrite)
}

func (r Rule) rewrite(word string) string {
	groups := r.Pattern.FindStringSubmatch(word)
	if groups == nil {
		return word
	}
	out := r.Replace(groups)
	if r.CaseInsensitive {
		out = matchCase(word, out)
	}
	return out
}

// Literal returns two case-sensitive rules replacing the word and its
// capitalised form.
func Literal(word, accented string) []Rule {
	return []Rule{
		literal(word, accented),
		literal(capitalise(word), capitalise(accented)),
	}
}

func literal(word, accented string) Rule {
	return Rule{
		Name:    word,
		Pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(word) + `$`),
		Replace: func([]string) string { return accented },
	}
}

// Family returns a case-insensitive rule replacing stem with accented and
// keeping the suffix matched by suffixExpr verbatim.
func Family(stem, accented, suffixExpr string) Rule {
	return Rule{
		Name:    stem + "*",
		Pattern: regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(stem) + `(` + suffixExpr + `)$`),
		Replace: func(g []string) string {
			return accented + g[1]
		},
		CaseInsensitive: true,
	}
}

// Suffix returns a case-insensitive rule for an ending shared by a word
// class. expr must capture exactly two groups: the kept prefix and the kept
// tail. The unaccented infix between them is replaced by accented.
func Suffix(name, expr, accented string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(`(?i)^` + expr + `$`),
		Replace: func(g []string) string {
			return g[1] + accented + g[2]
		},
		CaseInsensitive: true,
	}
}

// Unless returns rule with the words matched by expr left as typed.
// expr is matched case-insensitively against the whole word.
func Unless(rule Rule, expr string) Rule {
	except := regexp.MustCompile(`(?i)^(?:` + expr + `)$`)
	replace := rule.Replace
	rule.Replace = func(g []string) string {
		if except.MatchString(g[0]) {
			return g[0]
		}
		return replace(g)
	}
	return rule
}

// matchCase applies the case pattern of word to out: all-caps words stay
// all-caps and capitalised words stay capitalised.
func matchCase(word, out string) string {
	switch {
	case isUpper(word):
		return strings.ToUpper(out)
	case startsUpper(word):
		return capitalise(out)
	default:
		return out
	}
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// isUpper reports whether s has at least two letters, all upper case.
func isUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 1
}
