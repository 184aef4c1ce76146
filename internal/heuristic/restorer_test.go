package heuristic

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "function words only",
			input: "Si ai vazut ca intre timp a plecat?",
			want:  "Și ai vazut ca între timp a plecat?",
		},
		{
			name:  "lemma family keeps suffix",
			input: "Nu au ajuns conditiile",
			want:  "Nu au ajuns condițiile",
		},
		{
			name:  "capitalised literal",
			input: "Sapte zile",
			want:  "Șapte zile",
		},
		{
			name:  "hyphenated clitic",
			input: "si-a dat seama intr-o zi",
			want:  "și-a dat seama într-o zi",
		},
		{
			name:  "suffix class",
			input: "situatie, actiune si conventie",
			want:  "situație, acțiune și convenție",
		},
		{
			name:  "short stems are not suffix matches",
			input: "o cutie si o mantie",
			want:  "o cutie și o mantie",
		},
		{
			name:  "all caps family",
			input: "CONDITIILE CONTRACTULUI",
			want:  "CONDIȚIILE CONTRACTULUI",
		},
		{
			name:  "capitalised family",
			input: "Hotararea instantei",
			want:  "Hotărârea instanței",
		},
		{
			name:  "literals are case sensitive",
			input: "SI INTRE",
			want:  "SI INTRE",
		},
		{
			name:  "proper noun",
			input: "Romania si romanii",
			want:  "România și romanii",
		},
		{
			name:  "ambiguous words untouched",
			input: "ca sa fata tara pana cat",
			want:  "ca sa fata tara pana cat",
		},
		{
			name:  "newlines and punctuation preserved",
			input: "daca vii.\nfara tine!",
			want:  "dacă vii.\nfără tine!",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Restore(tt.input))
		})
	}
}

func TestRestore_LeavesProperNounsAndAmbiguousForms(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"capitalised inca is a proper noun", "Imperiul Inca", "Imperiul Inca"},
		{"lower case inca", "nu a venit inca", "nu a venit încă"},
		{"surname with romanesc stem", "Ion Romanescu", "Ion Romanescu"},
		{"romanesc inflections", "satul romanesc, spiritul romanescului", "satul românesc, spiritul românescului"},
		{"tate genitive left as typed", "zidurile cetatii", "zidurile cetatii"},
		{"atie plural still restored", "relatii bune", "relații bune"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Restore(tt.input))
		})
	}
}

func TestRestore_UnicodeWordBoundaries(t *testing.T) {
	r := New()

	// An accented letter continues the word, so "intre" is not a whole word here.
	assert.Equal(t, "intreș", r.Restore("intreș"))
	assert.Equal(t, "ăsi", r.Restore("ăsi"))
	assert.Equal(t, "siă", r.Restore("siă"))
	// Digits and underscores are word characters too.
	assert.Equal(t, "si2 _si", r.Restore("si2 _si"))
}

func TestRestore_Idempotent(t *testing.T) {
	r := New()

	inputs := []string{
		"Și ai vazut ca între timp a plecat?",
		"Instanța a analizat condițiile contractului și a decis.",
		"Învățământul din România are o situație complicată.",
		"Hotărârea judecătorului a fost pronunțată după ședință.",
	}

	for _, in := range inputs {
		once := r.Restore(in)
		assert.Equal(t, once, r.Restore(once), "input %q", in)
	}

	assert.Equal(t, inputs[0], r.Restore(inputs[0]))
}

func TestRestore_OrderMatters(t *testing.T) {
	// The longer stem must run first or the shorter one claims the word.
	r := New()
	assert.Equal(t, "învățământul", r.Restore("invatamantul"))

	broad := Family("invat", "învăț", `\p{L}*`)
	narrow := Family("invatamant", "învățământ", `\p{L}*`)

	reversed := New(WithRules([]Rule{broad, narrow}))
	assert.Equal(t, "învățamantul", reversed.Restore("invatamantul"))
}

func TestWithRules(t *testing.T) {
	rules := Literal("foo", "föö")
	r := New(WithRules(rules))

	// Mutating the caller's slice does not affect the restorer.
	rules[0] = literal("bar", "bär")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "föö Föö bar", r.Restore("foo Foo bar"))
}

func TestWithRules_Empty(t *testing.T) {
	r := New(WithRules(nil))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "si intre", r.Restore("si intre"))
}

func TestDefaultRules(t *testing.T) {
	require.NotEmpty(t, defaultRules)
	assert.Equal(t, len(defaultRules), New().Len())

	for _, rule := range defaultRules {
		assert.NotEmpty(t, rule.Name)
		require.NotNil(t, rule.Pattern, rule.Name)
		require.NotNil(t, rule.Replace, rule.Name)
	}
}

func TestWithRules_CopiesSlice(t *testing.T) {
	rules := Literal("foo", "föö")
	r := New(WithRules(rules))

	rules[0] = Rule{Name: "x", Pattern: regexp.MustCompile(`^x$`), Replace: func([]string) string { return "y" }}
	assert.Equal(t, "föö", r.Restore("foo"))
}
