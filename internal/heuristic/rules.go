package heuristic

// defaultRules is the ordered rule list. Rules run in order over the whole
// text; a rule sees the output of every rule before it. Specific stems must
// precede the broad suffix classes at the end that would otherwise claim
// the same words.
//
// Only spellings that are practically never correct without diacritics in
// formal Romanian are listed. Short words with a valid unaccented reading
// (ca, sa, fata, tara, pana, cat) are deliberately absent.
var defaultRules = buildRules(
	// Function words.
	Literal("si", "și"),
	Literal("in", "în"),
	Literal("intr", "într"),
	Literal("intre", "între"),
	Literal("dupa", "după"),
	Literal("asa", "așa"),
	Literal("insa", "însă"),
	Literal("catre", "către"),
	Literal("daca", "dacă"),
	Literal("fara", "fără"),
	Literal("isi", "își"),
	Literal("decat", "decât"),
	Literal("cand", "când"),
	Literal("atat", "atât"),
	Literal("intrucat", "întrucât"),
	Literal("fiindca", "fiindcă"),
	Literal("totusi", "totuși"),
	Literal("impotriva", "împotriva"),
	Literal("inainte", "înainte"),
	Literal("intotdeauna", "întotdeauna"),
	Literal("impreuna", "împreună"),
	Literal("niciodata", "niciodată"),
	Literal("astazi", "astăzi"),
	Literal("acesti", "acești"),
	Literal("acestia", "aceștia"),
	Literal("acelasi", "același"),
	Literal("aceeasi", "aceeași"),
	Literal("avand", "având"),
	Literal("stiu", "știu"),
	Literal("stie", "știe"),
	Literal("sapte", "șapte"),

	// Lower case only: capitalised, these are proper nouns (Inca).
	[]Rule{
		literal("inca", "încă"),
	},

	// Proper nouns, capitalised form only.
	[]Rule{
		literal("Romania", "România"),
		literal("Romaniei", "României"),
	},

	// Lemma families: the stem is accented, the inflection is kept.
	[]Rule{
		Family("condit", "condiț", `\p{L}+`),
		Family("invatamant", "învățământ", `\p{L}*`),
		Family("invat", "învăț", `\p{L}*`),
		Family("intreprin", "întreprin", `\p{L}*`),
		Family("intreg", "întreg", `\p{L}*`),
		Family("intreag", "întreag", `\p{L}*`),
		Family("intele", "înțele", `[gs]\p{L}*`),
		Family("inregistr", "înregistr", `\p{L}*`),
		Family("inchei", "închei", `\p{L}*`),
		Family("incep", "încep", `\p{L}*`),
		Family("raspun", "răspun", `\p{L}*`),
		Family("hotara", "hotărâ", `\p{L}*`),
		Family("stiint", "științ", `\p{L}*`),
		Family("cunostint", "cunoștinț", `\p{L}*`),
		Family("consecint", "consecinț", `\p{L}*`),
		Family("sedint", "ședinț", `\p{L}*`),
		Family("sentint", "sentinț", `\p{L}*`),
		Family("instant", "instanț", `(?:a|e|ei|ele|elor)`),
		Family("partil", "părțil", `(?:e|or)`),
		Family("judecator", "judecător", `\p{L}*`),
		Family("saptaman", "săptămân", `\p{L}*`),
		// Closed inflection set: Romanescu is a surname.
		Family("romanesc", "românesc", `(?:ul|ului)?`),
		Family("romaneasc", "româneasc", `\p{L}*`),
		Family("urmato", "următo", `\p{L}*`),
		Family("gasi", "găsi", `\p{L}*`),
	},

	// Suffix classes for -ție/-țiune nouns.
	[]Rule{
		Suffix("-tiune", `(\p{L}+)tiun(e|i|ea|ii|ile|ilor)`, "țiun"),
		Suffix("-ctie", `(\p{L}+c)ti(e|ei|a|i|ile|ilor)`, "ți"),
		Suffix("-ntie", `(\p{L}{3,}n)ti(e|ei|a|i|ile|ilor)`, "ți"),
		// Minimum stem lengths keep mantie and cutie out. -tatii is both
		// the -tate genitive (cetății) and an -ație plural (dotații).
		Unless(Suffix("-vtie", `(\p{L}{2,}[aiu])ti(e|ei|a|i|ile|ilor)`, "ți"), `\p{L}*tatii`),
	},
)

func buildRules(groups ...[]Rule) []Rule {
	var out []Rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
