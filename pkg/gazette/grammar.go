package gazette

import (
	"regexp"
	"strings"
)

// Grammar describes how citations of one instrument kind appear in gazette
// text. A single generic matching routine in Matcher is driven by this
// table; kinds never get their own matching code.
type Grammar struct {
	// Kind is the instrument kind this grammar detects.
	Kind Kind

	// Phrases are the recognized full-name variants, most specific first.
	Phrases []string

	// DateHeading enables the enacted-norm heading form
	// "LEI Nº 10.500, DE 10 DE MARÇO DE 2024", where the year comes from
	// the sanction date instead of a slash suffix.
	DateHeading bool

	// citation matches "<phrase> Nº <number>/<year>" with tolerant
	// punctuation. Submatches: 1=number, 2=year.
	citation *regexp.Regexp

	// heading matches the DateHeading form when enabled.
	// Submatches: 1=number, 2=date fragment, 3=year.
	heading *regexp.Regexp
}

// numberGroup tolerates an optional thousands separator ("1.234").
const numberGroup = `(\d{1,5}(?:\.\d{1,3})*)`

// markerGroup tolerates "Nº", "nº", "N°", "No." and a bare "N".
const markerGroup = `n[º°o]?\.?`

// phraseAlternation converts phrase variants into a regex alternation with
// flexible whitespace between words (PDF extraction breaks lines anywhere).
func phraseAlternation(phrases []string) string {
	alternatives := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		for i, word := range words {
			words[i] = regexp.QuoteMeta(word)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}
	if len(alternatives) == 1 {
		return alternatives[0]
	}
	return "(?:" + strings.Join(alternatives, "|") + ")"
}

// compile builds the citation (and optional heading) patterns for the grammar.
func (g *Grammar) compile() {
	alternation := phraseAlternation(g.Phrases)
	g.citation = regexp.MustCompile(
		`(?i)` + alternation + `\s+` + markerGroup + `\s*` + numberGroup + `\s*/\s*(\d{4})`)
	if g.DateHeading {
		g.heading = regexp.MustCompile(
			`(?i)` + alternation + `\s+` + markerGroup + `\s*` + numberGroup +
				`\s*,\s*DE\s+(\d{1,2}º?\s+DE\s+[\p{L}]+\s+DE\s+(\d{4}))`)
	}
}

// DefaultGrammars returns the grammar table for every instrument kind the
// extractor recognizes. The table is immutable configuration: callers bind
// it into a Matcher at construction time and never mutate it afterwards.
//
// Requirements carry a single generic "REQUERIMENTO" grammar under
// KindRequirementN; whether a given occurrence is a numbered requirement
// (RQN) or a committee requirement (RQC) is decided by the context
// disambiguator, not by the citation shape.
func DefaultGrammars() []Grammar {
	grammars := []Grammar{
		{Kind: KindLaw, Phrases: []string{"LEI"}, DateHeading: true},
		{Kind: KindComplementaryLaw, Phrases: []string{"LEI COMPLEMENTAR"}, DateHeading: true},
		{Kind: KindResolution, Phrases: []string{"RESOLUÇÃO"}, DateHeading: true},
		{Kind: KindConstitutionalAmendment, Phrases: []string{"EMENDA À CONSTITUIÇÃO"}, DateHeading: true},
		{Kind: KindBoardDeliberation, Phrases: []string{"DELIBERAÇÃO DA MESA"}, DateHeading: true},

		{Kind: KindBill, Phrases: []string{"PROJETO DE LEI"}},
		{Kind: KindComplementaryBill, Phrases: []string{"PROJETO DE LEI COMPLEMENTAR"}},
		{Kind: KindIndication, Phrases: []string{"INDICAÇÃO"}},
		{Kind: KindResolutionBill, Phrases: []string{"PROJETO DE RESOLUÇÃO"}},
		{Kind: KindConstitutionalAmendmentProposal, Phrases: []string{"PROPOSTA DE EMENDA À CONSTITUIÇÃO"}},
		{Kind: KindMessage, Phrases: []string{"MENSAGEM"}},
		{Kind: KindVeto, Phrases: []string{"VETO"}},

		{Kind: KindRequirementN, Phrases: []string{"REQUERIMENTO"}},

		{Kind: KindOrdinance, Phrases: []string{"PORTARIA"}, DateHeading: true},
		{Kind: KindServiceOrder, Phrases: []string{"ORDEM DE SERVIÇO"}, DateHeading: true},
		{Kind: KindSecretariatDecision, Phrases: []string{"DECISÃO DA SECRETARIA", "DECISÃO"}, DateHeading: true},
	}
	for i := range grammars {
		grammars[i].compile()
	}
	return grammars
}
