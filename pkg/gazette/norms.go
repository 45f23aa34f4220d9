package gazette

import (
	"regexp"
	"strings"
)

// alterationVerbs open an alteration/revocation clause targeting an
// already-enacted norm.
const alterationVerbs = `(?:Altera|Modifica|Revoga|Acrescenta)`

// normPhraseAlternation lists the enacted-kind phrases an alteration clause
// can cite, longest first.
func normPhraseAlternation() string {
	phrases := []string{
		"LEI COMPLEMENTAR",
		"EMENDA À CONSTITUIÇÃO",
		"DELIBERAÇÃO DA MESA",
		"RESOLUÇÃO",
		"LEI",
	}
	return phraseAlternation(phrases)
}

// alterationPattern matches "Altera a Lei nº 9.000/2010" and the long-date
// variant "Revoga a Lei nº 9.000, de 2 de maio de 2010". Submatches:
// 1=kind phrase, 2=number, 3=slash year, 4=date year.
var alterationPattern = regexp.MustCompile(
	`(?i)` + alterationVerbs + `(?:\s+dispositivos?)?\s+(?:d?[aoà]s?\s+)?(` + normPhraseAlternation() + `)` +
		`\s+` + markerGroup + `\s*` + numberGroup +
		`(?:\s*/\s*(\d{4})|\s*,\s*de\s+\d{1,2}º?\s+de\s+[\p{L}]+\s+de\s+(\d{4}))`)

// normKindFromPhrase resolves an alteration clause's kind phrase.
func normKindFromPhrase(phrase string) Kind {
	switch normalizePhrase(phrase) {
	case "LEI":
		return KindLaw
	case "LEI COMPLEMENTAR":
		return KindComplementaryLaw
	case "RESOLUÇÃO":
		return KindResolution
	case "EMENDA À CONSTITUIÇÃO":
		return KindConstitutionalAmendment
	case "DELIBERAÇÃO DA MESA":
		return KindBoardDeliberation
	default:
		return KindUnknown
	}
}

// AlterationClause is one detected alteration/revocation of a norm.
type AlterationClause struct {
	// Target is the norm being altered or revoked.
	Target Reference

	// Description is the clause text ("Altera a Lei nº 9000/2010").
	Description string
}

// FindAlterations scans the text for alteration/revocation clauses. A clause
// whose cited year is malformed is skipped silently.
func FindAlterations(text string) []AlterationClause {
	var clauses []AlterationClause
	for _, matchIndices := range alterationPattern.FindAllStringSubmatchIndex(text, -1) {
		phrase := text[matchIndices[2]:matchIndices[3]]
		kind := normKindFromPhrase(phrase)
		if kind == KindUnknown {
			continue
		}
		number := text[matchIndices[4]:matchIndices[5]]
		year := ""
		if matchIndices[6] != -1 {
			year = text[matchIndices[6]:matchIndices[7]]
		} else if matchIndices[8] != -1 {
			year = text[matchIndices[8]:matchIndices[9]]
		}
		target, ok := NewReference(kind, number, year)
		if !ok {
			continue
		}
		clauses = append(clauses, AlterationClause{
			Target:      target,
			Description: condenseWhitespace(text[matchIndices[0]:matchIndices[1]]),
		})
	}
	return clauses
}

// condenseWhitespace folds line breaks inside a clause into single spaces.
func condenseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normKinds lists the enacted instrument kinds.
func normKinds() []Kind {
	return []Kind{
		KindComplementaryLaw,
		KindLaw,
		KindResolution,
		KindConstitutionalAmendment,
		KindBoardDeliberation,
	}
}

// administrativeKinds lists the executive/secretariat act kinds.
func administrativeKinds() []Kind {
	return []Kind{
		KindOrdinance,
		KindServiceOrder,
		KindSecretariatDecision,
	}
}
