package gazette

import (
	"regexp"
)

// Section is a half-open character range [Start, End) in the source text.
type Section struct {
	Start int
	End   int
}

// Contains reports whether the position falls inside the section.
func (s Section) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

var (
	// tramitacaoHeader opens the proceedings-of-propositions section, the
	// only place amendment/substitute titles and their anchors are valid.
	tramitacaoHeader = regexp.MustCompile(`(?i)TRAMITAÇÃO\s+DE\s+PROPOSIÇÕES`)

	// naoRecebidasHeader opens the non-received propositions bookkeeping
	// list. Same-shaped number patterns outside this range belong to other
	// structural sections and must not be matched as non-received items.
	naoRecebidasHeader = regexp.MustCompile(`(?i)PROPOSIÇÕES\s+NÃO\s+RECEBIDAS`)

	// topLevelHeader matches an all-caps line standing alone, which closes
	// the currently open section. Normalized gazette text keeps one line
	// per structural heading, so this is a reliable boundary.
	topLevelHeader = regexp.MustCompile(`(?m)^[\p{Lu}][\p{Lu} ]{7,}$`)

	// votacaoBlockStart opens a nested voting-of-requirement sub-block
	// inside the proceedings section. Anchors inside these blocks would be
	// false targets for amendment linking, so the ranges are pruned.
	votacaoBlockStart = regexp.MustCompile(`(?i)Votação(?:,\s*em\s+[^,]+,)?\s+d[oe]\s+Requerimento`)

	// conclusaoMarker closes a voting sub-block and introduces the next
	// proposition's conclusion anchor.
	conclusaoMarker = regexp.MustCompile(`(?i)Conclusão`)
)

// FindSection locates the section opened by the given header pattern. The
// section runs from the end of the header match to the next standalone
// top-level header, or to the end of text. The second return value is false
// when the header is absent; dependent extractions then operate on an empty
// range rather than failing the run.
func FindSection(text string, header *regexp.Regexp) (Section, bool) {
	headerLoc := header.FindStringIndex(text)
	if headerLoc == nil {
		return Section{}, false
	}
	start := headerLoc[1]
	end := len(text)
	if nextHeader := topLevelHeader.FindStringIndex(text[start:]); nextHeader != nil {
		end = start + nextHeader[0]
	}
	return Section{Start: start, End: end}, true
}

// TramitacaoSection locates the proceedings-of-propositions section.
func TramitacaoSection(text string) (Section, bool) {
	return FindSection(text, tramitacaoHeader)
}

// NaoRecebidasSection locates the non-received propositions section.
func NaoRecebidasSection(text string) (Section, bool) {
	return FindSection(text, naoRecebidasHeader)
}

// PruneVotingBlocks returns the ranges of nested voting-of-requirement
// sub-blocks inside the given section. Each block runs from its "Votação do
// Requerimento" opening to the next "Conclusão" marker or the section end.
// Pruned ranges are invisible to the backward anchor scan.
func PruneVotingBlocks(text string, section Section) []Section {
	var pruned []Section
	region := text[section.Start:section.End]
	for _, blockLoc := range votacaoBlockStart.FindAllStringIndex(region, -1) {
		blockStart := section.Start + blockLoc[0]
		blockEnd := section.End
		rest := region[blockLoc[1]:]
		if endLoc := conclusaoMarker.FindStringIndex(rest); endLoc != nil {
			blockEnd = section.Start + blockLoc[1] + endLoc[0]
		}
		pruned = append(pruned, Section{Start: blockStart, End: blockEnd})
	}
	return pruned
}

// insidePruned reports whether a position falls in any pruned range.
func insidePruned(pos int, pruned []Section) bool {
	for _, blocked := range pruned {
		if blocked.Contains(pos) {
			return true
		}
	}
	return false
}
