package gazette

import (
	"sort"
)

// Matcher finds every textual occurrence of an instrument citation in a text
// blob, driven by the declarative grammar table. Matching is a pure function
// over an immutable text snapshot: calling the same method twice over the
// same text yields the same occurrences, in ascending start order.
type Matcher struct {
	grammars []Grammar
	byKind   map[Kind]*Grammar
}

// NewMatcher binds a grammar table into a matcher. The table is treated as
// immutable configuration from this point on.
func NewMatcher(grammars []Grammar) *Matcher {
	matcher := &Matcher{
		grammars: grammars,
		byKind:   make(map[Kind]*Grammar, len(grammars)),
	}
	for i := range matcher.grammars {
		grammar := &matcher.grammars[i]
		matcher.byKind[grammar.Kind] = grammar
	}
	return matcher
}

// Grammar returns the grammar bound for the given kind.
func (m *Matcher) Grammar(kind Kind) (*Grammar, bool) {
	grammar, ok := m.byKind[kind]
	return grammar, ok
}

// FindAll returns every non-overlapping occurrence of the given kinds in the
// text, ordered by ascending start position. With no kinds, all grammars in
// the table are scanned. A match whose year is missing or malformed is
// skipped, never an error.
func (m *Matcher) FindAll(text string, kinds ...Kind) []Occurrence {
	return m.FindAllInRange(text, 0, len(text), kinds...)
}

// FindAllInRange behaves like FindAll but bounds the scan to text[start:end].
// Reported offsets remain relative to the full text, so occurrences from
// bounded section scans stay comparable with document-wide ones.
func (m *Matcher) FindAllInRange(text string, start, end int, kinds ...Kind) []Occurrence {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return nil
	}

	selected := m.selectGrammars(kinds)
	region := text[start:end]

	var occurrences []Occurrence
	for _, grammar := range selected {
		occurrences = append(occurrences, findCitations(grammar, text, region, start)...)
		if grammar.heading != nil {
			occurrences = append(occurrences, findHeadings(grammar, text, region, start)...)
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if occurrences[i].Start != occurrences[j].Start {
			return occurrences[i].Start < occurrences[j].Start
		}
		return occurrences[i].End-occurrences[i].Start > occurrences[j].End-occurrences[j].Start
	})

	return resolveOverlaps(occurrences)
}

// selectGrammars picks the grammars to scan with. Must not mutate the table.
func (m *Matcher) selectGrammars(kinds []Kind) []*Grammar {
	if len(kinds) == 0 {
		all := make([]*Grammar, 0, len(m.grammars))
		for i := range m.grammars {
			all = append(all, &m.grammars[i])
		}
		return all
	}
	selected := make([]*Grammar, 0, len(kinds))
	for _, kind := range kinds {
		if grammar, ok := m.byKind[kind]; ok {
			selected = append(selected, grammar)
		}
	}
	return selected
}

// findCitations scans the slash form "<phrase> Nº <number>/<year>".
func findCitations(grammar *Grammar, fullText, region string, offset int) []Occurrence {
	var occurrences []Occurrence
	for _, matchIndices := range grammar.citation.FindAllStringSubmatchIndex(region, -1) {
		number := region[matchIndices[2]:matchIndices[3]]
		year := region[matchIndices[4]:matchIndices[5]]
		reference, ok := NewReference(grammar.Kind, number, year)
		if !ok {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			Reference: reference,
			Start:     offset + matchIndices[0],
			End:       offset + matchIndices[1],
			RawText:   region[matchIndices[0]:matchIndices[1]],
			text:      fullText,
		})
	}
	return occurrences
}

// findHeadings scans the enacted-norm heading form
// "<phrase> Nº <number>, DE <day> DE <month> DE <year>".
func findHeadings(grammar *Grammar, fullText, region string, offset int) []Occurrence {
	var occurrences []Occurrence
	for _, matchIndices := range grammar.heading.FindAllStringSubmatchIndex(region, -1) {
		number := region[matchIndices[2]:matchIndices[3]]
		dateFragment := region[matchIndices[4]:matchIndices[5]]
		year := region[matchIndices[6]:matchIndices[7]]
		reference, ok := NewReference(grammar.Kind, number, year)
		if !ok {
			continue
		}
		occurrences = append(occurrences, Occurrence{
			Reference:    reference,
			Start:        offset + matchIndices[0],
			End:          offset + matchIndices[1],
			RawText:      region[matchIndices[0]:matchIndices[1]],
			DateFragment: dateFragment,
			text:         fullText,
		})
	}
	return occurrences
}

// resolveOverlaps drops occurrences overlapping an already-kept one. Input
// must be sorted by ascending start, longer match first on ties, so a
// citation embedded in a longer phrase ("EMENDA À CONSTITUIÇÃO" inside
// "PROPOSTA DE EMENDA À CONSTITUIÇÃO") loses to the enclosing match.
func resolveOverlaps(sorted []Occurrence) []Occurrence {
	if len(sorted) == 0 {
		return sorted
	}
	kept := sorted[:0]
	lastEnd := -1
	for _, occurrence := range sorted {
		if occurrence.Start < lastEnd {
			continue
		}
		kept = append(kept, occurrence)
		lastEnd = occurrence.End
	}
	return kept
}
