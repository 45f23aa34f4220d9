package gazette

import (
	"regexp"
	"sort"
	"strings"
)

// Attachment links one secondary-document type (amendment or substitute)
// to the proposition it belongs to.
type Attachment struct {
	Target Reference
	Type   AttachmentType
}

// anchorWindow bounds how far after a "Conclusão" marker the anchored
// proposition citation may appear.
const anchorWindow = 300

var (
	// titlePattern matches a bare amendment/substitute title inside the
	// proceedings section. Titles carry no year of their own: the parent
	// proposition comes from the nearest preceding anchor.
	titlePattern = regexp.MustCompile(`(?i)\b(EMENDA|SUBSTITUTIVO)\s+` + markerGroup + `\s*\d+\b`)
)

// Linker associates amendment/substitute titles detected inside the
// proceedings-of-propositions section with their parent proposition. It
// runs a single forward pass keeping a most-recent-anchor pointer, which is
// equivalent to scanning backward from each title to the closest prior
// anchor but amortized linear over the section.
type Linker struct {
	matcher *Matcher

	// explicitPattern matches the self-targeting grammar
	// "EMENDA Nº i AO [SUBSTITUTIVO Nº j AO] <kind> Nº n/yyyy", which
	// states its parent explicitly and bypasses anchor scanning.
	explicitPattern *regexp.Regexp

	// phraseKinds resolves a matched kind phrase back to its Kind.
	phraseKinds map[string]Kind
}

// NewLinker builds a linker sharing the matcher's grammar table.
func NewLinker(matcher *Matcher) *Linker {
	linker := &Linker{
		matcher:     matcher,
		phraseKinds: make(map[string]Kind),
	}

	var phrases []string
	for _, kind := range propositionKinds() {
		grammar, ok := matcher.Grammar(kind)
		if !ok {
			continue
		}
		for _, phrase := range grammar.Phrases {
			phrases = append(phrases, phrase)
			linker.phraseKinds[normalizePhrase(phrase)] = kind
		}
	}
	// Longer phrases first so "PROJETO DE LEI COMPLEMENTAR" is not consumed
	// as "PROJETO DE LEI".
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })

	linker.explicitPattern = regexp.MustCompile(
		`(?i)EMENDA\s+` + markerGroup + `\s*\d+\s+AO\s+` +
			`(?:SUBSTITUTIVO\s+` + markerGroup + `\s*(\d+)\s+AO\s+)?` +
			`(` + phraseAlternation(phrases) + `)` +
			`\s+` + markerGroup + `\s*` + numberGroup + `\s*/\s*(\d{4})`)

	return linker
}

// Link extracts all attachments from the document. When the proceedings
// section is absent the result is empty, not an error.
func (l *Linker) Link(text string) []Attachment {
	section, found := TramitacaoSection(text)
	if !found {
		return nil
	}
	pruned := PruneVotingBlocks(text, section)

	var attachments []Attachment
	seen := make(map[string]bool)
	record := func(target Reference, at AttachmentType) {
		key := target.Key() + "|" + at.String()
		if seen[key] {
			return
		}
		seen[key] = true
		attachments = append(attachments, Attachment{Target: target, Type: at})
	}

	// Explicit grammar first: it states its own target, so its attachments
	// survive even when no anchor precedes, and later anchor-scan hits on
	// the same key union into the same set instead of duplicating.
	explicitRanges := l.linkExplicit(text, section, pruned, record)

	// Forward pass over anchors and remaining titles.
	anchors := l.findAnchors(text, section, pruned)
	l.linkTitles(text, section, pruned, anchors, explicitRanges, record)

	return attachments
}

// linkExplicit handles the self-targeting grammar and returns the matched
// ranges so the title pass can skip them.
func (l *Linker) linkExplicit(text string, section Section, pruned []Section, record func(Reference, AttachmentType)) []Section {
	region := text[section.Start:section.End]
	var ranges []Section
	for _, matchIndices := range l.explicitPattern.FindAllStringSubmatchIndex(region, -1) {
		start := section.Start + matchIndices[0]
		end := section.Start + matchIndices[1]
		ranges = append(ranges, Section{Start: start, End: end})
		if insidePruned(start, pruned) {
			continue
		}

		phrase := region[matchIndices[4]:matchIndices[5]]
		kind, ok := l.phraseKinds[normalizePhrase(phrase)]
		if !ok {
			continue
		}
		number := region[matchIndices[6]:matchIndices[7]]
		year := region[matchIndices[8]:matchIndices[9]]
		target, ok := NewReference(kind, number, year)
		if !ok {
			continue
		}

		record(target, AttachmentEmenda)
		if matchIndices[2] != -1 {
			record(target, AttachmentSubstitutivo)
		}
	}
	return ranges
}

// anchor is one "Conclusão ... <kind> Nº n/yyyy" occurrence.
type anchor struct {
	pos    int
	target Reference
}

// findAnchors locates conclusion anchors inside the section, skipping
// pruned voting sub-blocks.
func (l *Linker) findAnchors(text string, section Section, pruned []Section) []anchor {
	region := text[section.Start:section.End]
	var anchors []anchor
	for _, markerLoc := range conclusaoMarker.FindAllStringIndex(region, -1) {
		markerPos := section.Start + markerLoc[0]
		if insidePruned(markerPos, pruned) {
			continue
		}
		scanEnd := section.Start + markerLoc[1] + anchorWindow
		if scanEnd > section.End {
			scanEnd = section.End
		}
		cited := l.matcher.FindAllInRange(text, section.Start+markerLoc[1], scanEnd, propositionKinds()...)
		if len(cited) == 0 {
			continue
		}
		anchors = append(anchors, anchor{pos: cited[0].Start, target: cited[0].Reference})
	}
	return anchors
}

// linkTitles attaches bare titles to the nearest preceding anchor: the
// anchor with the highest start offset strictly less than the title's start.
// A title with no preceding anchor is dropped silently.
func (l *Linker) linkTitles(text string, section Section, pruned []Section, anchors []anchor, explicitRanges []Section, record func(Reference, AttachmentType)) {
	region := text[section.Start:section.End]
	nextAnchor := 0
	var last *anchor

	for _, matchIndices := range titlePattern.FindAllStringSubmatchIndex(region, -1) {
		titleStart := section.Start + matchIndices[0]
		if insidePruned(titleStart, pruned) || insidePruned(titleStart, explicitRanges) {
			continue
		}

		// Advance the most-recent-anchor pointer up to the title position.
		for nextAnchor < len(anchors) && anchors[nextAnchor].pos < titleStart {
			last = &anchors[nextAnchor]
			nextAnchor++
		}
		if last == nil {
			continue
		}

		titleWord := strings.ToUpper(region[matchIndices[2]:matchIndices[3]])
		if titleWord == "SUBSTITUTIVO" {
			record(last.target, AttachmentSubstitutivo)
		} else {
			record(last.target, AttachmentEmenda)
		}
	}
}

// propositionKinds lists the kinds an amendment or substitute can target.
func propositionKinds() []Kind {
	return []Kind{
		KindComplementaryBill,
		KindBill,
		KindResolutionBill,
		KindConstitutionalAmendmentProposal,
		KindIndication,
		KindMessage,
		KindVeto,
	}
}

// normalizePhrase collapses whitespace and case so a phrase matched across
// line breaks still resolves to its kind.
func normalizePhrase(phrase string) string {
	return strings.ToUpper(strings.Join(strings.Fields(phrase), " "))
}
