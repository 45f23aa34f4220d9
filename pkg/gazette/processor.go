package gazette

import (
	"regexp"
)

// approvedRequirementPattern is the authoritative plenary-approval grammar.
// A hit both emits an approved RQC record and pre-populates the ignore set,
// suppressing lower-confidence detections of the same requirement entirely.
var approvedRequirementPattern = regexp.MustCompile(
	`(?i)recebido\s+pela\s+presidência,\s+submetido\s+a\s+votação\s+e\s+aprovado\s+o\s+Requerimentos?` +
		`(?:\s+` + markerGroup + `)?\s*` + numberGroup + `\s*/\s*(\d{4})`)

// Result is the outcome of one document processing pass.
type Result struct {
	// Tables maps category name to its assembled table.
	Tables Tables

	// Ignored is the number of requirement keys suppressed by the
	// ignore set for this document.
	Ignored int
}

// Processor runs the full extraction pipeline over one document's text.
// A processor is stateless across documents: every call to Process owns its
// ignore set, record maps and occurrence lists, so independent documents
// could be processed in parallel with separate calls.
type Processor struct {
	opts          Options
	matcher       *Matcher
	disambiguator *Disambiguator
	linker        *Linker
}

// NewProcessor creates a processor over the default grammar table.
func NewProcessor(opts Options) *Processor {
	return NewProcessorWithGrammars(opts, DefaultGrammars())
}

// NewProcessorWithGrammars creates a processor bound to a custom grammar
// table. The table is immutable configuration from this point on.
func NewProcessorWithGrammars(opts Options, grammars []Grammar) *Processor {
	opts = opts.withDefaults()
	matcher := NewMatcher(grammars)
	return &Processor{
		opts:          opts,
		matcher:       matcher,
		disambiguator: NewDisambiguator(opts),
		linker:        NewLinker(matcher),
	}
}

// Process scans a document's normalized text to completion and returns the
// per-category tables. The pass is single-threaded and synchronous; all
// scans are pure functions over the immutable text snapshot.
func (p *Processor) Process(text string) *Result {
	ignore := BuildIgnoreSet(text)
	agg := NewAggregator(ignore)

	nonReceivedRange, hasNonReceived := NaoRecebidasSection(text)
	inNonReceived := func(pos int) bool {
		return hasNonReceived && nonReceivedRange.Contains(pos)
	}

	p.scanApprovedRequirements(text, ignore, agg)
	p.scanRequirements(text, agg, inNonReceived)
	p.scanPropositions(text, agg, inNonReceived)
	p.scanNorms(text, agg)
	p.scanAdministrative(text, agg)
	p.scanNonReceived(text, agg)

	for _, attachment := range p.linker.Link(text) {
		agg.AddOpinion(attachment)
	}

	return &Result{
		Tables:  AssembleTables(agg),
		Ignored: ignore.Len(),
	}
}

// scanApprovedRequirements runs the authoritative approval grammar before
// the generic requirement scan.
func (p *Processor) scanApprovedRequirements(text string, ignore *IgnoreSet, agg *Aggregator) {
	for _, match := range approvedRequirementPattern.FindAllStringSubmatch(text, -1) {
		reference, ok := NewReference(KindRequirementC, match[1], match[2])
		if !ok {
			continue
		}
		agg.AddRequirement(reference, "Aprovado")
		ignore.Add(reference)
	}
}

// scanRequirements runs the generic REQUERIMENTO scan with per-occurrence
// context disambiguation. Occurrences inside the non-received bookkeeping
// section belong to that list's dedicated pass.
func (p *Processor) scanRequirements(text string, agg *Aggregator, inNonReceived func(int) bool) {
	for _, occurrence := range p.matcher.FindAll(text, KindRequirementN) {
		if inNonReceived(occurrence.Start) {
			continue
		}
		classification, ok := p.disambiguator.Classify(occurrence)
		if !ok {
			continue
		}
		reference := occurrence.Reference
		reference.Kind = classification.Kind
		agg.AddRequirement(reference, classification.Status)
	}
}

// scanPropositions scans all proposition kinds document-wide.
func (p *Processor) scanPropositions(text string, agg *Aggregator, inNonReceived func(int) bool) {
	for _, occurrence := range p.matcher.FindAll(text, propositionKinds()...) {
		if inNonReceived(occurrence.Start) {
			continue
		}
		classification, ok := p.disambiguator.Classify(occurrence)
		if !ok {
			continue
		}
		agg.AddProposition(occurrence.Reference, classification.Status, classification.Categoria)
	}
}

// scanNorms records enacted-norm headings as publication detections and
// alteration clauses as alteration detections for their cited target.
func (p *Processor) scanNorms(text string, agg *Aggregator) {
	for _, occurrence := range p.matcher.FindAll(text, normKinds()...) {
		if occurrence.DateFragment == "" {
			// A plain slash citation of a norm is a mention, not a
			// publication; mentions do not create rows.
			continue
		}
		if _, ok := p.disambiguator.Classify(occurrence); !ok {
			continue
		}
		agg.AddNorm(occurrence.Reference, ParseLongDate(occurrence.DateFragment), "")
	}
	for _, clause := range FindAlterations(text) {
		agg.AddNorm(clause.Target, "", clause.Description)
	}
}

// scanAdministrative records executive/secretariat act headings.
func (p *Processor) scanAdministrative(text string, agg *Aggregator) {
	for _, occurrence := range p.matcher.FindAll(text, administrativeKinds()...) {
		if occurrence.DateFragment == "" {
			continue
		}
		agg.AddAdministrativeAct(occurrence.Reference, ParseLongDate(occurrence.DateFragment))
	}
}

// scanNonReceived folds the non-received bookkeeping list into the tables:
// requirement items enter the Requirements table with the dedicated status,
// bill items enter the Propositions table.
func (p *Processor) scanNonReceived(text string, agg *Aggregator) {
	for _, item := range FindNonReceived(text) {
		switch item.Reference.Kind.Category() {
		case CategoryRequirement:
			agg.AddRequirement(item.Reference, NonReceivedStatus)
		case CategoryProposition:
			agg.AddProposition(item.Reference, NonReceivedStatus, "")
		}
	}
}

// PageSegment is one pre-extracted page/column text segment of an
// administrative or executive document.
type PageSegment struct {
	Page   int
	Column int
	Text   string
}

// ProcessSegments concatenates per-page-per-column segments in order and
// processes the joined text as one document.
func (p *Processor) ProcessSegments(segments []PageSegment) *Result {
	joined := ""
	for _, segment := range segments {
		if joined != "" {
			joined += "\n\n"
		}
		joined += segment.Text
	}
	return p.Process(joined)
}
