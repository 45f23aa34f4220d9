package gazette

import (
	"regexp"
)

// Classification is the outcome of disambiguating one occurrence.
type Classification struct {
	// Kind may refine the occurrence's kind: a generic REQUERIMENTO match
	// becomes RQC when the surrounding context shows plenary handling.
	Kind Kind

	// Status is the assigned free-form status.
	Status string

	// Categoria is the independent designation tag, empty when absent.
	Categoria string
}

// windowScope selects which context window a trigger phrase applies to.
type windowScope int

const (
	scopeBefore windowScope = iota
	scopeAfter
	scopeEither
)

// statusRule is one trigger phrase with its assigned status. Rules are
// evaluated in declaration order: the declared precedence, not textual
// proximity, resolves overlapping triggers within the same window.
type statusRule struct {
	pattern *regexp.Regexp
	scope   windowScope
	status  string

	// refineKind reassigns the occurrence kind when nonzero.
	refineKind Kind
}

// Disambiguator classifies a single occurrence by inspecting bounded
// windows of text before and after the match for fixed trigger phrases.
type Disambiguator struct {
	opts Options

	// overridePatterns discard the occurrence entirely when found in the
	// after-window: the citation belongs to a previous edition, to the
	// adopted final wording, or to another publication's heading.
	overridePatterns []*regexp.Regexp

	// statusRules hold the mutually exclusive status phrases in canonical
	// precedence order: approval, explicit receipt with approval, plain
	// receipt, then the weaker states.
	statusRules []statusRule

	// categoryPattern computes the designation tag independently of status.
	categoryPattern *regexp.Regexp
}

// NewDisambiguator compiles the fixed trigger-phrase vocabulary.
func NewDisambiguator(opts Options) *Disambiguator {
	return &Disambiguator{
		opts: opts.withDefaults(),
		overridePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)publicad[oa]\s+(?:em|na)\s+edição\s+anterior`),
			regexp.MustCompile(`(?i)redação\s+do\s+vencido`),
			regexp.MustCompile(`(?i)matéria\s+publicada\s+no\s+diário`),
		},
		statusRules: []statusRule{
			{
				pattern: regexp.MustCompile(`(?i)recebido\s+pela\s+presidência,\s+submetido\s+a\s+votação\s+e\s+aprovado`),
				scope:   scopeBefore, status: "Aprovado", refineKind: KindRequirementC,
			},
			{
				pattern: regexp.MustCompile(`(?i)submetid[oa]\s+a\s+votação\s+e\s+aprovad[oa]`),
				scope:   scopeBefore, status: "Aprovado", refineKind: KindRequirementC,
			},
			{
				pattern: regexp.MustCompile(`(?i)É\s+recebido\s+pela\s+presidência`),
				scope:   scopeBefore, status: "Recebido", refineKind: KindRequirementC,
			},
			{
				pattern: regexp.MustCompile(`(?i)RECEBIMENTO\s+DE\s+PROPOSIÇÃO`),
				scope:   scopeBefore, status: "Recebido", refineKind: KindRequirementN,
			},
			{
				pattern: regexp.MustCompile(`(?i)prejudicad[oa]`),
				scope:   scopeEither, status: "Prejudicado",
			},
			{
				pattern: regexp.MustCompile(`(?i)pendente`),
				scope:   scopeEither, status: "Pendente",
			},
		},
		categoryPattern: regexp.MustCompile(`(?i)Declara\s+de\s+utilidade\s+pública`),
	}
}

// Classify inspects the occurrence's context windows and assigns kind,
// status and category. The second return value is false when an override
// phrase discards the occurrence entirely; a discarded occurrence is not
// added as a record and does not feed the ignore set (only the dedicated
// ignore pattern does that).
func (d *Disambiguator) Classify(occ Occurrence) (Classification, bool) {
	after := occ.After(d.opts.AfterWindow)
	for _, override := range d.overridePatterns {
		if override.MatchString(after) {
			return Classification{}, false
		}
	}

	before := occ.Before(d.opts.BeforeWindow)
	classification := Classification{
		Kind:      occ.Reference.Kind,
		Status:    defaultStatus(occ.Reference.Kind),
		Categoria: d.categoria(occ),
	}

	for _, rule := range d.statusRules {
		if !ruleMatches(rule, before, after) {
			continue
		}
		classification.Status = rule.status
		// Kind refinement distinguishes RQN from RQC; it never crosses
		// category, so a voted proposition keeps its own kind.
		if rule.refineKind != KindUnknown && occ.Reference.Kind.Category() == CategoryRequirement {
			classification.Kind = rule.refineKind
		}
		break
	}

	return classification, true
}

// categoria runs the independent designation scan over the larger window.
func (d *Disambiguator) categoria(occ Occurrence) string {
	if d.categoryPattern.MatchString(occ.After(d.opts.CategoryWindow)) {
		return "Utilidade Pública"
	}
	return ""
}

func ruleMatches(rule statusRule, before, after string) bool {
	switch rule.scope {
	case scopeBefore:
		return rule.pattern.MatchString(before)
	case scopeAfter:
		return rule.pattern.MatchString(after)
	default:
		return rule.pattern.MatchString(before) || rule.pattern.MatchString(after)
	}
}

// defaultStatus is the status assigned when no trigger phrase matches:
// propositions are in process, requirements await handling.
func defaultStatus(kind Kind) string {
	switch kind.Category() {
	case CategoryProposition:
		return "Em tramitação"
	case CategoryRequirement:
		return "Pendente"
	default:
		return ""
	}
}
