// Package gazette extracts structured legislative records from the text of
// official-gazette documents. It scans extracted PDF text for instrument
// citations (laws, bills, requirements, committee opinions), classifies each
// occurrence by its surrounding context, links amendments and substitutes to
// their parent proposition, and assembles deduplicated per-category tables.
package gazette

import (
	"fmt"
	"strings"
)

// Kind identifies a legislative or administrative instrument type.
type Kind int

const (
	KindUnknown Kind = iota

	// Norms: enacted instruments.
	KindLaw
	KindComplementaryLaw
	KindResolution
	KindConstitutionalAmendment
	KindBoardDeliberation

	// Propositions: instruments still in process.
	KindBill
	KindComplementaryBill
	KindIndication
	KindResolutionBill
	KindConstitutionalAmendmentProposal
	KindMessage
	KindVeto

	// Requirements: formal requests/motions.
	KindRequirementN
	KindRequirementC

	// Administrative acts.
	KindOrdinance
	KindServiceOrder
	KindSecretariatDecision
)

// Category groups instrument kinds into output tables.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNorm
	CategoryProposition
	CategoryRequirement
	CategoryAdministrativeAct
)

// String returns the table name used for the category.
func (c Category) String() string {
	switch c {
	case CategoryNorm:
		return "Normas"
	case CategoryProposition:
		return "Proposições"
	case CategoryRequirement:
		return "Requerimentos"
	case CategoryAdministrativeAct:
		return "Atos Administrativos"
	default:
		return "Desconhecida"
	}
}

// Abbrev returns the canonical abbreviation code (sigla) for the kind.
func (k Kind) Abbrev() string {
	switch k {
	case KindLaw:
		return "LEI"
	case KindComplementaryLaw:
		return "LC"
	case KindResolution:
		return "RES"
	case KindConstitutionalAmendment:
		return "EMC"
	case KindBoardDeliberation:
		return "DLB"
	case KindBill:
		return "PL"
	case KindComplementaryBill:
		return "PLC"
	case KindIndication:
		return "IND"
	case KindResolutionBill:
		return "PRE"
	case KindConstitutionalAmendmentProposal:
		return "PEC"
	case KindMessage:
		return "MSG"
	case KindVeto:
		return "VET"
	case KindRequirementN:
		return "RQN"
	case KindRequirementC:
		return "RQC"
	case KindOrdinance:
		return "PRT"
	case KindServiceOrder:
		return "OSV"
	case KindSecretariatDecision:
		return "DSC"
	default:
		return ""
	}
}

// Category returns the output category the kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindLaw, KindComplementaryLaw, KindResolution,
		KindConstitutionalAmendment, KindBoardDeliberation:
		return CategoryNorm
	case KindBill, KindComplementaryBill, KindIndication,
		KindResolutionBill, KindConstitutionalAmendmentProposal,
		KindMessage, KindVeto:
		return CategoryProposition
	case KindRequirementN, KindRequirementC:
		return CategoryRequirement
	case KindOrdinance, KindServiceOrder, KindSecretariatDecision:
		return CategoryAdministrativeAct
	default:
		return CategoryUnknown
	}
}

// String returns the abbreviation, or "?" for an unknown kind.
func (k Kind) String() string {
	if abbrev := k.Abbrev(); abbrev != "" {
		return abbrev
	}
	return "?"
}

// Reference identifies one concrete instrument: kind + number + year.
// Number carries no thousands-separator punctuation; Year is always a
// 4-digit string. The triple is the unique key for deduplication.
type Reference struct {
	Kind   Kind
	Number string
	Year   string
}

// NewReference builds a Reference, normalizing the number by stripping
// thousands-separator periods and leading zeros. It returns false when the
// number is empty after normalization or the year is not a 4-digit string;
// such references are invalid and must be discarded.
func NewReference(kind Kind, number, year string) (Reference, bool) {
	normalized := NormalizeNumber(number)
	if normalized == "" {
		return Reference{}, false
	}
	if len(year) != 4 {
		return Reference{}, false
	}
	for _, ch := range year {
		if ch < '0' || ch > '9' {
			return Reference{}, false
		}
	}
	return Reference{Kind: kind, Number: normalized, Year: year}, true
}

// NormalizeNumber strips thousands-separator periods and leading zeros
// from an instrument number ("1.234" -> "1234", "047" -> "47").
func NormalizeNumber(number string) string {
	stripped := strings.ReplaceAll(strings.TrimSpace(number), ".", "")
	stripped = strings.TrimLeft(stripped, "0")
	if stripped == "" && strings.ContainsRune(number, '0') {
		return "0"
	}
	return stripped
}

// Key returns the deduplication key for the reference.
func (r Reference) Key() string {
	return fmt.Sprintf("%s %s/%s", r.Kind.Abbrev(), r.Number, r.Year)
}

// String returns the human-readable citation form.
func (r Reference) String() string {
	return fmt.Sprintf("%s nº %s/%s", r.Kind.Abbrev(), r.Number, r.Year)
}

// Occurrence is one raw detection of a Reference at a specific character
// offset range within the source text.
type Occurrence struct {
	Reference Reference

	// Start and End delimit the matched substring in the source text.
	Start int
	End   int

	// RawText is the matched substring.
	RawText string

	// DateFragment is the sanction-date text captured by the enacted-norm
	// heading form ("10 DE MARÇO DE 2024"), empty for slash citations.
	DateFragment string

	// text is the full source snapshot, kept for context windows.
	text string
}

// Before returns up to n characters of text immediately preceding the match.
// A window running past the start of the document is truncated.
func (o Occurrence) Before(n int) string {
	from := o.Start - n
	if from < 0 {
		from = 0
	}
	return o.text[from:o.Start]
}

// After returns up to n characters of text immediately following the match.
// A window running past the end of the document is truncated.
func (o Occurrence) After(n int) string {
	to := o.End + n
	if to > len(o.text) {
		to = len(o.text)
	}
	return o.text[o.End:to]
}

// AttachmentType marks the kind of secondary document attached to a
// proposition during committee proceedings.
type AttachmentType int

const (
	AttachmentEmenda AttachmentType = iota
	AttachmentSubstitutivo
)

// String returns the label used in the Opinions table.
func (a AttachmentType) String() string {
	switch a {
	case AttachmentEmenda:
		return "EMENDA"
	case AttachmentSubstitutivo:
		return "SUBSTITUTIVO"
	default:
		return ""
	}
}

// Record is one output row in the making. It is created on the first
// occurrence of its Reference key and mutated as later occurrences for the
// same key are processed; it is never deleted.
type Record struct {
	Reference Reference

	// Status is the free-form classification ("Recebido", "Aprovado",
	// "Prejudicado", "Pendente", "NÃO RECEBIDO", "Em tramitação" or empty).
	Status string

	// Categoria is an independent designation tag ("Utilidade Pública" or
	// empty). It never affects Status.
	Categoria string

	// Author and Summary are optional requirement fields, empty when the
	// document does not carry them.
	Author  string
	Summary string

	// SanctionDate is the normalized sanction date for norms ("DD/MM/YYYY"),
	// empty when the printed date fragment does not decompose.
	SanctionDate string

	// Alterations holds distinct alteration/revocation descriptions
	// accumulated for a norm, in first-seen order.
	Alterations []string

	// attachments is the set of secondary-document types seen for the key.
	attachments map[AttachmentType]bool
}

// NewRecord creates a record for the reference with the given status.
func NewRecord(ref Reference, status string) *Record {
	return &Record{Reference: ref, Status: status}
}

// AddAttachment accumulates a secondary-document type for the record.
func (r *Record) AddAttachment(at AttachmentType) {
	if r.attachments == nil {
		r.attachments = make(map[AttachmentType]bool)
	}
	r.attachments[at] = true
}

// HasAttachment reports whether the given attachment type was seen.
func (r *Record) HasAttachment(at AttachmentType) bool {
	return r.attachments[at]
}

// AttachmentLabel folds the accumulated attachment types into the single
// label used by the Opinions table: "SUB/EMENDA" when both EMENDA and
// SUBSTITUTIVO are present, else the lone type name, else empty.
func (r *Record) AttachmentLabel() string {
	hasEmenda := r.attachments[AttachmentEmenda]
	hasSubstitutivo := r.attachments[AttachmentSubstitutivo]
	switch {
	case hasEmenda && hasSubstitutivo:
		return "SUB/EMENDA"
	case hasEmenda:
		return AttachmentEmenda.String()
	case hasSubstitutivo:
		return AttachmentSubstitutivo.String()
	default:
		return ""
	}
}

// AddAlteration appends an alteration description if it is not already
// recorded. Duplicates differing only in surrounding whitespace are
// considered the same alteration.
func (r *Record) AddAlteration(description string) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return
	}
	for _, existing := range r.Alterations {
		if existing == trimmed {
			return
		}
	}
	r.Alterations = append(r.Alterations, trimmed)
}
