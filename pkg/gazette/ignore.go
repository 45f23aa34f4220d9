package gazette

import (
	"regexp"
)

// oficioPattern matches an administrative cover letter that merely refers
// to a requirement ("Ofício nº ..., ... relativas ao Requerimento nº N/Y").
// A requirement mentioned only this way must never reach the table.
var oficioPattern = regexp.MustCompile(
	`(?is)Ofício\s+nº\s+.*?relativas?\s+aos?\s+Requerimentos?\s+nº\s*(\d{1,5}(?:\.\d{1,3})*)\s*/\s*(\d{4})`)

// IgnoreSet holds requirement keys excluded from the Requirements table.
// It is built once per document before the main requirement scan and is
// read-only afterwards. Keys are number/year pairs: a cross-reference does
// not say whether it points at an RQN or an RQC, so both are suppressed.
type IgnoreSet struct {
	keys map[string]bool
}

// BuildIgnoreSet scans the document for dedicated ignore patterns.
func BuildIgnoreSet(text string) *IgnoreSet {
	ignoreSet := &IgnoreSet{keys: make(map[string]bool)}
	for _, match := range oficioPattern.FindAllStringSubmatch(text, -1) {
		ignoreSet.add(match[1], match[2])
	}
	return ignoreSet
}

func (s *IgnoreSet) add(number, year string) {
	normalized := NormalizeNumber(number)
	if normalized == "" || len(year) != 4 {
		return
	}
	s.keys[normalized+"/"+year] = true
}

// Add suppresses the reference's number/year for the rest of the pass.
// Higher-confidence dedicated patterns use this to pre-empt lower-confidence
// detections of the same requirement.
func (s *IgnoreSet) Add(ref Reference) {
	s.keys[ref.Number+"/"+ref.Year] = true
}

// Contains reports whether the reference's number/year is suppressed.
func (s *IgnoreSet) Contains(ref Reference) bool {
	return s.keys[ref.Number+"/"+ref.Year]
}

// Len returns the number of suppressed keys.
func (s *IgnoreSet) Len() int {
	return len(s.keys)
}
