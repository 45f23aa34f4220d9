package gazette

import (
	"regexp"
	"strings"
)

var (
	// hyphenBreakPattern matches a word split across a line break with a
	// hyphen, continued in lowercase on the next line.
	hyphenBreakPattern = regexp.MustCompile(`(\p{L})-\s*\n\s*(\p{Ll})`)

	// whitespaceRunPattern matches runs of spaces and tabs.
	whitespaceRunPattern = regexp.MustCompile(`[ \t]+`)

	// blankLineRunPattern matches runs of blank lines.
	blankLineRunPattern = regexp.MustCompile(`\n{3,}`)

	// standalonePageNumber matches lines containing only a page number,
	// an artifact of per-page PDF extraction.
	standalonePageNumber = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
)

// Normalize cleans PDF-extracted gazette text for matching: it rejoins
// hyphenated words split across line breaks, drops standalone page-number
// lines, and collapses whitespace runs. Section structure (line breaks
// between blocks) is preserved so section bounding still works.
// Normalizing already-clean text is a no-op.
func Normalize(text string) string {
	cleaned := hyphenBreakPattern.ReplaceAllString(text, "$1$2")
	cleaned = standalonePageNumber.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")
	cleaned = blankLineRunPattern.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
