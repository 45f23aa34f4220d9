package gazette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// longDatePattern decomposes a printed sanction date like
// "10 DE MARÇO DE 2024" or "1º DE JANEIRO DE 2023".
var longDatePattern = regexp.MustCompile(`(?i)(\d{1,2})º?\s+DE\s+([\p{L}]+)\s+DE\s+(\d{4})`)

// monthNumbers maps lowercase Portuguese month names to their number.
var monthNumbers = map[string]int{
	"janeiro":   1,
	"fevereiro": 2,
	"março":     3,
	"abril":     4,
	"maio":      5,
	"junho":     6,
	"julho":     7,
	"agosto":    8,
	"setembro":  9,
	"outubro":   10,
	"novembro":  11,
	"dezembro":  12,
}

// ParseLongDate normalizes a printed day/month-name/year fragment into
// "DD/MM/YYYY". A fragment that does not decompose (unknown month name,
// day out of range) yields an empty string, never an error.
func ParseLongDate(fragment string) string {
	matchIndices := longDatePattern.FindStringSubmatch(fragment)
	if matchIndices == nil {
		return ""
	}
	day, err := strconv.Atoi(matchIndices[1])
	if err != nil || day < 1 || day > 31 {
		return ""
	}
	month, ok := monthNumbers[strings.ToLower(matchIndices[2])]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%s", day, month, matchIndices[3])
}
