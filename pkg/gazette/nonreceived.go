package gazette

import (
	"regexp"
)

// nonReceivedMarker matches the abbreviated item markers of the
// non-received propositions list. The pattern is deliberately compiled
// without (?i): the marker's capitalization is the only signal of the item
// kind — "Nº 15/2024" lists a non-received bill, "nº 15/2024" a
// non-received requirement.
var nonReceivedMarker = regexp.MustCompile(`([Nn])[º°]\s*` + numberGroup + `\s*/\s*(\d{4})`)

// NonReceivedItem is one entry of the non-received propositions list.
type NonReceivedItem struct {
	Reference Reference
}

// NonReceivedStatus is the status assigned to every non-received item.
const NonReceivedStatus = "NÃO RECEBIDO"

// FindNonReceived scans the bounded non-received propositions section for
// item markers. Same-shaped number patterns elsewhere in the document
// belong to other structural sections and are never matched here. When the
// section header is absent the result is empty.
func FindNonReceived(text string) []NonReceivedItem {
	section, found := NaoRecebidasSection(text)
	if !found {
		return nil
	}

	region := text[section.Start:section.End]
	var items []NonReceivedItem
	for _, match := range nonReceivedMarker.FindAllStringSubmatch(region, -1) {
		kind := KindRequirementN
		if match[1] == "N" {
			kind = KindBill
		}
		reference, ok := NewReference(kind, match[2], match[3])
		if !ok {
			continue
		}
		items = append(items, NonReceivedItem{Reference: reference})
	}
	return items
}
