package gazette

// orderedRecords is an insertion-ordered record map keyed by Reference.Key().
type orderedRecords struct {
	order []string
	byKey map[string]*Record
}

func newOrderedRecords() *orderedRecords {
	return &orderedRecords{byKey: make(map[string]*Record)}
}

// get returns the existing record for the key, or nil.
func (o *orderedRecords) get(ref Reference) *Record {
	return o.byKey[ref.Key()]
}

// insert registers a new record, keeping first-occurrence order.
func (o *orderedRecords) insert(record *Record) {
	key := record.Reference.Key()
	o.byKey[key] = record
	o.order = append(o.order, key)
}

// all returns the records in first-occurrence order.
func (o *orderedRecords) all() []*Record {
	records := make([]*Record, 0, len(o.order))
	for _, key := range o.order {
		records = append(records, o.byKey[key])
	}
	return records
}

// Aggregator merges extracted records sharing the same (kind, number, year)
// key and applies the per-category conflict policies. Adding the same
// record stream twice yields the same tables as adding it once.
type Aggregator struct {
	ignore *IgnoreSet

	norms        *orderedRecords
	propositions *orderedRecords
	requirements *orderedRecords
	opinions     *orderedRecords
	adminActs    *orderedRecords
}

// NewAggregator creates an aggregator suppressed by the given ignore set.
// A nil ignore set suppresses nothing.
func NewAggregator(ignore *IgnoreSet) *Aggregator {
	if ignore == nil {
		ignore = &IgnoreSet{keys: make(map[string]bool)}
	}
	return &Aggregator{
		ignore:       ignore,
		norms:        newOrderedRecords(),
		propositions: newOrderedRecords(),
		requirements: newOrderedRecords(),
		opinions:     newOrderedRecords(),
		adminActs:    newOrderedRecords(),
	}
}

// AddRequirement records a requirement detection. Keys present in the
// ignore set never enter the table. For keys already present the first
// detected status wins: later, lower-confidence scans cannot overwrite it.
func (a *Aggregator) AddRequirement(ref Reference, status string) {
	if a.ignore.Contains(ref) {
		return
	}
	if a.requirements.get(ref) != nil {
		return
	}
	a.requirements.insert(NewRecord(ref, status))
}

// AddProposition records a proposition detection. Later occurrences may
// overwrite the status and fill an empty category tag.
func (a *Aggregator) AddProposition(ref Reference, status, categoria string) {
	record := a.propositions.get(ref)
	if record == nil {
		record = NewRecord(ref, status)
		a.propositions.insert(record)
	} else if status != "" {
		record.Status = status
	}
	if record.Categoria == "" {
		record.Categoria = categoria
	}
}

// AddNorm records a norm publication or alteration detection. Duplicate
// alteration descriptions for the same key are removed; genuinely distinct
// descriptions accumulate as separate rows at assembly time.
func (a *Aggregator) AddNorm(ref Reference, sanctionDate, alteration string) {
	record := a.norms.get(ref)
	if record == nil {
		record = NewRecord(ref, "")
		a.norms.insert(record)
	}
	if record.SanctionDate == "" {
		record.SanctionDate = sanctionDate
	}
	record.AddAlteration(alteration)
}

// AddOpinion accumulates an amendment/substitute attachment for its target
// proposition. Attachment types union: adding the same pair twice is a no-op.
func (a *Aggregator) AddOpinion(att Attachment) {
	record := a.opinions.get(att.Target)
	if record == nil {
		record = NewRecord(att.Target, "")
		a.opinions.insert(record)
	}
	record.AddAttachment(att.Type)
}

// AddAdministrativeAct records an executive/administrative act detection.
func (a *Aggregator) AddAdministrativeAct(ref Reference, sanctionDate string) {
	record := a.adminActs.get(ref)
	if record == nil {
		record = NewRecord(ref, "")
		a.adminActs.insert(record)
	}
	if record.SanctionDate == "" {
		record.SanctionDate = sanctionDate
	}
}

// Norms returns the merged norm records in first-occurrence order.
func (a *Aggregator) Norms() []*Record { return a.norms.all() }

// Propositions returns the merged proposition records in first-occurrence order.
func (a *Aggregator) Propositions() []*Record { return a.propositions.all() }

// Requirements returns the merged requirement records in first-occurrence order.
func (a *Aggregator) Requirements() []*Record { return a.requirements.all() }

// Opinions returns the merged opinion records in first-occurrence order.
func (a *Aggregator) Opinions() []*Record { return a.opinions.all() }

// AdministrativeActs returns the merged administrative-act records.
func (a *Aggregator) AdministrativeActs() []*Record { return a.adminActs.all() }
