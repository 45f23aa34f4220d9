package gazette

// Table is one ordered per-category output with a fixed column schema.
// The assembler performs no filtering: every decision happened upstream.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Table names, also used as keys in the Tables mapping.
const (
	TableNorms          = "Normas"
	TablePropositions   = "Proposições"
	TableRequirements   = "Requerimentos"
	TableOpinions       = "Pareceres"
	TableAdministrative = "Atos Administrativos"
)

// Tables maps category name to its assembled table.
type Tables map[string]Table

// AssembleTables converts the aggregator's merged record maps into the
// final per-category tables.
func AssembleTables(agg *Aggregator) Tables {
	return Tables{
		TableNorms:          AssembleNorms(agg.Norms()),
		TablePropositions:   AssemblePropositions(agg.Propositions()),
		TableRequirements:   AssembleRequirements(agg.Requirements()),
		TableOpinions:       AssembleOpinions(agg.Opinions()),
		TableAdministrative: AssembleAdministrative(agg.AdministrativeActs()),
	}
}

// AssembleNorms emits one row per distinct (kind, number, year,
// alteration-description) tuple; a norm with no recorded alterations gets a
// single row with the column empty.
func AssembleNorms(records []*Record) Table {
	table := Table{
		Name:    TableNorms,
		Columns: []string{"Sigla", "Número", "Ano", "Alterações"},
	}
	for _, record := range records {
		ref := record.Reference
		if len(record.Alterations) == 0 {
			table.Rows = append(table.Rows, []string{ref.Kind.Abbrev(), ref.Number, ref.Year, ""})
			continue
		}
		for _, alteration := range record.Alterations {
			table.Rows = append(table.Rows, []string{ref.Kind.Abbrev(), ref.Number, ref.Year, alteration})
		}
	}
	return table
}

// AssemblePropositions emits [Sigla, Número, Ano, Categoria].
func AssemblePropositions(records []*Record) Table {
	table := Table{
		Name:    TablePropositions,
		Columns: []string{"Sigla", "Número", "Ano", "Categoria"},
	}
	for _, record := range records {
		ref := record.Reference
		table.Rows = append(table.Rows, []string{ref.Kind.Abbrev(), ref.Number, ref.Year, record.Categoria})
	}
	return table
}

// AssembleRequirements emits [Sigla, Número, Ano, Autor, Ementa, Situação].
// Autor and Ementa are empty strings when the document does not carry them.
func AssembleRequirements(records []*Record) Table {
	table := Table{
		Name:    TableRequirements,
		Columns: []string{"Sigla", "Número", "Ano", "Autor", "Ementa", "Situação"},
	}
	for _, record := range records {
		ref := record.Reference
		table.Rows = append(table.Rows, []string{
			ref.Kind.Abbrev(), ref.Number, ref.Year,
			record.Author, record.Summary, record.Status,
		})
	}
	return table
}

// AssembleOpinions emits [Sigla, Número, Ano, Tipo] with the folded
// attachment label per target proposition.
func AssembleOpinions(records []*Record) Table {
	table := Table{
		Name:    TableOpinions,
		Columns: []string{"Sigla", "Número", "Ano", "Tipo"},
	}
	for _, record := range records {
		ref := record.Reference
		table.Rows = append(table.Rows, []string{ref.Kind.Abbrev(), ref.Number, ref.Year, record.AttachmentLabel()})
	}
	return table
}

// AssembleAdministrative emits [Sigla, Número, Ano, Data] for executive and
// secretariat acts; the date column is empty when the printed fragment did
// not decompose.
func AssembleAdministrative(records []*Record) Table {
	table := Table{
		Name:    TableAdministrative,
		Columns: []string{"Sigla", "Número", "Ano", "Data"},
	}
	for _, record := range records {
		ref := record.Reference
		table.Rows = append(table.Rows, []string{ref.Kind.Abbrev(), ref.Number, ref.Year, record.SanctionDate})
	}
	return table
}
