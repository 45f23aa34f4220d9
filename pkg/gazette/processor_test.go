package gazette

import (
	"reflect"
	"testing"
)

// sampleGazette is a condensed edition exercising every extraction path:
// an enacted law heading, an alteration clause, a received bill with a
// designation phrase, a plenary-approved requirement, a cross-referenced
// requirement that must stay out of the tables, committee proceedings with
// an amendment and a substitute, and the non-received bookkeeping list.
const sampleGazette = `DIÁRIO DO LEGISLATIVO

LEI Nº 10.500, DE 10 DE MARÇO DE 2024

Altera a Lei nº 9.000/2010, que dispõe sobre o transporte escolar.

RECEBIMENTO DE PROPOSIÇÃO

Projeto de Lei nº 123/2024

Declara de utilidade pública a entidade beneficente.

É recebido pela presidência, submetido a votação e aprovado o Requerimento nº 456/2023, da comissão.

Ofício nº 30/2024, do secretário de Estado, prestando informações relativas ao Requerimento nº 789/2022.

TRAMITAÇÃO DE PROPOSIÇÕES

Conclusão
A comissão conclui pela aprovação do Projeto de Lei nº 123/2024 com as alterações seguintes.

EMENDA Nº 1

Dê-se ao art. 1º a seguinte redação.

SUBSTITUTIVO Nº 1

Substitua-se o projeto pelo seguinte.

PROPOSIÇÕES NÃO RECEBIDAS

Nº 15/2024, do deputado A; nº 16/2024, do deputado B.`

func TestProcessFullDocument(t *testing.T) {
	result := NewProcessor(DefaultOptions()).Process(sampleGazette)

	requirements := result.Tables[TableRequirements]
	expectedRequirements := [][]string{
		{"RQC", "456", "2023", "", "", "Aprovado"},
		{"RQN", "16", "2024", "", "", "NÃO RECEBIDO"},
	}
	if !reflect.DeepEqual(requirements.Rows, expectedRequirements) {
		t.Errorf("Expected requirement rows %v, got %v", expectedRequirements, requirements.Rows)
	}

	propositions := result.Tables[TablePropositions]
	expectedPropositions := [][]string{
		{"PL", "123", "2024", "Utilidade Pública"},
		{"PL", "15", "2024", ""},
	}
	if !reflect.DeepEqual(propositions.Rows, expectedPropositions) {
		t.Errorf("Expected proposition rows %v, got %v", expectedPropositions, propositions.Rows)
	}

	norms := result.Tables[TableNorms]
	expectedNorms := [][]string{
		{"LEI", "10500", "2024", ""},
		{"LEI", "9000", "2010", "Altera a Lei nº 9.000/2010"},
	}
	if !reflect.DeepEqual(norms.Rows, expectedNorms) {
		t.Errorf("Expected norm rows %v, got %v", expectedNorms, norms.Rows)
	}

	opinions := result.Tables[TableOpinions]
	expectedOpinions := [][]string{
		{"PL", "123", "2024", "SUB/EMENDA"},
	}
	if !reflect.DeepEqual(opinions.Rows, expectedOpinions) {
		t.Errorf("Expected opinion rows %v, got %v", expectedOpinions, opinions.Rows)
	}

	if result.Ignored != 2 {
		t.Errorf("Expected 2 suppressed requirement keys, got %d", result.Ignored)
	}
}

func TestProcessCrossReferencedRequirementSuppressed(t *testing.T) {
	text := "Ofício nº 5/2024, prestando informações relativas ao Requerimento nº 789/2022.\n\n" +
		"É recebido pela presidência o Requerimento nº 789/2022."

	result := NewProcessor(DefaultOptions()).Process(text)
	if rows := result.Tables[TableRequirements].Rows; len(rows) != 0 {
		t.Errorf("Expected the cross-referenced requirement to stay out, got %v", rows)
	}
}

func TestProcessApprovedRequirementNotDuplicated(t *testing.T) {
	text := "É recebido pela presidência, submetido a votação e aprovado o Requerimento nº 456/2023.\n\n" +
		"Sobre a mesa, o Requerimento nº 456/2023 aguarda publicação."

	result := NewProcessor(DefaultOptions()).Process(text)
	rows := result.Tables[TableRequirements].Rows
	if len(rows) != 1 {
		t.Fatalf("Expected a single requirement row, got %v", rows)
	}
	if rows[0][5] != "Aprovado" {
		t.Errorf("Expected the authoritative approval to win, got %q", rows[0][5])
	}
}

func TestProcessNormMentionCreatesNoRow(t *testing.T) {
	text := "Nos termos da Lei nº 8.000/2005, a mesa despacha o expediente."

	result := NewProcessor(DefaultOptions()).Process(text)
	if rows := result.Tables[TableNorms].Rows; len(rows) != 0 {
		t.Errorf("Expected a plain norm mention to create no row, got %v", rows)
	}
}

func TestProcessAdministrativeActs(t *testing.T) {
	text := "MATÉRIA ADMINISTRATIVA\n\nPORTARIA Nº 7, DE 2 DE MAIO DE 2024\n\nDesigna servidores para a comissão."

	result := NewProcessor(DefaultOptions()).Process(text)
	rows := result.Tables[TableAdministrative].Rows
	expected := [][]string{{"PRT", "7", "2024", "02/05/2024"}}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Expected administrative rows %v, got %v", expected, rows)
	}
}

func TestProcessEmptyDocument(t *testing.T) {
	result := NewProcessor(DefaultOptions()).Process("")

	for _, name := range []string{TableNorms, TablePropositions, TableRequirements, TableOpinions, TableAdministrative} {
		if rows := result.Tables[name].Rows; len(rows) != 0 {
			t.Errorf("Expected empty %q table, got %v", name, rows)
		}
	}
	if result.Ignored != 0 {
		t.Errorf("Expected no ignored keys, got %d", result.Ignored)
	}
}

func TestProcessSegmentsMatchesJoinedText(t *testing.T) {
	segments := []PageSegment{
		{Page: 1, Column: 1, Text: "É recebido pela presidência, submetido a votação e aprovado o Requerimento nº 456/2023."},
		{Page: 1, Column: 2, Text: "PROPOSIÇÕES NÃO RECEBIDAS\n\nnº 16/2024."},
	}

	processor := NewProcessor(DefaultOptions())
	fromSegments := processor.ProcessSegments(segments)
	fromJoined := processor.Process(segments[0].Text + "\n\n" + segments[1].Text)

	if !reflect.DeepEqual(fromSegments.Tables, fromJoined.Tables) {
		t.Error("Expected segment processing to equal processing the joined text")
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	processor := NewProcessor(DefaultOptions())
	first := processor.Process(sampleGazette)
	second := processor.Process(sampleGazette)

	if !reflect.DeepEqual(first.Tables, second.Tables) {
		t.Error("Expected identical tables on reprocessing the same document")
	}
	if first.Ignored != second.Ignored {
		t.Errorf("Expected identical ignore counts, got %d and %d", first.Ignored, second.Ignored)
	}
}
