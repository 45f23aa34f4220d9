package gazette

import (
	"strings"
	"testing"
)

func TestTramitacaoSection(t *testing.T) {
	text := "ATAS DAS REUNIÕES\n\nTexto da ata.\n\nTRAMITAÇÃO DE PROPOSIÇÕES\n\nConclusão da comissão.\n\nMATÉRIA ADMINISTRATIVA\n\nPortarias."

	section, found := TramitacaoSection(text)
	if !found {
		t.Fatal("Expected proceedings section to be found")
	}

	body := text[section.Start:section.End]
	if !strings.Contains(body, "Conclusão da comissão.") {
		t.Errorf("Expected section to contain the proceedings body, got %q", body)
	}
	if strings.Contains(body, "MATÉRIA ADMINISTRATIVA") {
		t.Errorf("Expected section to end before the next top-level header, got %q", body)
	}
	if strings.Contains(body, "Texto da ata.") {
		t.Errorf("Expected section to start after its header, got %q", body)
	}
}

func TestTramitacaoSectionRunsToEndOfText(t *testing.T) {
	text := "TRAMITAÇÃO DE PROPOSIÇÕES\n\nConclusão final."

	section, found := TramitacaoSection(text)
	if !found {
		t.Fatal("Expected section to be found")
	}
	if section.End != len(text) {
		t.Errorf("Expected section to run to end of text, got end %d of %d", section.End, len(text))
	}
}

func TestSectionAbsent(t *testing.T) {
	if _, found := TramitacaoSection("Nada a tramitar hoje."); found {
		t.Error("Expected no proceedings section in plain text")
	}
	if _, found := NaoRecebidasSection("Nada a tramitar hoje."); found {
		t.Error("Expected no non-received section in plain text")
	}
}

func TestPruneVotingBlocks(t *testing.T) {
	text := "TRAMITAÇÃO DE PROPOSIÇÕES\n\n" +
		"Votação do Requerimento nº 3/2024\n" +
		"Submetido a votação, é aprovado.\n" +
		"Conclusão\n" +
		"Pela aprovação do Projeto de Lei nº 7/2024."

	section, found := TramitacaoSection(text)
	if !found {
		t.Fatal("Expected section to be found")
	}

	pruned := PruneVotingBlocks(text, section)
	if len(pruned) != 1 {
		t.Fatalf("Expected 1 pruned block, got %d", len(pruned))
	}

	blockText := text[pruned[0].Start:pruned[0].End]
	if !strings.Contains(blockText, "Votação do Requerimento") {
		t.Errorf("Expected block to start at the voting opening, got %q", blockText)
	}
	if strings.Contains(blockText, "Conclusão") {
		t.Errorf("Expected block to end before the conclusion marker, got %q", blockText)
	}
}

func TestPruneVotingBlocksWithoutConclusion(t *testing.T) {
	text := "TRAMITAÇÃO DE PROPOSIÇÕES\n\nVotação do Requerimento nº 3/2024\nSem desfecho registrado."

	section, _ := TramitacaoSection(text)
	pruned := PruneVotingBlocks(text, section)
	if len(pruned) != 1 {
		t.Fatalf("Expected 1 pruned block, got %d", len(pruned))
	}
	if pruned[0].End != section.End {
		t.Errorf("Expected open block to run to section end %d, got %d", section.End, pruned[0].End)
	}
}

func TestSectionContains(t *testing.T) {
	section := Section{Start: 10, End: 20}
	if !section.Contains(10) {
		t.Error("Expected start position to be inside")
	}
	if section.Contains(20) {
		t.Error("Expected end position to be outside (half-open range)")
	}
	if section.Contains(9) {
		t.Error("Expected position before start to be outside")
	}
}
