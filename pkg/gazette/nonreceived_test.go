package gazette

import (
	"testing"
)

func TestFindNonReceivedCaseDistinguishesKind(t *testing.T) {
	text := "PROPOSIÇÕES NÃO RECEBIDAS\n\nNº 15/2024, do deputado A; nº 16/2024, do deputado B."

	items := FindNonReceived(text)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	if items[0].Reference.Kind != KindBill {
		t.Errorf("Expected 'Nº' item to be a bill, got %v", items[0].Reference.Kind)
	}
	if items[0].Reference.Number != "15" {
		t.Errorf("Expected number '15', got %q", items[0].Reference.Number)
	}
	if items[1].Reference.Kind != KindRequirementN {
		t.Errorf("Expected 'nº' item to be a requirement, got %v", items[1].Reference.Kind)
	}
	if items[1].Reference.Number != "16" {
		t.Errorf("Expected number '16', got %q", items[1].Reference.Number)
	}
}

func TestFindNonReceivedBoundedToSection(t *testing.T) {
	text := "Leitura do Requerimento nº 1/2024.\n\nPROPOSIÇÕES NÃO RECEBIDAS\n\nnº 2/2024.\n\nMATÉRIA ADMINISTRATIVA\n\nnº 3/2024."

	items := FindNonReceived(text)
	if len(items) != 1 {
		t.Fatalf("Expected only the in-section marker, got %d items", len(items))
	}
	if items[0].Reference.Number != "2" {
		t.Errorf("Expected number '2', got %q", items[0].Reference.Number)
	}
}

func TestFindNonReceivedWithoutSection(t *testing.T) {
	if items := FindNonReceived("Nº 15/2024 sem seção."); items != nil {
		t.Errorf("Expected nil without the section header, got %v", items)
	}
}
