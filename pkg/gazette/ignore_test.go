package gazette

import (
	"testing"
)

func TestBuildIgnoreSetFromOficio(t *testing.T) {
	text := "Ofício nº 30/2024, do secretário de Estado, prestando informações relativas ao Requerimento nº 4.567/2023, da comissão."

	ignore := BuildIgnoreSet(text)
	if ignore.Len() != 1 {
		t.Fatalf("Expected 1 ignored key, got %d", ignore.Len())
	}

	rqn := Reference{Kind: KindRequirementN, Number: "4567", Year: "2023"}
	rqc := Reference{Kind: KindRequirementC, Number: "4567", Year: "2023"}
	if !ignore.Contains(rqn) {
		t.Error("Expected RQN 4567/2023 to be suppressed")
	}
	if !ignore.Contains(rqc) {
		t.Error("Expected the suppression to be kind-agnostic")
	}
}

func TestBuildIgnoreSetPluralForm(t *testing.T) {
	text := "Ofício nº 12/2024, encaminhando respostas relativas aos Requerimentos nº 100/2024, da mesa."

	ignore := BuildIgnoreSet(text)
	if !ignore.Contains(Reference{Kind: KindRequirementN, Number: "100", Year: "2024"}) {
		t.Error("Expected plural cross-reference to be suppressed")
	}
}

func TestBuildIgnoreSetEmptyWithoutOficio(t *testing.T) {
	text := "É recebido pela presidência o Requerimento nº 10/2024."

	ignore := BuildIgnoreSet(text)
	if ignore.Len() != 0 {
		t.Errorf("Expected no ignored keys, got %d", ignore.Len())
	}
	if ignore.Contains(Reference{Kind: KindRequirementN, Number: "10", Year: "2024"}) {
		t.Error("Expected plain requirement mention not to be suppressed")
	}
}

func TestIgnoreSetAdd(t *testing.T) {
	ignore := BuildIgnoreSet("")
	ref := Reference{Kind: KindRequirementC, Number: "456", Year: "2023"}

	ignore.Add(ref)
	if !ignore.Contains(ref) {
		t.Error("Expected added reference to be suppressed")
	}
	if !ignore.Contains(Reference{Kind: KindRequirementN, Number: "456", Year: "2023"}) {
		t.Error("Expected suppression to cover both requirement kinds")
	}
}
