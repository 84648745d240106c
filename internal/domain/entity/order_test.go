package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"Arroz", "Feijao", "Feijao"}

	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scanned) != 3 || scanned[2] != "Feijao" {
		t.Errorf("scanned = %v", scanned)
	}
}

func TestStringListScanNil(t *testing.T) {
	var list StringList
	if err := list.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("nil column should scan to empty list, got %v", list)
	}
}

func TestStringListValueNil(t *testing.T) {
	var list StringList
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value != "[]" {
		t.Errorf("nil list stored as %v, want []", value)
	}
}

func TestOrderMarshalJSONMoney(t *testing.T) {
	order := Order{
		OrderNumber:  3,
		CustomerName: "Maria",
		TotalPrice:   2550,
		AmountPaid:   3000,
		ChangeAmount: 450,
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	s := string(data)
	for _, want := range []string{`"total_price":25.5`, `"amount_paid":30`, `"change_amount":4.5`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s:\n%s", want, s)
		}
	}
	// cents never leak into the payload
	if strings.Contains(s, "2550") {
		t.Errorf("cent value leaked into JSON:\n%s", s)
	}
}

func TestProteinListLegacyFallback(t *testing.T) {
	legacy := "Frango"
	item := OrderItem{Protein: &legacy}
	if got := item.ProteinList(); len(got) != 1 || got[0] != "Frango" {
		t.Errorf("legacy fallback = %v", got)
	}

	item.Proteins = StringList{"Carne", " ", "Peixe"}
	got := item.ProteinList()
	if len(got) != 2 || got[0] != "Carne" || got[1] != "Peixe" {
		t.Errorf("blank filtering = %v", got)
	}
}
