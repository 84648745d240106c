package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
)

func testSettings() *entity.Settings {
	return &entity.Settings{
		ID:           entity.SettingsID,
		StoreName:    "Dona Guedes",
		StoreAddress: "Rua Principal, 123",
		PrinterType:  entity.PrinterTypeGenericFile,
		PrinterPort:  9100,
	}
}

func strPtr(s string) *string { return &s }

func counterOrder() *entity.Order {
	return &entity.Order{
		OrderNumber:   42,
		CustomerName:  "Maria",
		OrderType:     enum.OrderTypeBalcao,
		TotalPrice:    2500,
		AmountPaid:    5000,
		ChangeAmount:  2500,
		PaymentMethod: enum.PaymentCash,
		Status:        enum.OrderStatusPending,
		AttendantName: "Joana",
		CreatedAt:     time.Date(2026, 8, 14, 11, 30, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{
				Position:       1,
				Size:           enum.SizeM,
				Proteins:       entity.StringList{"Frango", "Carne"},
				Accompaniments: entity.StringList{"Arroz", "Feijao"},
			},
		},
		Beverages: entity.StringList{"Coca-Cola"},
	}
}

func TestRenderReceiptsConsolidated(t *testing.T) {
	receipts := RenderReceipts(counterOrder(), testSettings())
	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}

	text := receipts[0].Text
	for _, want := range []string{
		"Pedido: #42",
		"Cliente: Maria",
		"Tipo: BALCAO",
		"Marmita 1 (M):",
		"  Mistura: Frango + Carne",
		"  Acomp.: Arroz, Feijao",
		"Bebidas: Coca-Cola",
		"TOTAL: R$ 25.00",
		"Pagamento: DINHEIRO",
		"Recebido: R$ 50.00",
		"TROCO: R$ 25.00",
		"Atendente: Joana",
		"Data: 2026-08-14T11:30:00",
		"   Obrigado pela preferencia!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q\n%s", want, text)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if len([]rune(line)) > receiptWidth {
			t.Errorf("line exceeds %d columns: %q", receiptWidth, line)
		}
	}
}

func TestRenderReceiptsNonCashOmitsChange(t *testing.T) {
	order := counterOrder()
	order.PaymentMethod = enum.PaymentPix
	order.AmountPaid = 0
	order.ChangeAmount = 0

	text := RenderReceipts(order, testSettings())[0].Text
	if strings.Contains(text, "TROCO") {
		t.Errorf("non-cash receipt should not show change:\n%s", text)
	}
	if strings.Contains(text, "Recebido") {
		t.Errorf("non-cash receipt should not show amount received:\n%s", text)
	}
	if !strings.Contains(text, "Pagamento: PIX") {
		t.Errorf("receipt missing payment method:\n%s", text)
	}
}

func TestRenderReceiptsDeliveryAddress(t *testing.T) {
	order := counterOrder()
	order.OrderType = enum.OrderTypeEntrega
	order.DeliveryAddr = strPtr("Av. Brasil, 500")

	text := RenderReceipts(order, testSettings())[0].Text
	if !strings.Contains(text, "Tipo: ENTREGA") {
		t.Errorf("receipt missing delivery type:\n%s", text)
	}
	if !strings.Contains(text, "Endereco: Av. Brasil, 500") {
		t.Errorf("receipt missing delivery address:\n%s", text)
	}
}

func TestRenderReceiptsCompanySplit(t *testing.T) {
	order := &entity.Order{
		OrderNumber:    7,
		CustomerName:   "Construtora Silva",
		IsCompanyOrder: true,
		OrderType:      enum.OrderTypeEntrega,
		DeliveryAddr:   strPtr("Obra da Rua 9"),
		TotalPrice:     6000,
		PaymentMethod:  enum.PaymentCredit,
		AttendantName:  "Joana",
		CreatedAt:      time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{
				Position:       1,
				EmployeeName:   strPtr("Carlos"),
				Size:           enum.SizeG,
				Proteins:       entity.StringList{"Frango"},
				Accompaniments: entity.StringList{"Arroz"},
			},
			{
				Position: 2,
				Size:     enum.SizeP,
				Proteins: entity.StringList{"Carne"},
			},
			{
				Position:     3,
				EmployeeName: strPtr("Ana"),
				Size:         enum.SizeM,
				Proteins:     entity.StringList{"Peixe", "Frango"},
			},
		},
	}

	receipts := RenderReceipts(order, testSettings())
	if len(receipts) != 3 {
		t.Fatalf("expected one receipt per item, got %d", len(receipts))
	}

	if receipts[0].For != "Carlos" {
		t.Errorf("first receipt addressed to %q, want Carlos", receipts[0].For)
	}
	// unnamed items get a positional label
	if receipts[1].For != "Funcionário 2" {
		t.Errorf("second receipt addressed to %q, want Funcionário 2", receipts[1].For)
	}
	if receipts[2].For != "Ana" {
		t.Errorf("third receipt addressed to %q, want Ana", receipts[2].For)
	}

	first := receipts[0].Text
	for _, want := range []string{
		"Pedido: #7",
		"Empresa: Construtora Silva",
		"PARA: Carlos",
		"Tamanho: G",
		"Mistura: Frango",
		"  - Arroz",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("employee receipt missing %q\n%s", want, first)
		}
	}

	// each receipt carries only its own item
	if strings.Contains(first, "Carne") || strings.Contains(first, "Peixe") {
		t.Errorf("employee receipt leaked another item's proteins:\n%s", first)
	}
	// totals belong to the consolidated layout, not per-employee receipts
	if strings.Contains(first, "TOTAL") {
		t.Errorf("employee receipt should not show totals:\n%s", first)
	}
}

func TestRenderReceiptsLegacyProteinField(t *testing.T) {
	legacy := counterOrder()
	legacy.Items[0].Proteins = nil
	legacy.Items[0].Protein = strPtr("Frango")

	modern := counterOrder()
	modern.Items[0].Proteins = entity.StringList{"Frango"}
	modern.Items[0].Protein = nil

	got := RenderReceipts(legacy, testSettings())[0].Text
	want := RenderReceipts(modern, testSettings())[0].Text
	if got != want {
		t.Errorf("legacy protein field renders differently:\n%s\n---\n%s", got, want)
	}
}

func TestRenderReceiptsDeterministic(t *testing.T) {
	order := counterOrder()
	settings := testSettings()

	first := RenderReceipts(order, settings)
	for i := 0; i < 10; i++ {
		again := RenderReceipts(order, settings)
		if len(again) != len(first) {
			t.Fatalf("receipt count changed between renders")
		}
		for j := range first {
			if again[j].Text != first[j].Text {
				t.Fatalf("render %d receipt %d differs from first render", i, j)
			}
		}
	}
}

func TestCenterLine(t *testing.T) {
	got := centerLine("abcd")
	if len([]rune(got)) != receiptWidth {
		t.Fatalf("centered line has width %d, want %d", len([]rune(got)), receiptWidth)
	}
	if strings.TrimSpace(got) != "abcd" {
		t.Errorf("centered line content changed: %q", got)
	}

	// accented store names count runes, not bytes
	got = centerLine("Café São João")
	if len([]rune(got)) != receiptWidth {
		t.Errorf("accented line has width %d, want %d", len([]rune(got)), receiptWidth)
	}

	long := strings.Repeat("x", receiptWidth+5)
	if centerLine(long) != long {
		t.Errorf("overlong line should be returned untouched")
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0.00"},
		{5, "R$ 0.05"},
		{2500, "R$ 25.00"},
		{199999, "R$ 1999.99"},
	}
	for _, tc := range cases {
		if got := money(tc.cents); got != tc.want {
			t.Errorf("money(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
