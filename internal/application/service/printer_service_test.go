package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/pkg/printer"
)

type failingPrinter struct{}

func (failingPrinter) Print(data []byte) (*printer.Job, error) {
	return nil, errors.New("connection refused")
}

func (failingPrinter) IsConnected() bool { return false }

func createTestOrder(t *testing.T, orderRepo *fakeOrderRepo, settingsRepo *fakeSettingsRepo) *entity.Order {
	t.Helper()
	svc := NewOrderService(orderRepo, settingsRepo)
	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return order
}

func TestPrintOrderFileBackend(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	settingsRepo := newFakeSettingsRepo(testSettings())
	order := createTestOrder(t, orderRepo, settingsRepo)

	svc := NewPrinterService(orderRepo, settingsRepo, t.TempDir())
	result, err := svc.PrintOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("PrintOrder: %v", err)
	}

	if !result.Printed {
		t.Error("file backend print should flag the order printed")
	}
	if len(result.Receipts) != 1 {
		t.Fatalf("expected 1 receipt outcome, got %d", len(result.Receipts))
	}
	if result.Receipts[0].FilePath == "" {
		t.Error("file backend should report the receipt file path")
	}
	if !strings.Contains(result.Receipts[0].Text, "Pedido: #1") {
		t.Errorf("receipt text missing order number:\n%s", result.Receipts[0].Text)
	}

	stored, _ := orderRepo.GetByID(context.Background(), order.ID)
	if !stored.Printed {
		t.Error("order not marked printed in storage")
	}
}

func TestPrintOrderThermalNotConfigured(t *testing.T) {
	settings := testSettings()
	settings.PrinterType = entity.PrinterTypeThermal
	settings.PrinterIP = nil

	orderRepo := newFakeOrderRepo()
	settingsRepo := newFakeSettingsRepo(settings)
	order := createTestOrder(t, orderRepo, settingsRepo)

	svc := NewPrinterService(orderRepo, settingsRepo, "")
	result, err := svc.PrintOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("PrintOrder: %v", err)
	}

	// nothing was attempted, so the printed flag stays false
	if result.Printed {
		t.Error("misconfigured printer must not flag the order printed")
	}
	stored, _ := orderRepo.GetByID(context.Background(), order.ID)
	if stored.Printed {
		t.Error("order marked printed despite configuration error")
	}

	// the receipt text is still returned so the attendant can reprint
	if len(result.Receipts) != 1 || result.Receipts[0].Text == "" {
		t.Errorf("configuration error should still return receipt texts: %+v", result.Receipts)
	}
}

func TestPrintOrderTransportFailureStillMarksPrinted(t *testing.T) {
	settings := testSettings()
	settings.PrinterType = entity.PrinterTypeThermal
	ip := "192.168.1.50"
	settings.PrinterIP = &ip

	orderRepo := newFakeOrderRepo()
	settingsRepo := newFakeSettingsRepo(settings)
	order := createTestOrder(t, orderRepo, settingsRepo)

	svc := NewPrinterService(orderRepo, settingsRepo, "")
	svc.newPrinter = func(printerType, host string, port int, dir string) (printer.Printer, error) {
		return failingPrinter{}, nil
	}

	result, err := svc.PrintOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("PrintOrder: %v", err)
	}

	// the send was attempted, so the order counts as printed
	if !result.Printed {
		t.Error("attempted send must flag the order printed even on failure")
	}
	if result.Receipts[0].Error == "" {
		t.Error("transport failure should be reported per receipt")
	}
	stored, _ := orderRepo.GetByID(context.Background(), order.ID)
	if !stored.Printed {
		t.Error("order not marked printed after attempted send")
	}
}

func TestPrintOrderCompanyPrintsEveryReceipt(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	settingsRepo := newFakeSettingsRepo(testSettings())

	input := validOrderInput()
	input.IsCompanyOrder = true
	input.Items = []OrderItemInput{
		{EmployeeName: "Carlos", Size: "G", Proteins: []string{"Frango"}},
		{EmployeeName: "Ana", Size: "M", Proteins: []string{"Carne"}},
	}
	orderSvc := NewOrderService(orderRepo, settingsRepo)
	order, err := orderSvc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	svc := NewPrinterService(orderRepo, settingsRepo, t.TempDir())
	result, err := svc.PrintOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("PrintOrder: %v", err)
	}

	if len(result.Receipts) != 2 {
		t.Fatalf("expected 2 receipt outcomes, got %d", len(result.Receipts))
	}
	if result.Receipts[0].For != "Carlos" || result.Receipts[1].For != "Ana" {
		t.Errorf("receipts addressed to %q and %q", result.Receipts[0].For, result.Receipts[1].For)
	}
	if result.Receipts[0].FilePath == result.Receipts[1].FilePath {
		t.Error("each receipt should land in its own file")
	}
}

func TestGetStatusFileBackend(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	settingsRepo := newFakeSettingsRepo(testSettings())

	svc := NewPrinterService(orderRepo, settingsRepo, "")
	status, err := svc.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}

	if status.PrinterType != entity.PrinterTypeGenericFile {
		t.Errorf("printer type = %q", status.PrinterType)
	}
	if !status.Configured || !status.Connected {
		t.Errorf("file backend should report configured and connected: %+v", status)
	}
}

func TestGetStatusThermalUnconfigured(t *testing.T) {
	settings := testSettings()
	settings.PrinterType = entity.PrinterTypeThermal

	svc := NewPrinterService(newFakeOrderRepo(), newFakeSettingsRepo(settings), "")
	status, err := svc.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Configured {
		t.Errorf("thermal backend without address should report unconfigured: %+v", status)
	}
}
