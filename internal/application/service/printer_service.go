package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
	"github.com/dguedes/marmitaria-api/pkg/printer"
)

// PrinterService dispatches rendered receipts to the configured print
// backend. A print failure is reported in the result, never as a request
// failure: the order itself is already persisted.
type PrinterService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	outputDir    string

	newPrinter func(printerType, host string, port int, dir string) (printer.Printer, error)
}

// NewPrinterService creates a new printer service. outputDir is where the
// generic-file backend writes receipt files ("" = system temp dir).
func NewPrinterService(orderRepo repository.OrderRepository, settingsRepo repository.SettingsRepository, outputDir string) *PrinterService {
	return &PrinterService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		outputDir:    outputDir,
		newPrinter:   printer.New,
	}
}

// ReceiptOutcome is the per-receipt outcome of a print dispatch.
type ReceiptOutcome struct {
	For      string `json:"for"`
	Text     string `json:"text"`
	FilePath string `json:"file_path,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PrintResult aggregates the outcome of printing all receipts of an order.
type PrintResult struct {
	OrderNumber int              `json:"order_number"`
	Printed     bool             `json:"printed"`
	Message     string           `json:"message"`
	Receipts    []ReceiptOutcome `json:"receipts"`
}

// PrintOrder renders and prints every receipt of an order. The order is
// marked printed once a send was attempted on each receipt, even if the
// transport failed; a misconfigured backend attempts nothing and leaves
// the flag untouched.
func (s *PrinterService) PrintOrder(ctx context.Context, orderID uuid.UUID) (*PrintResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	receipts := RenderReceipts(order, settings)
	result := &PrintResult{
		OrderNumber: order.OrderNumber,
		Receipts:    make([]ReceiptOutcome, 0, len(receipts)),
	}

	host := ""
	if settings.PrinterIP != nil {
		host = *settings.PrinterIP
	}
	backend, err := s.newPrinter(settings.PrinterType, host, settings.PrinterPort, s.outputDir)
	if err != nil {
		// nothing was sent, so the printed flag stays as it is
		result.Message = "Impressora nao configurada: " + err.Error()
		for _, rc := range receipts {
			result.Receipts = append(result.Receipts, ReceiptOutcome{For: rc.For, Text: rc.Text, Error: err.Error()})
		}
		return result, nil
	}

	thermal := settings.PrinterType == entity.PrinterTypeThermal
	failures := 0
	for _, rc := range receipts {
		data := []byte(rc.Text)
		if thermal {
			data = escposReceipt(rc.Text)
		}

		outcome := ReceiptOutcome{For: rc.For, Text: rc.Text}
		job, err := backend.Print(data)
		if err != nil {
			failures++
			outcome.Error = err.Error()
		} else if job.FilePath != "" {
			outcome.FilePath = job.FilePath
		}
		result.Receipts = append(result.Receipts, outcome)
	}

	// every receipt had a send attempt
	result.Printed = true
	if err := s.orderRepo.MarkPrinted(ctx, order.ID); err != nil {
		log.Printf("failed to mark order %d as printed: %v", order.OrderNumber, err)
	}

	switch {
	case failures == 0 && thermal:
		result.Message = "Cupom enviado para a impressora"
	case failures == 0:
		result.Message = "Cupom salvo em arquivo. Envie para a impressora manualmente."
	case failures == len(receipts):
		result.Message = "Falha ao enviar o cupom para a impressora"
	default:
		result.Message = "Alguns cupons nao foram impressos"
	}
	return result, nil
}

// PrinterStatus describes the configured backend and its reachability.
type PrinterStatus struct {
	PrinterType string `json:"printer_type"`
	Configured  bool   `json:"configured"`
	Connected   bool   `json:"connected"`
	Address     string `json:"address,omitempty"`
}

// GetStatus reports the configured backend and, for thermal printers,
// whether the device answers on its address.
func (s *PrinterService) GetStatus(ctx context.Context) (*PrinterStatus, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	status := &PrinterStatus{PrinterType: settings.PrinterType}

	host := ""
	if settings.PrinterIP != nil {
		host = *settings.PrinterIP
	}
	backend, err := s.newPrinter(settings.PrinterType, host, settings.PrinterPort, s.outputDir)
	if err != nil {
		return status, nil
	}

	status.Configured = true
	status.Connected = backend.IsConnected()
	if settings.PrinterType == entity.PrinterTypeThermal {
		status.Address = host
	}
	return status, nil
}

// TestPrint sends a short test page to the configured backend.
func (s *PrinterService) TestPrint(ctx context.Context) (*PrintResult, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	host := ""
	if settings.PrinterIP != nil {
		host = *settings.PrinterIP
	}
	backend, err := s.newPrinter(settings.PrinterType, host, settings.PrinterPort, s.outputDir)
	if err != nil {
		return &PrintResult{Message: "Impressora nao configurada: " + err.Error()}, nil
	}

	var data []byte
	if settings.PrinterType == entity.PrinterTypeThermal {
		doc := printer.NewDocument(receiptWidth)
		doc.SetAlign(printer.AlignCenter).
			SetBold(true).
			SetFontSize(printer.FontDouble).
			Text(settings.StoreName).
			SetFontSize(printer.FontNormal).
			SetBold(false).
			Text("TESTE DE IMPRESSAO").
			Text("Impressora funcionando").
			FeedLines(3).
			Cut()
		data = doc.Bytes()
	} else {
		data = []byte(testPageText(settings))
	}

	result := &PrintResult{Receipts: []ReceiptOutcome{{For: "teste"}}}
	job, err := backend.Print(data)
	if err != nil {
		result.Message = "Falha no teste de impressao"
		result.Receipts[0].Error = err.Error()
		return result, nil
	}

	result.Printed = true
	result.Message = "Teste de impressao enviado"
	if job.FilePath != "" {
		result.Receipts[0].FilePath = job.FilePath
	}
	return result, nil
}

// escposReceipt wraps a rendered receipt text in the ESC/POS framing
// expected by thermal printers: init, body, feed and cut.
func escposReceipt(text string) []byte {
	return printer.NewDocument(receiptWidth).
		Raw(text).
		FeedLines(4).
		Cut().
		Bytes()
}

func testPageText(settings *entity.Settings) string {
	return settings.StoreName + "\nTESTE DE IMPRESSAO\nImpressora funcionando\n"
}
