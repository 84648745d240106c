package service

import (
	"fmt"
	"strings"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
)

// Receipts are laid out against a fixed 40-column line.
const receiptWidth = 40

var (
	receiptBorder    = strings.Repeat("=", receiptWidth)
	receiptSeparator = strings.Repeat("-", receiptWidth)
)

// RenderReceipts converts an order plus store settings into printable
// receipt texts. Company orders produce one receipt per item, addressed to
// that item's employee; everything else produces a single consolidated
// receipt. Rendering is pure and deterministic: the same inputs always
// yield byte-identical output.
func RenderReceipts(order *entity.Order, settings *entity.Settings) []entity.Receipt {
	if order.IsCompanyOrder && len(order.Items) > 0 {
		receipts := make([]entity.Receipt, 0, len(order.Items))
		for i := range order.Items {
			receipts = append(receipts, renderEmployeeReceipt(order, settings, &order.Items[i], i+1))
		}
		return receipts
	}
	return []entity.Receipt{renderConsolidatedReceipt(order, settings)}
}

// renderConsolidatedReceipt builds the single receipt covering the whole
// order: every item, the shared collections, payment and totals.
func renderConsolidatedReceipt(order *entity.Order, settings *entity.Settings) entity.Receipt {
	lines := receiptHeader(order, settings)

	if order.OrderType == enum.OrderTypeEntrega && order.DeliveryAddr != nil && *order.DeliveryAddr != "" {
		lines = append(lines, "Endereco: "+*order.DeliveryAddr)
	}

	lines = append(lines, receiptSeparator)

	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, "", fmt.Sprintf("Marmita %d (%s):", i+1, item.Size))
		if item.EmployeeName != nil && *item.EmployeeName != "" {
			lines = append(lines, "  Para: "+*item.EmployeeName)
		}
		if proteins := item.ProteinList(); len(proteins) > 0 {
			lines = append(lines, "  Mistura: "+strings.Join(proteins, " + "))
		}
		if len(item.Accompaniments) > 0 {
			lines = append(lines, "  Acomp.: "+strings.Join(item.Accompaniments, ", "))
		}
	}

	lines = appendCollection(lines, "Saladas", order.Salads)
	lines = appendCollection(lines, "Bebidas", order.Beverages)
	lines = appendCollection(lines, "Cafes", order.Coffees)
	lines = appendCollection(lines, "Salgados", order.Snacks)
	lines = appendCollection(lines, "Sobremesas", order.Desserts)
	lines = appendCollection(lines, "Outros", order.Others)

	if order.Observations != nil && *order.Observations != "" {
		lines = append(lines, "Obs: "+*order.Observations)
	}

	lines = append(lines,
		receiptSeparator,
		"TOTAL: "+money(order.TotalPrice),
		"Pagamento: "+order.PaymentMethod.String(),
	)

	if order.PaymentMethod == enum.PaymentCash && order.AmountPaid > 0 {
		lines = append(lines,
			"Recebido: "+money(order.AmountPaid),
			"TROCO: "+money(order.ChangeAmount),
		)
	}

	lines = append(lines, receiptSeparator)
	lines = append(lines, receiptFooter(order)...)

	return entity.Receipt{
		OrderNumber: order.OrderNumber,
		Text:        strings.Join(lines, "\n"),
	}
}

// renderEmployeeReceipt builds one receipt for a single marmita of a
// company order. Shared collections, payment and totals belong to the
// order as a whole and are not repeated here.
func renderEmployeeReceipt(order *entity.Order, settings *entity.Settings, item *entity.OrderItem, position int) entity.Receipt {
	label := employeeLabel(item, position)

	lines := receiptHeaderBanner(settings)
	lines = append(lines,
		fmt.Sprintf("Pedido: #%d", order.OrderNumber),
		"Empresa: "+order.CustomerName,
		receiptSeparator,
		"PARA: "+label,
		"Tamanho: "+item.Size.String(),
	)

	if proteins := item.ProteinList(); len(proteins) > 0 {
		lines = append(lines, "Mistura: "+strings.Join(proteins, " + "))
	}

	if len(item.Accompaniments) > 0 {
		lines = append(lines, "Acompanhamentos:")
		for _, a := range item.Accompaniments {
			lines = append(lines, "  - "+a)
		}
	}

	lines = append(lines,
		receiptBorder,
		"   Obrigado pela preferencia!",
		receiptBorder,
	)

	return entity.Receipt{
		OrderNumber: order.OrderNumber,
		For:         label,
		Text:        strings.Join(lines, "\n"),
	}
}

// receiptHeaderBanner is the bordered store name/address block.
func receiptHeaderBanner(settings *entity.Settings) []string {
	return []string{
		receiptBorder,
		centerLine(settings.StoreName),
		centerLine(settings.StoreAddress),
		receiptBorder,
	}
}

func receiptHeader(order *entity.Order, settings *entity.Settings) []string {
	lines := receiptHeaderBanner(settings)
	return append(lines,
		fmt.Sprintf("Pedido: #%d", order.OrderNumber),
		"Cliente: "+order.CustomerName,
		"Tipo: "+order.OrderType.String(),
	)
}

func receiptFooter(order *entity.Order) []string {
	return []string{
		"Atendente: " + order.AttendantName,
		"Data: " + order.CreatedAt.UTC().Format("2006-01-02T15:04:05"),
		receiptBorder,
		"   Obrigado pela preferencia!",
		receiptBorder,
	}
}

func appendCollection(lines []string, label string, items entity.StringList) []string {
	if len(items) == 0 {
		return lines
	}
	return append(lines, label+": "+strings.Join(items, ", "))
}

// employeeLabel returns the item's employee name, or a synthesized
// positional label when the name is absent.
func employeeLabel(item *entity.OrderItem, position int) string {
	if item.EmployeeName != nil && *item.EmployeeName != "" {
		return *item.EmployeeName
	}
	return fmt.Sprintf("Funcionário %d", position)
}

// money renders a cent amount as currency with exactly two decimals.
func money(cents int64) string {
	return fmt.Sprintf("R$ %.2f", float64(cents)/100)
}

// centerLine centers s within the 40-column receipt line, padding both
// sides with spaces. Lines wider than the receipt are left untouched.
func centerLine(s string) string {
	n := len([]rune(s))
	if n >= receiptWidth {
		return s
	}
	left := (receiptWidth - n) / 2
	right := receiptWidth - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
