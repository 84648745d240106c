package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
)

func validOrderInput() *CreateOrderInput {
	return &CreateOrderInput{
		CustomerName:  "Maria",
		OrderType:     "BALCAO",
		Items:         []OrderItemInput{{Size: "M", Proteins: []string{"Frango"}}},
		TotalPrice:    25.00,
		PaymentMethod: "DINHEIRO",
		AmountPaid:    50.00,
		AttendantCode: "ana",
		AttendantName: "Ana",
	}
}

func newOrderService() (*OrderService, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	return NewOrderService(repo, newFakeSettingsRepo(testSettings())), repo
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.OrderNumber != 1 {
		t.Errorf("first order number = %d, want 1", order.OrderNumber)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TotalPrice != 2500 {
		t.Errorf("total = %d cents, want 2500", order.TotalPrice)
	}
	if order.AmountPaid != 5000 || order.ChangeAmount != 2500 {
		t.Errorf("paid/change = %d/%d cents, want 5000/2500", order.AmountPaid, order.ChangeAmount)
	}
	if order.Printed {
		t.Errorf("new order must not be flagged printed")
	}
	if len(order.Items) != 1 || order.Items[0].Position != 1 {
		t.Fatalf("items not positioned: %+v", order.Items)
	}
}

func TestCreateOrderDefaultsPaymentToCash(t *testing.T) {
	svc, _ := newOrderService()

	input := validOrderInput()
	input.PaymentMethod = ""
	input.AmountPaid = 0

	order, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.PaymentMethod != enum.PaymentCash {
		t.Errorf("payment method = %s, want DINHEIRO", order.PaymentMethod)
	}
}

func TestCreateOrderNonCashZeroesChange(t *testing.T) {
	svc, _ := newOrderService()

	input := validOrderInput()
	input.PaymentMethod = "PIX"
	input.AmountPaid = 50.00

	order, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.AmountPaid != 0 || order.ChangeAmount != 0 {
		t.Errorf("non-cash paid/change = %d/%d, want 0/0", order.AmountPaid, order.ChangeAmount)
	}
}

func TestCreateOrderNormalizesLegacyProtein(t *testing.T) {
	svc, _ := newOrderService()

	input := validOrderInput()
	input.Items = []OrderItemInput{{Size: "P", Protein: "Carne"}}

	order, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	got := order.Items[0].ProteinList()
	if len(got) != 1 || got[0] != "Carne" {
		t.Errorf("proteins = %v, want [Carne]", got)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrderInput)
		field  string
	}{
		{
			name:   "missing customer name",
			mutate: func(in *CreateOrderInput) { in.CustomerName = "  " },
			field:  "customer_name",
		},
		{
			name:   "no items",
			mutate: func(in *CreateOrderInput) { in.Items = nil },
			field:  "items",
		},
		{
			name:   "unknown order type",
			mutate: func(in *CreateOrderInput) { in.OrderType = "DRIVE" },
			field:  "order_type",
		},
		{
			name: "delivery without address",
			mutate: func(in *CreateOrderInput) {
				in.OrderType = "ENTREGA"
				in.DeliveryAddr = ""
			},
			field: "delivery_address",
		},
		{
			name:   "negative total",
			mutate: func(in *CreateOrderInput) { in.TotalPrice = -1 },
			field:  "total_price",
		},
		{
			name:   "unknown payment method",
			mutate: func(in *CreateOrderInput) { in.PaymentMethod = "CHEQUE" },
			field:  "payment_method",
		},
		{
			name: "invalid size",
			mutate: func(in *CreateOrderInput) {
				in.Items = []OrderItemInput{{Size: "XL"}}
			},
			field: "items",
		},
		{
			name: "paid less than total",
			mutate: func(in *CreateOrderInput) {
				in.TotalPrice = 25.00
				in.AmountPaid = 10.00
			},
			field: "amount_paid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newOrderService()

			input := validOrderInput()
			tt.mutate(input)

			_, err := svc.CreateOrder(context.Background(), input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != 422 {
				t.Errorf("status = %d, want 422", appErr.Code)
			}

			found := false
			for _, fe := range appErr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no field error for %q in %+v", tt.field, appErr.Errors)
			}

			// a rejected order must not consume an order number
			if max, _ := repo.MaxOrderNumber(context.Background()); max != 0 {
				t.Errorf("rejected order consumed order number %d", max)
			}
		})
	}
}

func TestCreateOrderConcurrentNumbering(t *testing.T) {
	svc, _ := newOrderService()

	const n = 50
	numbers := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := svc.CreateOrder(context.Background(), validOrderInput())
			if err != nil {
				t.Errorf("CreateOrder: %v", err)
				return
			}
			numbers[i] = order.OrderNumber
		}(i)
	}
	wg.Wait()

	sort.Ints(numbers)
	for i, num := range numbers {
		if num != i+1 {
			t.Fatalf("order numbers not contiguous: %v", numbers)
		}
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := svc.UpdateOrderStatus(context.Background(), order.ID, enum.OrderStatusPreparing); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}

	got, err := svc.GetOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Status != enum.OrderStatusPreparing {
		t.Errorf("status = %s, want preparing", got.Status)
	}

	if err := svc.UpdateOrderStatus(context.Background(), order.ID, "burnt"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestGetReceiptsDoesNotMarkPrinted(t *testing.T) {
	svc, repo := newOrderService()

	order, err := svc.CreateOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	receipts, err := svc.GetReceipts(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetReceipts: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}

	stored, _ := repo.GetByID(context.Background(), order.ID)
	if stored.Printed {
		t.Error("fetching receipts must not flag the order printed")
	}
}
