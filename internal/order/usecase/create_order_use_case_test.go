package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
	"github.com/geovannedomonte/vaiart/internal/order/service"
)

type mockCheckoutService struct {
	CreateOrderFunc func(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error)
}

func (m *mockCheckoutService) CreateOrder(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error) {
	return m.CreateOrderFunc(ctx, order, lines)
}

func TestCreateOrder_EmptyLines(t *testing.T) {
	checkout := &mockCheckoutService{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error) {
			t.Fatal("checkout must not be called for an empty order")
			return nil, nil
		},
	}
	uc := NewCreateOrderUseCase(checkout, zap.NewNop())

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCreateOrder_MapsRequestToCheckout(t *testing.T) {
	var gotOrder domain.Order
	var gotLines []service.LineInput

	checkout := &mockCheckoutService{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error) {
			gotOrder = order
			gotLines = lines
			return &domain.Order{
				ID:            7,
				CustomerName:  order.CustomerName,
				CustomerEmail: order.CustomerEmail,
				Status:        domain.OrderStatusAwaitingPayment,
				Total:         decimal.RequireFromString("59.80"),
				Lines: []domain.OrderLine{
					{ID: 1, OrderID: 7, ProductID: 3, Quantity: 2, UnitPrice: decimal.RequireFromString("29.90"), Subtotal: decimal.RequireFromString("59.80")},
				},
			}, nil
		},
	}
	uc := NewCreateOrderUseCase(checkout, zap.NewNop())

	result, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
		Lines: []dto.OrderLineRequest{
			{ProductID: 3, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotOrder.CustomerName != "Maria" || gotOrder.CustomerEmail != "maria@example.com" {
		t.Errorf("customer data not forwarded: %+v", gotOrder)
	}
	if len(gotLines) != 1 || gotLines[0].ProductID != 3 || gotLines[0].Quantity != 2 {
		t.Errorf("lines not forwarded: %+v", gotLines)
	}

	if result.ID != 7 {
		t.Errorf("expected order id 7, got %d", result.ID)
	}
	if result.Status != string(domain.OrderStatusAwaitingPayment) {
		t.Errorf("expected AWAITING_PAYMENT, got %s", result.Status)
	}
	if !result.Total.Equal(decimal.RequireFromString("59.80")) {
		t.Errorf("expected total 59.80, got %s", result.Total)
	}
}

func TestCreateOrder_PropagatesUnavailableProduct(t *testing.T) {
	checkout := &mockCheckoutService{
		CreateOrderFunc: func(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error) {
			return nil, apperrors.NewValidationError(`product "Sticker" is not available`)
		},
	}
	uc := NewCreateOrderUseCase(checkout, zap.NewNop())

	_, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
		Lines: []dto.OrderLineRequest{
			{ProductID: 3, Quantity: 1},
		},
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
