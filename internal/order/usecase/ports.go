package usecase

import (
	"context"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/order/service"
)

type CheckoutService interface {
	CreateOrder(ctx context.Context, order domain.Order, lines []service.LineInput) (*domain.Order, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
	UpdateTransaction(ctx context.Context, id uint, transactionID string) error
}

type OrderLineRepository interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderLine, error)
}
