package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ProductRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, o *domain.Order) (uint, error)
	UpdateTotal(ctx context.Context, tx *sql.Tx, id uint, total decimal.Decimal) error
}

type OrderLineRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, line domain.OrderLine) (uint, error)
}

type LineInput struct {
	ProductID uint
	Quantity  int
}

type CheckoutService struct {
	db          TransactionManager
	productRepo ProductRepository
	orderRepo   OrderRepository
	lineRepo    OrderLineRepository
	logger      *zap.Logger
	txTimeout   time.Duration
}

func NewCheckoutService(
	db TransactionManager,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	lineRepo OrderLineRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		db:          db,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		lineRepo:    lineRepo,
		logger:      logger,
		txTimeout:   txTimeout,
	}
}

// CreateOrder persists the order shell and all lines in one transaction.
// Prices are re-read from the catalog under a row lock and snapshotted onto
// each line; the client-supplied total is never trusted because there is no
// client-supplied total. Any failure rolls back the whole order.
func (s *CheckoutService) CreateOrder(ctx context.Context, order domain.Order, lines []LineInput) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.NewValidationError("order must contain at least one line", apperrors.ValidationDetail{
			Field:   "lines",
			Message: "lines must not be empty",
		})
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin checkout transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	order.Status = domain.OrderStatusAwaitingPayment
	order.Total = decimal.Zero
	order.TransactionID = nil
	order.CreatedAt = now
	order.UpdatedAt = now

	orderID, err := s.orderRepo.Insert(txCtx, tx, &order)
	if err != nil {
		s.logger.Error("failed to insert order shell", zap.Error(err))
		return nil, err
	}
	order.ID = orderID

	total := decimal.Zero
	orderLines := make([]domain.OrderLine, 0, len(lines))

	for _, input := range lines {
		product, err := s.productRepo.FindByIDForUpdate(txCtx, tx, input.ProductID)
		if err != nil {
			return nil, err
		}

		if !product.Available {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("product %q is not available", product.Name),
				apperrors.ValidationDetail{
					Field:   "lines",
					Message: fmt.Sprintf("product %d is not available for ordering", product.ID),
				},
			)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(subtotal)

		line := domain.OrderLine{
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		}

		lineID, err := s.lineRepo.Insert(txCtx, tx, line)
		if err != nil {
			s.logger.Error("failed to insert order line",
				zap.Uint("orderId", orderID), zap.Uint("productId", product.ID), zap.Error(err))
			return nil, err
		}
		line.ID = lineID
		orderLines = append(orderLines, line)
	}

	if err := s.orderRepo.UpdateTotal(txCtx, tx, orderID, total); err != nil {
		s.logger.Error("failed to update order total", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit checkout transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	order.Total = total
	order.Lines = orderLines

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.Int("lineCount", len(orderLines)),
		zap.String("total", total.StringFixed(2)))

	return &order, nil
}
