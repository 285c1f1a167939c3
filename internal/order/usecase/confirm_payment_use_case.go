package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
)

type ConfirmPaymentUseCase struct {
	orderRepo OrderRepository
	lineRepo  OrderLineRepository
	logger    *zap.Logger
}

func NewConfirmPaymentUseCase(orderRepo OrderRepository, lineRepo OrderLineRepository, logger *zap.Logger) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
		logger:    logger,
	}
}

// ConfirmPayment stores the gateway transaction id and forces the order to
// PAID. The status side effect is the contract: a transaction id only exists
// once payment was confirmed externally.
func (uc *ConfirmPaymentUseCase) ConfirmPayment(ctx context.Context, id uint, transactionID string) (*dto.OrderDTO, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, apperrors.NewValidationError("transactionId is required", apperrors.ValidationDetail{
			Field:   "transactionId",
			Message: "transactionId must not be empty",
		})
	}

	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(domain.OrderStatusPaid) {
		return nil, apperrors.NewInvalidTransitionError(string(order.Status), string(domain.OrderStatusPaid))
	}

	if err := uc.orderRepo.UpdateTransaction(ctx, id, transactionID); err != nil {
		return nil, err
	}

	uc.logger.Info("payment confirmed",
		zap.Uint("orderId", id),
		zap.String("transactionId", transactionID))

	order.TransactionID = &transactionID
	order.Status = domain.OrderStatusPaid

	lines, err := uc.lineRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	result := dto.FromDomain(*order)
	return &result, nil
}
