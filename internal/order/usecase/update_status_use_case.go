package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
)

type UpdateStatusUseCase struct {
	orderRepo OrderRepository
	lineRepo  OrderLineRepository
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(orderRepo OrderRepository, lineRepo OrderLineRepository, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
		logger:    logger,
	}
}

// UpdateStatus applies an admin status change through the state machine.
// Re-setting the current status is accepted and persisted as a no-op.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, id uint, statusValue string) (*dto.OrderDTO, error) {
	status, ok := domain.ParseOrderStatus(statusValue)
	if !ok {
		return nil, apperrors.NewValidationError("unknown order status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of AWAITING_PAYMENT, PAID, SHIPPED, DELIVERED, CANCELLED",
		})
	}

	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperrors.NewInvalidTransitionError(string(order.Status), string(status))
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))

	order.Status = status

	lines, err := uc.lineRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	result := dto.FromDomain(*order)
	return &result, nil
}
