package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
	"github.com/geovannedomonte/vaiart/internal/order/service"
)

type CreateOrderUseCase struct {
	checkout CheckoutService
	logger   *zap.Logger
}

func NewCreateOrderUseCase(checkout CheckoutService, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		checkout: checkout,
		logger:   logger,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderDTO, error) {
	if len(req.Lines) == 0 {
		return nil, apperrors.NewValidationError("order must contain at least one line", apperrors.ValidationDetail{
			Field:   "lines",
			Message: "lines must not be empty",
		})
	}

	uc.logger.Info("checkout started",
		zap.String("customerEmail", req.CustomerEmail),
		zap.Int("lineCount", len(req.Lines)))

	order := domain.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	}

	lines := make([]service.LineInput, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = service.LineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	created, err := uc.checkout.CreateOrder(ctx, order, lines)
	if err != nil {
		return nil, err
	}

	result := dto.FromDomain(*created)
	return &result, nil
}
