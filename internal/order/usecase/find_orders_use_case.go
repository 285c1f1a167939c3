package usecase

import (
	"context"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
)

type FindOrdersUseCase struct {
	orderRepo OrderRepository
	lineRepo  OrderLineRepository
}

func NewFindOrdersUseCase(orderRepo OrderRepository, lineRepo OrderLineRepository) *FindOrdersUseCase {
	return &FindOrdersUseCase{
		orderRepo: orderRepo,
		lineRepo:  lineRepo,
	}
}

func (uc *FindOrdersUseCase) FindByID(ctx context.Context, id uint) (*dto.OrderDTO, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := uc.lineRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	result := dto.FromDomain(*order)
	return &result, nil
}

func (uc *FindOrdersUseCase) FindAll(ctx context.Context) ([]dto.OrderDTO, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.attachLines(ctx, orders)
}

func (uc *FindOrdersUseCase) FindByCustomerEmail(ctx context.Context, email string) ([]dto.OrderDTO, error) {
	orders, err := uc.orderRepo.FindByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.attachLines(ctx, orders)
}

func (uc *FindOrdersUseCase) attachLines(ctx context.Context, orders []domain.Order) ([]dto.OrderDTO, error) {
	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		lines, err := uc.lineRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
		result = append(result, dto.FromDomain(order))
	}
	return result, nil
}
