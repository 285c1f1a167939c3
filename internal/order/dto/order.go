package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

type OrderLineRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   *string            `json:"customerPhone"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	PaymentMethod   *string            `json:"paymentMethod"`
	Lines           []OrderLineRequest `json:"lines"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateTransactionRequest struct {
	TransactionID string `json:"transactionId"`
}

type OrderLineDTO struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderDTO struct {
	ID              uint            `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   *string         `json:"customerPhone"`
	DeliveryAddress *string         `json:"deliveryAddress"`
	PaymentMethod   *string         `json:"paymentMethod"`
	TransactionID   *string         `json:"transactionId"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	Lines           []OrderLineDTO  `json:"lines"`
}

func FromDomain(o domain.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return OrderDTO{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		TransactionID:   o.TransactionID,
		Status:          string(o.Status),
		Total:           o.Total,
		CreatedAt:       o.CreatedAt,
		Lines:           lines,
	}
}
