package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAwaitingPayment OrderStatus = "AWAITING_PAYMENT"
	OrderStatusPaid            OrderStatus = "PAID"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	return status, status.Valid()
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAwaitingPayment, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo encodes the order lifecycle:
// AWAITING_PAYMENT -> PAID -> SHIPPED -> DELIVERED, with CANCELLED reachable
// from any non-terminal status. Re-setting the current status is a no-op and
// always allowed.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	if !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	if s.Terminal() {
		return false
	}
	switch to {
	case OrderStatusPaid:
		return true
	case OrderStatusShipped:
		return s == OrderStatusAwaitingPayment || s == OrderStatusPaid
	case OrderStatusDelivered:
		return s == OrderStatusShipped
	case OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	DeliveryAddress *string
	PaymentMethod   *string
	TransactionID   *string
	Status          OrderStatus
	Total           decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Lines           []OrderLine
}

// OrderLine snapshots the product price at creation time. Later catalog
// price changes must never alter it.
type OrderLine struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
