package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Available   bool
	CreatedAt   time.Time
}
