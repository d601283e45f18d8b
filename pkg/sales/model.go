package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records one dispensed item.
type Sale struct {
	ID     uuid.UUID       `json:"id"`
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Paid   decimal.Decimal `json:"paid"`
	Change decimal.Decimal `json:"change"`
	SoldAt time.Time       `json:"sold_at"`
}

// Summary totals the sales of a session.
type Summary struct {
	Count   int
	Revenue decimal.Decimal
}
