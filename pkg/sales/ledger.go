package sales

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validationError marks a sale that breaks the ledger rules.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation distinguishes rejected sales from context failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

// Option customises a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger keeps the sales of the running session in memory. Nothing survives the process.
type Ledger struct {
	sales []Sale
	now   func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record validates sale, stamps it with an id and time, and appends it.
func (l *Ledger) Record(ctx context.Context, sale Sale) (Sale, error) {
	if err := ctx.Err(); err != nil {
		return Sale{}, err
	}
	if err := validateSale(sale); err != nil {
		return Sale{}, err
	}
	sale.ID = uuid.New()
	sale.SoldAt = l.now().UTC()
	l.sales = append(l.sales, sale)
	return sale, nil
}

// List returns the recorded sales in the order they happened.
func (l *Ledger) List(ctx context.Context) ([]Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	return out, nil
}

// Summary counts sales and adds up their prices.
func (l *Ledger) Summary() Summary {
	s := Summary{Revenue: decimal.Zero}
	for _, sale := range l.sales {
		s.Count++
		s.Revenue = s.Revenue.Add(sale.Price)
	}
	return s
}

func validateSale(sale Sale) error {
	if strings.TrimSpace(sale.Code) == "" {
		return newValidationError("item code is required")
	}
	if strings.TrimSpace(sale.Name) == "" {
		return newValidationError("item name is required")
	}
	if sale.Price.IsNegative() {
		return newValidationError("price must not be negative")
	}
	if sale.Paid.LessThan(sale.Price) {
		return newValidationError("paid amount is below the price")
	}
	if !sale.Change.Equal(sale.Paid.Sub(sale.Price)) {
		return newValidationError("change does not match paid minus price")
	}
	return nil
}
