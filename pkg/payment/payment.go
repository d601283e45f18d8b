package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vending/pkg/money"
)

// ErrInvalidAmount is returned when the tendered text is not a non-negative number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds is returned when the tendered amount is below the price.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Messages shown to the customer for each rejected attempt.
const (
	InvalidAmountMessage     = "Invalid input. Enter numbers only."
	InsufficientFundsMessage = "Not enough money! Try again."
)

// Prompter is the console surface the collector needs.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	Println(a ...any)
}

// Tender evaluates a single payment attempt and returns the change owed.
func Tender(input string, price decimal.Decimal) (decimal.Decimal, error) {
	amount, err := money.Parse(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if amount.LessThan(price) {
		return decimal.Zero, fmt.Errorf("%w: paid %s, price %s", ErrInsufficientFunds, amount.StringFixed(2), price.StringFixed(2))
	}
	return amount.Sub(price), nil
}

// Collector keeps prompting until the customer pays at least the price.
type Collector struct {
	prompter Prompter
	logger   *zap.Logger
}

// NewCollector builds a collector on top of prompter. A nil logger is replaced with a no-op one.
func NewCollector(prompter Prompter, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{prompter: prompter, logger: logger}
}

// Collect has no retry limit. It only fails when the input source fails or ctx is done.
func (c *Collector) Collect(ctx context.Context, price decimal.Decimal) (decimal.Decimal, error) {
	prompt := fmt.Sprintf("Enter money (%s) - Price is %s: ", money.Currency, money.Format(price))
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}
		input, err := c.prompter.ReadLine(prompt)
		if err != nil {
			return decimal.Zero, fmt.Errorf("read payment: %w", err)
		}
		change, err := Tender(input, price)
		switch {
		case err == nil:
			c.logger.Debug("payment accepted",
				zap.Int("attempt", attempt),
				zap.String("price", price.StringFixed(2)),
				zap.String("change", change.StringFixed(2)))
			return change, nil
		case errors.Is(err, ErrInsufficientFunds):
			c.logger.Debug("payment rejected", zap.Int("attempt", attempt), zap.Error(err))
			c.prompter.Println(InsufficientFundsMessage)
		default:
			c.logger.Debug("payment rejected", zap.Int("attempt", attempt), zap.Error(err))
			c.prompter.Println(InvalidAmountMessage)
		}
	}
}
