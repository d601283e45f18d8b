package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vending/pkg/catalog"
	"vending/pkg/money"
	"vending/pkg/payment"
	"vending/pkg/sales"
	"vending/pkg/suggest"
)

// Lines printed by the machine outside of the menu.
const (
	WelcomeMessage      = "WELCOME TO THE SMART VENDING MACHINE!"
	InvalidCodeMessage  = "Invalid code! Please try again."
	OutOfStockMessage   = "Sorry, this item is out of stock!"
	ThankYouMessage     = "Thank you!"
	FarewellMessage     = "Thank you for using the vending machine!"
	codePrompt          = "\nEnter item code: "
	anotherPurchaseText = "\nDo you want to buy another item? (yes/no): "
)

// Console is the terminal the machine talks through.
type Console interface {
	ReadLine(prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
}

// ErrNoConsole is returned by New when Config.Console is nil.
var ErrNoConsole = errors.New("session console is required")

// Config lists the collaborators of a Machine. Console is required; Catalog,
// Suggestions and Ledger fall back to the defaults when nil.
type Config struct {
	Console     Console
	Catalog     *catalog.Catalog
	Suggestions *suggest.Engine
	Ledger      *sales.Ledger
	Logger      *zap.Logger
}

// Machine drives one customer through browse, select, pay, dispense, suggest and continue.
// It runs on the caller's goroutine and must not be shared.
type Machine struct {
	console     Console
	catalog     *catalog.Catalog
	payments    *payment.Collector
	suggestions *suggest.Engine
	ledger      *sales.Ledger
	logger      *zap.Logger

	state    State
	selected catalog.Item
	change   decimal.Decimal
}

// New assembles a machine in the Browsing state.
func New(cfg Config) (*Machine, error) {
	if cfg.Console == nil {
		return nil, ErrNoConsole
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Suggestions == nil {
		cfg.Suggestions = suggest.Default()
	}
	if cfg.Ledger == nil {
		cfg.Ledger = sales.NewLedger()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	logger := cfg.Logger.With(zap.String("session_id", uuid.NewString()))
	return &Machine{
		console:     cfg.Console,
		catalog:     cfg.Catalog,
		payments:    payment.NewCollector(cfg.Console, logger),
		suggestions: cfg.Suggestions,
		ledger:      cfg.Ledger,
		logger:      logger,
		state:       Browsing,
	}, nil
}

// State returns the step the machine will execute next.
func (m *Machine) State() State {
	return m.state
}

// Catalog exposes the machine's stock.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// Ledger exposes the sales recorded so far.
func (m *Machine) Ledger() *sales.Ledger {
	return m.ledger
}

// Run greets the customer and loops until they decline another purchase.
// A closed input stream ends the session with an error wrapping io.EOF.
func (m *Machine) Run(ctx context.Context) error {
	m.console.Println(WelcomeMessage)
	for m.state != Exited {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Step(ctx); err != nil {
			return err
		}
	}
	summary := m.ledger.Summary()
	m.logger.Info("session finished",
		zap.Int("items_sold", summary.Count),
		zap.String("revenue", summary.Revenue.StringFixed(2)))
	return nil
}

// Step executes the current state and moves to the next one.
func (m *Machine) Step(ctx context.Context) error {
	from := m.state
	var err error
	switch m.state {
	case Browsing:
		m.browse()
	case Selecting:
		err = m.selectItem()
	case Paying:
		err = m.pay(ctx)
	case Dispensing:
		err = m.dispense(ctx)
	case Suggesting:
		m.suggest()
	case Continuing:
		err = m.askToContinue()
	case Exited:
		return nil
	default:
		return fmt.Errorf("unknown session state %d", m.state)
	}
	if err != nil {
		return err
	}
	m.logger.Debug("session transition", zap.Stringer("from", from), zap.Stringer("to", m.state))
	return nil
}

func (m *Machine) browse() {
	m.console.Printf("%s", Menu(m.catalog.GroupedByCategory()))
	m.state = Selecting
}

func (m *Machine) selectItem() error {
	code, err := m.console.ReadLine(codePrompt)
	if err != nil {
		return fmt.Errorf("read item code: %w", err)
	}
	item, err := m.catalog.Lookup(code)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			return err
		}
		m.logger.Debug("invalid item code", zap.String("code", code))
		m.console.Println(InvalidCodeMessage)
		m.state = Browsing
		return nil
	}
	if !item.InStock() {
		m.logger.Debug("item out of stock", zap.String("code", item.Code))
		m.console.Println(OutOfStockMessage)
		m.state = Browsing
		return nil
	}
	m.selected = item
	m.console.Printf("\nYou selected: %s - %s\n", item.Name, money.Format(item.Price))
	m.state = Paying
	return nil
}

func (m *Machine) pay(ctx context.Context) error {
	change, err := m.payments.Collect(ctx, m.selected.Price)
	if err != nil {
		return err
	}
	m.change = change
	m.state = Dispensing
	return nil
}

func (m *Machine) dispense(ctx context.Context) error {
	item, err := m.catalog.DecrementStock(m.selected.Code)
	if err != nil {
		return fmt.Errorf("dispense %s: %w", m.selected.Code, err)
	}
	sale, err := m.ledger.Record(ctx, sales.Sale{
		Code:   item.Code,
		Name:   item.Name,
		Price:  item.Price,
		Paid:   item.Price.Add(m.change),
		Change: m.change,
	})
	if err != nil {
		return fmt.Errorf("record sale of %s: %w", item.Code, err)
	}
	m.logger.Info("item dispensed",
		zap.Stringer("sale_id", sale.ID),
		zap.String("code", item.Code),
		zap.Int("stock_left", item.Stock),
		zap.String("change", m.change.StringFixed(2)))

	m.selected = item
	m.console.Printf("\nDispensing %s...\n", item.Name)
	m.console.Printf("Your change: %s\n", money.Format(m.change))
	m.console.Println(ThankYouMessage)
	m.state = Suggesting
	return nil
}

func (m *Machine) suggest() {
	if companion, ok := m.suggestions.Suggest(m.selected.Name); ok {
		m.console.Println(suggest.Message(companion))
	}
	m.state = Continuing
}

func (m *Machine) askToContinue() error {
	answer, err := m.console.ReadLine(anotherPurchaseText)
	if err != nil {
		return fmt.Errorf("read continue answer: %w", err)
	}
	m.selected = catalog.Item{}
	m.change = decimal.Zero
	if !WantsAnother(answer) {
		m.console.Println(FarewellMessage)
		m.state = Exited
		return nil
	}
	m.state = Browsing
	return nil
}

// WantsAnother is true only for "yes" in any letter case.
func WantsAnother(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
