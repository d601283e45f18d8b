package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Item is a single slot in the machine.
type Item struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

// InStock reports whether the item can be sold. Stock at or below zero is never purchasable.
func (i Item) InStock() bool {
	return i.Stock > 0
}

// StockStatus is the text shown next to the item on the menu.
func (i Item) StockStatus() string {
	if !i.InStock() {
		return "OUT OF STOCK"
	}
	return "Stock: " + strconv.Itoa(i.Stock)
}

// Group lists the items of one category in declaration order.
type Group struct {
	Category string
	Items    []Item
}
