package catalog

import "vending/pkg/money"

// Category names used by the default machine.
const (
	CategoryDrinks    = "Drinks"
	CategorySnacks    = "Snacks"
	CategoryHotDrinks = "Hot Drinks"
)

// DefaultItems is the fixed stock the machine boots with.
func DefaultItems() []Item {
	return []Item{
		{Code: "A1", Name: "Water", Price: money.MustParse("1.00"), Category: CategoryDrinks, Stock: 5},
		{Code: "A2", Name: "Coke", Price: money.MustParse("4.00"), Category: CategoryDrinks, Stock: 5},
		{Code: "A3", Name: "Sprite", Price: money.MustParse("4.00"), Category: CategoryDrinks, Stock: 5},
		{Code: "B1", Name: "Chips", Price: money.MustParse("2.00"), Category: CategorySnacks, Stock: 3},
		{Code: "B2", Name: "Chocolate", Price: money.MustParse("2.50"), Category: CategorySnacks, Stock: 3},
		{Code: "B3", Name: "Biscuits", Price: money.MustParse("1.50"), Category: CategorySnacks, Stock: 3},
		{Code: "C1", Name: "Coffee", Price: money.MustParse("1.50"), Category: CategoryHotDrinks, Stock: 4},
		{Code: "C2", Name: "Tea", Price: money.MustParse("1.00"), Category: CategoryHotDrinks, Stock: 4},
		{Code: "C3", Name: "Hot Chocolate", Price: money.MustParse("2.00"), Category: CategoryHotDrinks, Stock: 4},
	}
}

// Default returns a fresh catalog loaded with DefaultItems.
func Default() *Catalog {
	c, err := New(DefaultItems()...)
	if err != nil {
		panic("catalog: invalid default items: " + err.Error())
	}
	return c
}
