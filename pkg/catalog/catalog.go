package catalog

import (
	"fmt"
	"strings"
)

// Catalog holds the machine's items in declaration order with a case-insensitive code index.
// It is owned by a single session and is not safe for concurrent use.
type Catalog struct {
	items []Item
	index map[string]int
}

// New builds a catalog from items in the given order.
func New(items ...Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		key := normalizeCode(item.Code)
		if _, exists := c.index[key]; exists {
			return nil, fmt.Errorf("%w: duplicate code %s", ErrInvalidItem, key)
		}
		item.Code = key
		c.index[key] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Lookup returns a copy of the item registered under code, ignoring case and surrounding spaces.
func (c *Catalog) Lookup(code string) (Item, error) {
	pos, ok := c.index[normalizeCode(code)]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(code))
	}
	return c.items[pos], nil
}

// Items returns every item in declaration order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// GroupedByCategory groups items by category. Categories keep their first-seen order
// and items keep declaration order inside a category.
func (c *Catalog) GroupedByCategory() []Group {
	var groups []Group
	positions := make(map[string]int)
	for _, item := range c.items {
		pos, seen := positions[item.Category]
		if !seen {
			pos = len(groups)
			positions[item.Category] = pos
			groups = append(groups, Group{Category: item.Category})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups
}

// DecrementStock removes exactly one unit of the item and returns its new state.
// Nothing changes when the item is out of stock.
func (c *Catalog) DecrementStock(code string) (Item, error) {
	pos, ok := c.index[normalizeCode(code)]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(code))
	}
	item := &c.items[pos]
	if !item.InStock() {
		return *item, fmt.Errorf("%w: %s", ErrOutOfStock, item.Code)
	}
	item.Stock--
	return *item, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateItem(item Item) error {
	switch {
	case normalizeCode(item.Code) == "":
		return fmt.Errorf("%w: code is required", ErrInvalidItem)
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("%w: name is required for %s", ErrInvalidItem, item.Code)
	case item.Price.IsNegative():
		return fmt.Errorf("%w: negative price for %s", ErrInvalidItem, item.Code)
	case item.Stock < 0:
		return fmt.Errorf("%w: negative stock for %s", ErrInvalidItem, item.Code)
	}
	return nil
}
