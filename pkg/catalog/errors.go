package catalog

import "errors"

// ErrNotFound is returned when no item matches the requested code.
var ErrNotFound = errors.New("catalog item not found")

// ErrOutOfStock is returned when an item exists but has nothing left to dispense.
var ErrOutOfStock = errors.New("catalog item out of stock")

// ErrInvalidItem is returned by New for items that break catalog rules.
var ErrInvalidItem = errors.New("invalid catalog item")
