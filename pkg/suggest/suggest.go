// Package suggest recommends a companion item after a purchase.
package suggest

import "fmt"

// Engine looks up companions by purchased item name. The table is read-only after New.
type Engine struct {
	table map[string]string
}

// New copies table so later edits by the caller do not leak in.
func New(table map[string]string) *Engine {
	copied := make(map[string]string, len(table))
	for name, companion := range table {
		copied[name] = companion
	}
	return &Engine{table: copied}
}

// Default pairs each item with the companion the machine promotes.
func Default() *Engine {
	return New(map[string]string{
		"Coffee":    "Biscuits",
		"Coke":      "Chips",
		"Chocolate": "Water",
	})
}

// Suggest returns the companion for the purchased item name, if one is configured.
func (e *Engine) Suggest(purchased string) (string, bool) {
	companion, ok := e.table[purchased]
	return companion, ok
}

// Message formats the line shown to the customer.
func Message(companion string) string {
	return fmt.Sprintf("Suggestion: You may also like **%s**!", companion)
}
