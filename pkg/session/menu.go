package session

import (
	"fmt"
	"strings"

	"vending/pkg/catalog"
	"vending/pkg/money"
)

// Menu renders the grouped catalog the way the machine's screen shows it.
func Menu(groups []catalog.Group) string {
	var b strings.Builder
	b.WriteString("\n-------------------------\n")
	b.WriteString("       VENDING MENU      \n")
	b.WriteString("--------------------------\n")
	for _, group := range groups {
		fmt.Fprintf(&b, "\n[%s]\n", group.Category)
		for _, item := range group.Items {
			b.WriteString(MenuLine(item))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// MenuLine formats one item as "CODE - Name (AED P.PP) status".
func MenuLine(item catalog.Item) string {
	return fmt.Sprintf("%s - %s (%s) %s", item.Code, item.Name, money.Format(item.Price), item.StockStatus())
}
