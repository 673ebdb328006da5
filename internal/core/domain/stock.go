package domain

import "github.com/shopspring/decimal"

// StockItem holds the quantity on hand for one inventory item.
type StockItem struct {
	ItemID         string          `json:"itemId"`
	Name           string          `json:"name"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
}
