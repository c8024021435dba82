package models

import "github.com/shopspring/decimal"

// CartItem is a snapshot of a product taken when it was added to the cart.
type CartItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity  int             `json:"quantity"`
}
