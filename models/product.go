package models

import "github.com/shopspring/decimal"

func init() {
	// Prices are rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nom"`
	ImagePath string          `json:"chemin_image"`
	Price     decimal.Decimal `json:"prix" swaggertype:"number"`
}
