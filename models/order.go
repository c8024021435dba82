package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64           `json:"id_commande"`
	UserID    int64           `json:"id_utilisateur"`
	StateID   int64           `json:"id_etat"`
	CreatedAt time.Time       `json:"date_commande"`
	Items     []OrderLineItem `json:"items,omitempty"`
}

type OrderLineItem struct {
	OrderID   int64 `json:"id_commande"`
	ProductID int64 `json:"id_produit"`
	Quantity  int   `json:"quantite"`
}

type OrderState struct {
	ID   int64  `json:"id"`
	Name string `json:"nom"`
}

// OrderLine is one row of the order listing: a line item joined with its
// product and the order's current state.
type OrderLine struct {
	OrderID     int64           `json:"id_commande"`
	ProductID   int64           `json:"-"`
	ProductName string          `json:"nom"`
	Price       decimal.Decimal `json:"prix" swaggertype:"number"`
	Quantity    int             `json:"quantite"`
	State       string          `json:"etat"`
}
