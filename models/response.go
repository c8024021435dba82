package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}

type CartResponse struct {
	Cart []CartItem `json:"cart"`
}

type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"id_commande"`
}

type OrderListResponse struct {
	Commandes []OrderLine `json:"commandes"`
}

type OrderStateListResponse struct {
	Etats []OrderState `json:"etats"`
}
