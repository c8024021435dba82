package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// productId and quantity arrive either as JSON numbers or numeric strings;
// the cart service does the integer validation.
type AddToCartRequest struct {
	ProductID json.Number `json:"productId" binding:"required" swaggertype:"integer"`
	Quantity  json.Number `json:"quantity" binding:"required" swaggertype:"integer"`
}

type RemoveFromCartRequest struct {
	ProductID json.Number `json:"productId" binding:"required" swaggertype:"integer"`
}

type UpdateOrderStateRequest struct {
	NewState StateRef `json:"newState" binding:"required" swaggertype:"string"`
}

// StateRef holds an order state given either by name ("expédiée") or by id (2).
type StateRef string

func (s *StateRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StateRef(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("newState must be a state name or id")
	}
	*s = StateRef(n.String())
	return nil
}
