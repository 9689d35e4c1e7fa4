package models

import "encoding/json"

// CheckoutItem is one product of a checkout request. Without a PriceID the
// product's default price applies.
type CheckoutItem struct {
	Product string
	PriceID string
}

// MarshalJSON writes a bare product id when no price is chosen and
// {"id","priceid"} otherwise, which is what the checkout endpoints accept.
func (c CheckoutItem) MarshalJSON() ([]byte, error) {
	if c.PriceID == "" {
		return json.Marshal(c.Product)
	}
	return json.Marshal(struct {
		ID      string `json:"id"`
		PriceID string `json:"priceid"`
	}{ID: c.Product, PriceID: c.PriceID})
}
