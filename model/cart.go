package model

// CartEntry is one line of a session cart, stored as JSON in redis.
// Price is snapshotted when the item is added so the cart survives
// later catalog edits unchanged.
type CartEntry struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type AddCartItemInput struct {
	MenuItemID uint `json:"menuItemId" validate:"required"`
}

type AdjustQuantityInput struct {
	Delta int `json:"delta" validate:"required"`
}

type CartResponse struct {
	Entries       []CartEntry `json:"entries"`
	TotalItems    int         `json:"totalItems"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	ServiceCharge float64     `json:"serviceCharge"`
	Total         float64     `json:"total"`
}
