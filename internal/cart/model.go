package cart

import "time"

type CartItem struct {
	ID        uint
	UserID    uint
	FlowerID  uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddToCartParams struct {
	UserID   uint
	FlowerID uint
	Quantity int
}
