package seller

import "time"

type Seller struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	StoreName string    `json:"store_name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type NewSellerInput struct {
	UserID    uint
	StoreName string
	Phone     string
	Address   string
}
