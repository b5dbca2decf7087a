package flower

import "time"

type Flower struct {
	ID          uint
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
	CategoryID  uint
	SellerID    uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewFlowerInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
	CategoryID  uint
	SellerID    uint
}

type ListOptions struct {
	Filter     *string
	CategoryID *uint
	SellerID   *uint
	Limit      *int32
	Page       *int32
}
