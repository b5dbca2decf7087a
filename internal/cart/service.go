package cart

import (
	"context"

	"floramart-be/internal/flower"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	GetCart(ctx context.Context, userID uint) ([]*CartItem, error)
	RemoveFromCart(ctx context.Context, userID, flowerID uint) error
	ClearCart(ctx context.Context, userID uint) error
	ClearForOrder(ctx context.Context, reference string) error
}

type service struct {
	repo       Repository
	flowerRepo flower.Repository
}

func NewService(repo Repository, flowerRepo flower.Repository) Service {
	return &service{repo: repo, flowerRepo: flowerRepo}
}

// AddToCart adds a flower to a user's cart, merging with an existing line.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	if params.UserID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	f, err := s.flowerRepo.GetByID(ctx, params.FlowerID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFlowerNotFound
	}

	existing, err := s.repo.GetCartItemByUserAndFlower(ctx, params.UserID, params.FlowerID)
	if err != nil {
		return nil, err
	}

	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}

	if f.Stock < finalQty {
		return nil, ErrInsufficientStock
	}

	if existing == nil {
		return s.repo.CreateCartItem(ctx, params)
	}
	return s.repo.UpdateCartItemQuantity(ctx, existing.ID, finalQty)
}

func (s *service) GetCart(ctx context.Context, userID uint) ([]*CartItem, error) {
	if userID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.GetCartItems(ctx, userID)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, flowerID uint) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.RemoveFromCart(ctx, userID, flowerID)
}

func (s *service) ClearCart(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.ClearCart(ctx, userID)
}

// ClearForOrder is invoked by the payment return processor after the first
// transition into PAID. It delegates to the repository, which treats an
// already-empty cart as success.
func (s *service) ClearForOrder(ctx context.Context, reference string) error {
	return s.repo.ClearForOrder(ctx, reference)
}
