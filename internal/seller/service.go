package seller

import (
	"context"
)

type Service interface {
	GetSellers(ctx context.Context, limit, page *int32) ([]*Seller, error)
	GetByUserID(ctx context.Context, userID uint) (*Seller, error)
	RegisterSeller(ctx context.Context, input NewSellerInput) (*Seller, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSellers(ctx context.Context, limit, page *int32) ([]*Seller, error) {
	return s.repo.GetSellers(ctx, limit, page)
}

func (s *service) GetByUserID(ctx context.Context, userID uint) (*Seller, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) RegisterSeller(ctx context.Context, input NewSellerInput) (*Seller, error) {
	return s.repo.AddSeller(ctx, input)
}
