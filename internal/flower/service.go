package flower

import (
	"context"
	"errors"
)

var (
	ErrFlowerNotFound = errors.New("flower not found")
	ErrNotSeller      = errors.New("only sellers can manage flowers")
)

type Service interface {
	GetFlower(ctx context.Context, id uint) (*Flower, error)
	GetFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error)
	CreateFlower(ctx context.Context, role string, input NewFlowerInput) (*Flower, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetFlower(ctx context.Context, id uint) (*Flower, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFlowerNotFound
	}
	return f, nil
}

func (s *service) GetFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error) {
	return s.repo.GetList(ctx, opts)
}

func (s *service) CreateFlower(ctx context.Context, role string, input NewFlowerInput) (*Flower, error) {
	if role != "SELLER" && role != "ADMIN" {
		return nil, ErrNotSeller
	}
	return s.repo.Create(ctx, input)
}
