package address

import (
	"context"
	"errors"

	"floramart-be/internal/auth"
	"floramart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Service defines the business logic for delivery addresses.
type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, addressID uuid.UUID) (*Address, error)

	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, addressID uuid.UUID) error

	SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Address, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(ctx context.Context, addressID uuid.UUID) (*Address, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}

	// A stranger's address looks like a missing one.
	if addr.UserID != userID || !addr.IsActive {
		return nil, ErrAddressNotFound
	}

	return addr, nil
}

func (s *service) Create(ctx context.Context, input CreateAddressInput) (*Address, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.Uint("user_id", userID),
	)

	addr := &Address{
		ID:        uuid.New(),
		UserID:    userID,
		Recipient: input.Recipient,
		Phone:     input.Phone,
		Address1:  input.AddressLine1,
		Address2:  input.AddressLine2,
		City:      input.City,
		Province:  input.Province,
		Postal:    input.PostalCode,
		Country:   input.Country,
		IsActive:  true,
		IsDefault: input.SetAsDefault,
	}

	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID.String()))
	return addr, nil
}

func (s *service) Update(ctx context.Context, input UpdateAddressInput) (*Address, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.Uint("user_id", userID),
	)

	oldID, err := uuid.Parse(input.AddressID)
	if err != nil {
		return nil, ErrAddressNotFound
	}

	oldAddr, err := s.repo.GetByID(ctx, oldID)
	if err != nil || oldAddr.UserID != userID {
		return nil, ErrAddressNotFound
	}

	// Replace rather than mutate: deactivate the old row, insert a new one.
	_ = s.repo.Deactivate(ctx, oldID)

	newAddr := &Address{
		ID:        uuid.New(),
		UserID:    userID,
		Recipient: input.Recipient,
		Phone:     input.Phone,
		Address1:  input.AddressLine1,
		Address2:  input.AddressLine2,
		City:      input.City,
		Province:  input.Province,
		Postal:    input.PostalCode,
		Country:   input.Country,
		IsActive:  true,
		IsDefault: input.SetAsDefault,
	}

	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Create(ctx, newAddr); err != nil {
		log.Error("failed to update address", zap.Error(err))
		return nil, err
	}

	log.Info("address updated",
		zap.String("old_id", oldID.String()),
		zap.String("new_id", newAddr.ID.String()),
	)

	return newAddr, nil
}

func (s *service) Delete(ctx context.Context, addressID uuid.UUID) error {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil || addr.UserID != userID {
		return ErrAddressNotFound
	}

	return s.repo.Deactivate(ctx, addressID)
}

func (s *service) SetDefaultAddress(ctx context.Context, addressID uuid.UUID) error {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil || addr.UserID != userID {
		return ErrAddressNotFound
	}

	if err := s.repo.ClearDefault(ctx, userID); err != nil {
		return err
	}
	return s.repo.SetDefault(ctx, userID, addressID)
}
