package user

import (
	"context"
	"errors"
	"testing"

	"floramart-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password, role string) (User, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, userID uint, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func newTestService(repo Repository) Service {
	return NewService(repo, auth.NewTokenManager("test-secret"))
}

func TestService_Register_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, "ana@example.com", mock.AnythingOfType("string"), "USER").
		Return(User{ID: 1, Email: "ana@example.com", Role: RoleUser}, nil)

	svc := newTestService(repo)
	token, u, err := svc.Register(context.Background(), "ana@example.com", "s3cret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), u.ID)

	// The stored password must be a bcrypt hash, never the plaintext.
	storedHash := repo.Calls[0].Arguments.String(2)
	assert.NotEqual(t, "s3cret", storedHash)
	assert.True(t, CheckPasswordHash("s3cret", storedHash))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, "ana@example.com", mock.Anything, "USER").
		Return(User{}, errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	svc := newTestService(repo)
	_, _, err := svc.Register(context.Background(), "ana@example.com", "s3cret")

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_Login_Success(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)

	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(User{ID: 1, Email: "ana@example.com", Password: hashed, Role: RoleUser}, nil)

	svc := newTestService(repo)
	token, u, err := svc.Login(context.Background(), "ana@example.com", "s3cret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@example.com", u.Email)

	claims, err := auth.NewTokenManager("test-secret").Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "USER", claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)

	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "ana@example.com").
		Return(User{ID: 1, Password: hashed}, nil)

	svc := newTestService(repo)
	_, _, err = svc.Login(context.Background(), "ana@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(User{}, errors.New("sql: no rows in result set"))

	svc := newTestService(repo)
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// A missing account and a bad password look identical to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_PromoteToSeller(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UpdateRole", mock.Anything, uint(7), "SELLER").Return(nil)

	svc := newTestService(repo)
	err := svc.PromoteToSeller(context.Background(), 7)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
