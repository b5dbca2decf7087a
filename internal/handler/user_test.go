package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"floramart-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) PromoteToSeller(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "ana@example.com", "longpassword").
			Return("tok123", user.User{ID: 1, Email: "ana@example.com", Role: user.RoleUser}, nil)

		h := NewUserHandler(svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"ana@example.com","password":"longpassword"}`))
		h.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"ana@example.com","password":"short"}`))
		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "ana@example.com", "longpassword").
			Return("", user.User{}, user.ErrEmailExists)

		h := NewUserHandler(svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"ana@example.com","password":"longpassword"}`))
		h.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("SetsCookie", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "ana@example.com", "s3cret!!").
			Return("tok123", user.User{ID: 1, Email: "ana@example.com"}, nil)

		h := NewUserHandler(svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"ana@example.com","password":"s3cret!!"}`))
		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "tok123", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "ana@example.com", "wrong").
			Return("", user.User{}, user.ErrInvalidCredentials)

		h := NewUserHandler(svc)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`))
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
