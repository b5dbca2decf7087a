package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"floramart-be/internal/address"
	"floramart-be/internal/cart"
	"floramart-be/internal/flower"
	"floramart-be/internal/logger"
	"floramart-be/internal/order"
	"floramart-be/internal/seller"
	"floramart-be/internal/user"

	"go.uber.org/zap"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AppError pairs an HTTP status with a stable machine-readable code.
type AppError struct {
	Status  int
	Code    string
	Message string
}

var (
	ErrInvalidRequest   = &AppError{Status: http.StatusBadRequest, Code: "INVALID_REQUEST", Message: "invalid request body"}
	ErrUnauthorized     = &AppError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "authentication required"}
	ErrForbidden        = &AppError{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "insufficient permissions"}
	ErrResourceNotFound = &AppError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "resource not found"}
	ErrConflict         = &AppError{Status: http.StatusConflict, Code: "CONFLICT", Message: "resource already exists"}
	ErrUnprocessable    = &AppError{Status: http.StatusUnprocessableEntity, Code: "UNPROCESSABLE", Message: "request cannot be processed"}
	ErrInternalError    = &AppError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "something went wrong"}
)

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}

// RespondDomainError maps service errors onto HTTP responses. Unrecognized
// errors become an opaque 500.
func RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *AppError

	switch {
	case errors.Is(err, user.ErrEmailExists):
		appErr = ErrConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		appErr = ErrUnauthorized
	case errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, address.ErrUnauthenticated):
		appErr = ErrUnauthorized
	case errors.Is(err, cart.ErrInvalidQuantity):
		appErr = ErrInvalidRequest
	case errors.Is(err, cart.ErrFlowerNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, flower.ErrFlowerNotFound),
		errors.Is(err, seller.ErrSellerNotFound),
		errors.Is(err, address.ErrAddressNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		appErr = ErrResourceNotFound
	case errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, order.ErrCartEmpty):
		appErr = ErrUnprocessable
	case errors.Is(err, seller.ErrAlreadySeller):
		appErr = ErrConflict
	case errors.Is(err, flower.ErrNotSeller),
		errors.Is(err, order.ErrUnauthorized):
		appErr = ErrForbidden
	default:
		logger.L().Error("unhandled domain error", zap.Error(err))
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr)
}
