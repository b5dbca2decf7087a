package cart

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrFlowerNotFound    = errors.New("flower not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
