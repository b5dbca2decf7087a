package address

import (
	"github.com/google/uuid"
)

// Address is a delivery address. Rows are immutable: an update deactivates
// the old row and inserts a new one, so orders keep pointing at the address
// they shipped to.
type Address struct {
	ID     uuid.UUID
	UserID uint

	Recipient string
	Phone     string

	Address1 string
	Address2 *string

	City     string
	Province string
	Postal   string
	Country  string

	IsDefault bool
	IsActive  bool
}

type CreateAddressInput struct {
	Recipient    string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	City         string
	Province     string
	PostalCode   string
	Country      string
	SetAsDefault bool
}

type UpdateAddressInput struct {
	AddressID    string
	Recipient    string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	City         string
	Province     string
	PostalCode   string
	Country      string
	SetAsDefault bool
}
