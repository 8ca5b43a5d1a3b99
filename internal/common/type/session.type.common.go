package types

import (
	"github.com/google/uuid"
)

// UserWithAuth is the identity carried in the bearer token of storefront
// customers and back-office staff.
type UserWithAuth struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Email string    `json:"email" validate:"required,email"`
	Role  string    `json:"role" validate:"omitempty,oneof=admin customer"`
}
