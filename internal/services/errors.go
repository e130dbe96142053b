package services

import "errors"

// Shared service-level errors. Handlers map these to HTTP statuses.
var (
	// ErrValidation covers input rejected before any database round-trip.
	ErrValidation = errors.New("validation error")

	// ErrCompanyUnresolved is returned when the caller has no company profile,
	// so no tenant scope can be resolved for the operation.
	ErrCompanyUnresolved = errors.New("no company profile linked to this user")

	// ErrNotAuthorized is returned when the caller's role does not permit the
	// operation. This is the authoritative check, not a UX convenience.
	ErrNotAuthorized = errors.New("operation not permitted for this role")

	// ErrItemNotFound is returned when the referenced inventory item does not
	// exist within the caller's company.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrInvalidQuantity is returned for non-positive sale quantities.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInsufficientStock is returned when a sale requests more units than
	// the item has on hand.
	ErrInsufficientStock = errors.New("insufficient stock for item")
)
