package inventory

import "errors"

// Domain errors for inventory operations

var (
	// Entity validation errors
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrInvalidCategory        = errors.New("category is not one of the known set")
	ErrNegativeQuantity       = errors.New("quantity cannot be negative")
	ErrInvalidUnit            = errors.New("unit is not one of the known set")
	ErrFridgeNameRequired     = errors.New("fridge name is required")
	ErrInvalidFridgeKind      = errors.New("fridge kind must be refrigerator or freezer")

	// Lookup errors
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrFridgeNotFound     = errors.New("fridge not found")

	// Permission errors
	ErrNotFridgeOwner = errors.New("only the fridge owner can perform this action")
)
