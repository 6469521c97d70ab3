// Package inventory contains the core domain logic for fridge inventory
// management. This follows Domain-Driven Design principles with rich
// domain models.
package inventory

import (
	"time"

	"github.com/google/uuid"
)

// FridgeKind distinguishes refrigerator from freezer compartments
type FridgeKind string

const (
	FridgeKindRefrigerator FridgeKind = "refrigerator"
	FridgeKindFreezer      FridgeKind = "freezer"
)

// IsValid reports whether the kind is one of the closed set
func (k FridgeKind) IsValid() bool {
	return k == FridgeKindRefrigerator || k == FridgeKindFreezer
}

// Fridge represents one storage compartment owned by a user.
// A user may own several fridges; every ingredient belongs to exactly one.
type Fridge struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	kind      FridgeKind
	createdAt time.Time
}

// NewFridge creates a new Fridge with validation
func NewFridge(userID uuid.UUID, name string, kind FridgeKind) (*Fridge, error) {
	if name == "" {
		return nil, ErrFridgeNameRequired
	}
	if !kind.IsValid() {
		return nil, ErrInvalidFridgeKind
	}

	return &Fridge{
		id:        uuid.New(),
		userID:    userID,
		name:      name,
		kind:      kind,
		createdAt: time.Now(),
	}, nil
}

// ReconstructFridge rebuilds a Fridge from persisted state
func ReconstructFridge(id, userID uuid.UUID, name string, kind FridgeKind, createdAt time.Time) *Fridge {
	return &Fridge{id: id, userID: userID, name: name, kind: kind, createdAt: createdAt}
}

func (f *Fridge) ID() uuid.UUID        { return f.id }
func (f *Fridge) UserID() uuid.UUID    { return f.userID }
func (f *Fridge) Name() string         { return f.name }
func (f *Fridge) Kind() FridgeKind     { return f.kind }
func (f *Fridge) CreatedAt() time.Time { return f.createdAt }

// Rename changes the display name
func (f *Fridge) Rename(name string) error {
	if name == "" {
		return ErrFridgeNameRequired
	}
	f.name = name
	return nil
}

// Ingredient represents a perishable item stored in a fridge
type Ingredient struct {
	id           uuid.UUID
	fridgeID     uuid.UUID
	name         string
	category     Category
	quantity     float64
	unit         Unit
	purchaseDate time.Time
	expiryDate   time.Time
	barcode      string
	memo         string
	createdAt    time.Time
}

// NewIngredient creates a new Ingredient with validation
func NewIngredient(
	fridgeID uuid.UUID,
	name string,
	category Category,
	quantity float64,
	unit Unit,
	purchaseDate time.Time,
	expiryDate time.Time,
) (*Ingredient, error) {
	if name == "" {
		return nil, ErrIngredientNameRequired
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}

	return &Ingredient{
		id:           uuid.New(),
		fridgeID:     fridgeID,
		name:         name,
		category:     category,
		quantity:     quantity,
		unit:         unit,
		purchaseDate: purchaseDate,
		expiryDate:   expiryDate,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructIngredient rebuilds an Ingredient from persisted state
func ReconstructIngredient(
	id, fridgeID uuid.UUID,
	name string,
	category Category,
	quantity float64,
	unit Unit,
	purchaseDate, expiryDate time.Time,
	barcode, memo string,
	createdAt time.Time,
) *Ingredient {
	return &Ingredient{
		id:           id,
		fridgeID:     fridgeID,
		name:         name,
		category:     category,
		quantity:     quantity,
		unit:         unit,
		purchaseDate: purchaseDate,
		expiryDate:   expiryDate,
		barcode:      barcode,
		memo:         memo,
		createdAt:    createdAt,
	}
}

func (i *Ingredient) ID() uuid.UUID           { return i.id }
func (i *Ingredient) FridgeID() uuid.UUID     { return i.fridgeID }
func (i *Ingredient) Name() string            { return i.name }
func (i *Ingredient) Category() Category      { return i.category }
func (i *Ingredient) Quantity() float64       { return i.quantity }
func (i *Ingredient) Unit() Unit              { return i.unit }
func (i *Ingredient) PurchaseDate() time.Time { return i.purchaseDate }
func (i *Ingredient) ExpiryDate() time.Time   { return i.expiryDate }
func (i *Ingredient) Barcode() string         { return i.barcode }
func (i *Ingredient) Memo() string            { return i.memo }
func (i *Ingredient) CreatedAt() time.Time    { return i.createdAt }

// SetBarcode records the scanned barcode
func (i *Ingredient) SetBarcode(code string) {
	i.barcode = code
}

// SetMemo records the free-text memo
func (i *Ingredient) SetMemo(memo string) {
	i.memo = memo
}

// UpdateDetails applies a user edit
func (i *Ingredient) UpdateDetails(name string, category Category, quantity float64, unit Unit, expiryDate time.Time) error {
	if name == "" {
		return ErrIngredientNameRequired
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if !unit.IsValid() {
		return ErrInvalidUnit
	}

	i.name = name
	i.category = category
	i.quantity = quantity
	i.unit = unit
	i.expiryDate = expiryDate
	return nil
}

// DaysUntilExpiry returns the signed day offset from now to the expiry date
func (i *Ingredient) DaysUntilExpiry(now time.Time) int {
	return DaysUntil(i.expiryDate, now)
}

// IsExpired reports whether the ingredient is past its expiry date
func (i *Ingredient) IsExpired(now time.Time) bool {
	return i.DaysUntilExpiry(now) < 0
}
