package model

import "time"

// Category is the closed set of item categories.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryClothing  Category = "Clothing"
	CategoryHygiene   Category = "Hygiene"
	CategoryHousehold Category = "Household"
	CategoryMedical   Category = "Medical"
	CategoryOther     Category = "Other"
)

// CategoryAll is the sentinel category selector meaning "no category filter".
// It is not a valid item category.
const CategoryAll = "ALL"

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryClothing, CategoryHygiene,
		CategoryHousehold, CategoryMedical, CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryClothing, CategoryHygiene,
		CategoryHousehold, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

// Unit is the closed set of measurement units.
type Unit string

const (
	UnitCount  Unit = "items"
	UnitLbs    Unit = "lbs"
	UnitKg     Unit = "kg"
	UnitBoxes  Unit = "boxes"
	UnitCans   Unit = "cans"
	UnitLiters Unit = "liters"
)

// Valid reports whether u is a member of the closed unit set.
func (u Unit) Valid() bool {
	switch u {
	case UnitCount, UnitLbs, UnitKg, UnitBoxes, UnitCans, UnitLiters:
		return true
	}
	return false
}

// Item represents one inventory record (SKU), scoped to a single location.
// Quantity is the current on-hand amount, TargetQuantity the restock level
// agreed with the location manager.
type Item struct {
	ID               string    `json:"id"`
	LocationID       string    `json:"locationId"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	Quantity         float64   `json:"quantity"`
	TargetQuantity   float64   `json:"targetQuantity"`
	Unit             Unit      `json:"unit"`
	ExpirationDate   string    `json:"expirationDate,omitempty"`
	LastDeliveryDate string    `json:"lastDeliveryDate,omitempty"`
	AddedDate        time.Time `json:"addedDate"`
	Notes            string    `json:"notes,omitempty"`
}

// ItemFields holds the caller-supplied fields of an item: everything except
// the store-assigned ID and AddedDate. Used for both create and update.
type ItemFields struct {
	LocationID       string   `json:"locationId"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Quantity         float64  `json:"quantity"`
	TargetQuantity   float64  `json:"targetQuantity"`
	Unit             Unit     `json:"unit"`
	ExpirationDate   string   `json:"expirationDate,omitempty"`
	LastDeliveryDate string   `json:"lastDeliveryDate,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}
