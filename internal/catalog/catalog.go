package catalog

import (
	"context"

	"pulse-meals/internal/model"
)

// MenuItem is one ad-hoc dish on the static menu.
type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category"`
	Price       model.Amount `json:"price"`
}

// Plan is one of the fixed subscription plans, including the weekly base
// rate and the fixed dish assignment per meal slot.
type Plan struct {
	ID          model.PlanID   `json:"id"`
	Name        string         `json:"name"`
	Calories    string         `json:"calories,omitempty"`
	Description string         `json:"description,omitempty"`
	BasePrice   model.Amount   `json:"basePrice"`
	Popular     bool           `json:"popular,omitempty"`
	MealPlan    model.MealPlan `json:"mealPlan"`
}

// AddonOption is an optional subscription extra with a fixed price.
type AddonOption struct {
	ID          model.Addon  `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       model.Amount `json:"price"`
}

// Catalog supplies the static menu and subscription plan tables. It is
// read-only reference data, not queried dynamically.
type Catalog interface {
	// MenuItems returns the full menu in display order.
	MenuItems() []MenuItem

	// MenuItem looks up a dish by id.
	MenuItem(id string) (MenuItem, bool)

	// Plans returns the subscription plan table in display order.
	Plans() []Plan

	// Plan looks up a subscription plan by id.
	Plan(id model.PlanID) (Plan, bool)

	// Addons returns the add-on table in display order.
	Addons() []AddonOption

	// Addon looks up an add-on by id.
	Addon(id model.Addon) (AddonOption, bool)
}

// Loader defines the interface for loading a catalogue from an external
// source (local JSON file or S3 object).
type Loader interface {
	// Load reads a catalogue document and returns a Catalog.
	Load(ctx context.Context, path string) (Catalog, error)
}
