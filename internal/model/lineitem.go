package model

// PlanID identifies one of the fixed subscription plans.
type PlanID string

const (
	PlanWeightLoss PlanID = "weight-loss"
	PlanBalanced   PlanID = "balanced"
	PlanMuscleGain PlanID = "muscle-gain"
)

// Duration is the subscription billing cadence.
type Duration string

const (
	DurationWeekly  Duration = "weekly"
	DurationMonthly Duration = "monthly"
)

// Addon identifies an optional subscription extra with a fixed price.
type Addon string

const (
	AddonSnacks      Addon = "snacks"
	AddonDetox       Addon = "detox"
	AddonSupplements Addon = "supplements"
)

// CategorySubscription marks a line item produced by the subscription
// configurator; at most one is expected per cart.
const CategorySubscription = "subscription"

// MealPlan is the fixed dish assignment per meal slot for a plan.
// It is derived from the plan, never user-editable.
type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// SubscriptionDetails is the structured payload carried by a
// subscription-category line item.
type SubscriptionDetails struct {
	PlanID      PlanID   `json:"planId"`
	PlanName    string   `json:"planName"`
	Duration    Duration `json:"duration"`
	MealsPerDay int      `json:"mealsPerDay"`
	DaysPerWeek int      `json:"daysPerWeek"`
	Addons      []Addon  `json:"addons,omitempty"`
	MealPlan    MealPlan `json:"mealPlan"`
}

// LineItem is one purchasable entry in a cart: an ad-hoc menu item or a
// configured subscription plan.
type LineItem struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	UnitPrice Amount               `json:"unitPrice"`
	Category  string               `json:"category"`
	Quantity  int                  `json:"quantity"`
	Details   *SubscriptionDetails `json:"details,omitempty"`
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() Amount {
	return li.UnitPrice.Mul(li.Quantity)
}

// IsSubscription reports whether the item carries a subscription plan.
func (li LineItem) IsSubscription() bool {
	return li.Category == CategorySubscription
}

// Validate checks the fields required before the item may enter a cart.
func (li LineItem) Validate() error {
	if li.ID == "" {
		return ErrInvalidLineItem
	}
	if li.Name == "" {
		return ErrInvalidLineItem
	}
	if li.UnitPrice.IsNegative() {
		return ErrInvalidLineItem
	}
	return nil
}
