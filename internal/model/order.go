package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderType says how often the order recurs. It is derived from cart
// contents, never chosen directly: a subscription item's duration wins,
// otherwise the order is one-time.
type OrderType string

const (
	OrderTypeOneTime OrderType = "one-time"
	OrderTypeWeekly  OrderType = "weekly"
	OrderTypeMonthly OrderType = "monthly"
)

// MealType enumerates which meal slots an order covers.
type MealType string

const (
	MealTypeBreakfast       MealType = "breakfast"
	MealTypeLunch           MealType = "lunch"
	MealTypeDinner          MealType = "dinner"
	MealTypeBreakfastLunch  MealType = "breakfast-lunch"
	MealTypeLunchDinner     MealType = "lunch-dinner"
	MealTypeBreakfastDinner MealType = "breakfast-dinner"
	MealTypeAllMeals        MealType = "all-meals"
)

// Valid reports whether the meal type is one of the enumerated slots.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner,
		MealTypeBreakfastLunch, MealTypeLunchDinner,
		MealTypeBreakfastDinner, MealTypeAllMeals:
		return true
	}
	return false
}

// DietPreference is a customer dietary tag.
type DietPreference string

const (
	DietNone        DietPreference = "none"
	DietKeto        DietPreference = "keto"
	DietHighProtein DietPreference = "high-protein"
	DietVegan       DietPreference = "vegan"
	DietVegetarian  DietPreference = "vegetarian"
	DietGlutenFree  DietPreference = "gluten-free"
	DietDairyFree   DietPreference = "dairy-free"
)

// Valid reports whether the preference is one of the enumerated tags.
func (d DietPreference) Valid() bool {
	switch d {
	case DietNone, DietKeto, DietHighProtein, DietVegan,
		DietVegetarian, DietGlutenFree, DietDairyFree:
		return true
	}
	return false
}

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusInKitchen      OrderStatus = "in-kitchen"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// statusTransitions holds the permitted edges of the lifecycle.
// Cancellation is allowed only before the order leaves the kitchen;
// delivered and cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusInKitchen, StatusCancelled},
	StatusInKitchen:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// Order is the persisted record created from a cart at checkout. It is
// immutable after creation except for status transitions.
type Order struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	UserID          string           `json:"userId" db:"user_id"`
	CustomerName    string           `json:"customerName,omitempty" db:"customer_name"`
	OrderType       OrderType        `json:"orderType" db:"order_type"`
	MealType        MealType         `json:"mealType" db:"meal_type"`
	DietPreferences []DietPreference `json:"dietPreferences" db:"diet_preferences"`
	DeliveryTime    string           `json:"deliveryTime" db:"delivery_time"`
	StartDate       time.Time        `json:"startDate" db:"start_date"`
	TotalAmount     Amount           `json:"totalAmount"`
	Status          OrderStatus      `json:"status" db:"status"`
	Notes           string           `json:"notes,omitempty" db:"notes"`
	IsActive        bool             `json:"isActive" db:"is_active"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

// OrderLine is a price-snapshotted copy of a cart line item attached to a
// created order. The unit price is frozen at order time and must not
// follow later catalogue changes.
type OrderLine struct {
	ID           uuid.UUID `json:"-" db:"id"`
	OrderID      uuid.UUID `json:"-" db:"order_id"`
	ItemName     string    `json:"itemName" db:"item_name"`
	ItemCategory string    `json:"itemCategory" db:"item_category"`
	MealSlot     MealType  `json:"mealSlot" db:"meal_slot"`
	Quantity     int       `json:"quantity" db:"quantity"`
	UnitPrice    Amount    `json:"unitPrice"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Subtotal returns unit price times quantity for the snapshotted line.
func (l OrderLine) Subtotal() Amount {
	return l.UnitPrice.Mul(l.Quantity)
}

// AdminStats aggregates the figures shown on the admin view.
type AdminStats struct {
	TotalOrders  int64  `json:"totalOrders"`
	TotalRevenue Amount `json:"totalRevenue"`
}

// MealTypeForMealsPerDay maps a subscription's meal cadence onto the
// closed meal-slot enumeration. Four meals per day still cover all three
// named slots, so it collapses to all-meals rather than widening the
// persisted enum.
func MealTypeForMealsPerDay(mealsPerDay int) MealType {
	switch {
	case mealsPerDay <= 1:
		return MealTypeBreakfast
	case mealsPerDay == 2:
		return MealTypeBreakfastLunch
	default:
		return MealTypeAllMeals
	}
}

// OrderTypeForDuration maps a subscription duration to the order type.
func OrderTypeForDuration(d Duration) OrderType {
	if d == DurationMonthly {
		return OrderTypeMonthly
	}
	return OrderTypeWeekly
}

// SummaryText renders the plain-text order breakdown consumed by the
// downstream message relay.
func SummaryText(lines []OrderLine, total Amount) string {
	var b strings.Builder
	b.WriteString("Order Details:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s x%d = %s\n", line.ItemName, line.Quantity, line.Subtotal())
	}
	fmt.Fprintf(&b, "\nTotal: %s", total)
	return b.String()
}
