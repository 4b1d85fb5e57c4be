package service

import (
	"context"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/model"

	"github.com/google/uuid"
)

// CheckoutRequest is the delivery and payment form submitted at checkout.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes,omitempty"`

	// DietPreferences defaults to {none} when empty.
	DietPreferences []model.DietPreference `json:"dietPreferences,omitempty"`

	// MealType overrides the derived slot for ad-hoc one-time orders.
	// Ignored when the cart holds a subscription.
	MealType model.MealType `json:"mealType,omitempty"`

	// DeliveryTime defaults to "12:00".
	DeliveryTime string `json:"deliveryTime,omitempty"`

	// DraftID is an optional client-generated idempotency key. Retrying
	// a checkout with the same draft id returns the already created
	// order instead of creating a second one.
	DraftID *uuid.UUID `json:"draftId,omitempty"`
}

// OrderResponse pairs an order with its snapshotted lines.
type OrderResponse struct {
	Order model.Order       `json:"order"`
	Lines []model.OrderLine `json:"lines"`
}

// AdminOverview is the aggregate admin view: headline stats plus every
// order, newest first.
type AdminOverview struct {
	Stats  model.AdminStats `json:"stats"`
	Orders []model.Order    `json:"orders"`
}

// OrderService composes orders from cart state and manages their
// lifecycle afterwards.
type OrderService interface {
	// CreateOrder turns the cart plus delivery form into a persisted
	// order with price-snapshotted lines. On success the cart is cleared.
	CreateOrder(ctx context.Context, user identity.User, c *cart.Cart, req *CheckoutRequest) (*OrderResponse, error)

	// GetOrder retrieves an order with its lines.
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error)

	// ListOrders retrieves a user's order history, newest first.
	ListOrders(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus applies a lifecycle transition. Invalid transitions
	// are rejected and leave the stored status unchanged.
	UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) error

	// CancelOrder cancels an order and clears its active flag. Permitted
	// only before the order leaves the kitchen.
	CancelOrder(ctx context.Context, id uuid.UUID) error

	// AdminOverview aggregates stats and the full order list.
	AdminOverview(ctx context.Context) (*AdminOverview, error)
}
