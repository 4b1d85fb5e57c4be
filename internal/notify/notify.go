package notify

import (
	"context"
	"time"

	"pulse-meals/internal/model"
)

// OrderCreatedEvent is the payload handed to the downstream message
// relay when an order is created. Delivery is fire-and-forget: a failed
// publish never rolls back order creation.
type OrderCreatedEvent struct {
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	OrderType   model.OrderType `json:"order_type"`
	MealType    model.MealType  `json:"meal_type"`
	TotalAmount model.Amount    `json:"total_amount"`
	Summary     string          `json:"summary"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Publisher emits order events to the notification collaborator.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	Close() error
}

// nopPublisher discards events. Used when no broker is configured.
type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderCreated(context.Context, OrderCreatedEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
