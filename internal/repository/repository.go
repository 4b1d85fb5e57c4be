package repository

import (
	"context"

	"pulse-meals/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// InsertOrder inserts a new order within the provided transaction.
	// Inserting an id that already exists is not an error: it reports
	// inserted=false so retried checkouts stay idempotent.
	InsertOrder(ctx context.Context, tx pgx.Tx, order *model.Order) (inserted bool, err error)

	// InsertOrderLines inserts the order's snapshotted lines within the
	// provided transaction.
	InsertOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// GetByID retrieves an order by its ID along with its lines.
	// A missing order returns (nil, nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderLine, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)

	// ListAll retrieves every order, newest first. Admin view only.
	ListAll(ctx context.Context) ([]model.Order, error)

	// UpdateStatus sets the order's status and active flag, but only if
	// the stored status still equals from. It reports whether a row was
	// updated, so a concurrent transition loses instead of clobbering.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, status model.OrderStatus, active bool) (updated bool, err error)

	// Stats aggregates order count and revenue across all orders.
	Stats(ctx context.Context) (*model.AdminStats, error)
}
