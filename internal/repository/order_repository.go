package repository

import (
	"context"
	"fmt"

	"pulse-meals/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

const orderColumns = `
	id, user_id, customer_name, order_type, meal_type, diet_preferences,
	delivery_time, start_date, total_units, currency, status, notes,
	is_active, created_at, updated_at
`

// InsertOrder inserts a new order within the provided transaction. An
// existing id is left untouched so retried checkouts do not double-create.
func (r *orderRepository) InsertOrder(ctx context.Context, tx pgx.Tx, order *model.Order) (bool, error) {
	query := `
		INSERT INTO orders (
			id, user_id, customer_name, order_type, meal_type, diet_preferences,
			delivery_time, start_date, total_units, currency, status, notes,
			is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING
	`

	prefs := make([]string, len(order.DietPreferences))
	for i, p := range order.DietPreferences {
		prefs[i] = string(p)
	}

	tag, err := tx.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.CustomerName,
		order.OrderType,
		order.MealType,
		prefs,
		order.DeliveryTime,
		order.StartDate,
		order.TotalAmount.Units,
		order.TotalAmount.Currency,
		order.Status,
		order.Notes,
		order.IsActive,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order")
		return false, fmt.Errorf("failed to insert order: %w", err)
	}

	inserted := tag.RowsAffected() > 0
	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Bool("inserted", inserted).
		Msg("order insert attempted")

	return inserted, nil
}

// InsertOrderLines inserts the order's snapshotted lines within the
// provided transaction.
func (r *orderRepository) InsertOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_lines (
			id, order_id, item_name, item_category, meal_slot, quantity,
			unit_price_units, currency, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query,
			line.ID,
			line.OrderID,
			line.ItemName,
			line.ItemCategory,
			line.MealSlot,
			line.Quantity,
			line.UnitPrice.Units,
			line.UnitPrice.Currency,
			line.CreatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(lines); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", lines[i].OrderID.String()).
				Str("item_name", lines[i].ItemName).
				Msg("failed to insert order line")
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(lines)).
		Msg("order lines inserted")

	return nil
}

// GetByID retrieves an order by its ID along with its lines.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderLine, error) {
	orderQuery := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := r.scanOrder(r.pool.QueryRow(ctx, orderQuery, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	linesQuery := `
		SELECT id, order_id, item_name, item_category, meal_slot, quantity,
		       unit_price_units, currency, created_at
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order lines")
		return nil, nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var line model.OrderLine
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ItemName,
			&line.ItemCategory,
			&line.MealSlot,
			&line.Quantity,
			&line.UnitPrice.Units,
			&line.UnitPrice.Currency,
			&line.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order line row")
			return nil, nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order line rows")
		return nil, nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return order, lines, nil
}

// ListByUser retrieves a user's orders, newest first.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

// ListAll retrieves every order, newest first.
func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus sets the order's status and active flag. The update is a
// compare-and-set on the current status: when another writer moved the
// order first, no row matches and updated is false.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, status model.OrderStatus, active bool) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3, is_active = $4, updated_at = now()
		WHERE id = $1 AND status = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, from, status, active)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Stats aggregates order count and revenue across all orders.
func (r *orderRepository) Stats(ctx context.Context) (*model.AdminStats, error) {
	query := `
		SELECT count(*), coalesce(sum(total_units), 0)
		FROM orders
	`

	var stats model.AdminStats
	err := r.pool.QueryRow(ctx, query).Scan(&stats.TotalOrders, &stats.TotalRevenue.Units)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order stats")
		return nil, fmt.Errorf("failed to query order stats: %w", err)
	}
	stats.TotalRevenue.Currency = model.DefaultCurrency

	return &stats, nil
}

// scanOrder scans one order row in orderColumns order.
func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var order model.Order
	var prefs []string
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.CustomerName,
		&order.OrderType,
		&order.MealType,
		&prefs,
		&order.DeliveryTime,
		&order.StartDate,
		&order.TotalAmount.Units,
		&order.TotalAmount.Currency,
		&order.Status,
		&order.Notes,
		&order.IsActive,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.DietPreferences = make([]model.DietPreference, len(prefs))
	for i, p := range prefs {
		order.DietPreferences[i] = model.DietPreference(p)
	}

	return &order, nil
}
