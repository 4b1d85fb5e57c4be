package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/model"
	"pulse-meals/internal/notify"
	"pulse-meals/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultDeliveryTime = "12:00"

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	publisher notify.Publisher
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	publisher notify.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder turns the cart plus delivery form into a persisted order.
//
// Validation runs before any persistence attempt, so a rejected request
// never leaves partial state. The order and its lines are written in one
// transaction, and the cart is cleared only after the commit succeeds.
func (s *orderService) CreateOrder(ctx context.Context, user identity.User, c *cart.Cart, req *CheckoutRequest) (*OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("checkout request is nil")
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	if strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, model.ErrMissingDeliveryInfo
	}

	orderType := model.OrderTypeOneTime
	mealType := model.MealTypeBreakfast
	if req.MealType != "" {
		if !req.MealType.Valid() {
			return nil, model.ErrInvalidMealType
		}
		mealType = req.MealType
	}

	subscription, hasSubscription := c.Subscription()
	if hasSubscription && subscription.Details != nil {
		orderType = model.OrderTypeForDuration(subscription.Details.Duration)
		mealType = model.MealTypeForMealsPerDay(subscription.Details.MealsPerDay)
	}

	for _, pref := range req.DietPreferences {
		if !pref.Valid() {
			return nil, model.ErrInvalidDietPreference
		}
	}
	dietPreferences := req.DietPreferences
	if len(dietPreferences) == 0 {
		dietPreferences = []model.DietPreference{model.DietNone}
	}

	deliveryTime := req.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = defaultDeliveryTime
	}

	orderID := uuid.New()
	if req.DraftID != nil && *req.DraftID != uuid.Nil {
		orderID = *req.DraftID
	}

	now := time.Now()
	order := &model.Order{
		ID:              orderID,
		UserID:          user.ID,
		CustomerName:    user.Name,
		OrderType:       orderType,
		MealType:        mealType,
		DietPreferences: dietPreferences,
		DeliveryTime:    deliveryTime,
		StartDate:       now,
		TotalAmount:     c.Total(),
		Status:          model.StatusPending,
		Notes:           buildNotes(req, subscription, hasSubscription),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	lines := make([]model.OrderLine, len(items))
	for i, item := range items {
		lines[i] = model.OrderLine{
			ID:           uuid.New(),
			OrderID:      order.ID,
			ItemName:     item.Name,
			ItemCategory: item.Category,
			MealSlot:     mealType,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			CreatedAt:    now,
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, model.NewPersistenceError("create order", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	var inserted bool
	inserted, err = s.orderRepo.InsertOrder(ctx, tx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to insert order")
		return nil, model.NewPersistenceError("create order", err)
	}

	if !inserted {
		// A retried draft: the order already exists, return it as-is.
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		s.logger.Info().
			Str("order_id", order.ID.String()).
			Msg("draft already submitted, returning existing order")
		return s.GetOrder(ctx, order.ID)
	}

	if err = s.orderRepo.InsertOrderLines(ctx, tx, lines); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("line_count", len(lines)).
			Msg("failed to insert order lines")
		return nil, model.NewPersistenceError("create order lines", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, model.NewPersistenceError("create order", err)
	}

	// Fire-and-forget: a failed notification never affects the order.
	if pubErr := s.publisher.PublishOrderCreated(ctx, notify.OrderCreatedEvent{
		OrderID:     order.ID.String(),
		UserID:      order.UserID,
		OrderType:   order.OrderType,
		MealType:    order.MealType,
		TotalAmount: order.TotalAmount,
		Summary:     model.SummaryText(lines, order.TotalAmount),
		CreatedAt:   order.CreatedAt,
	}); pubErr != nil {
		s.logger.Warn().Err(pubErr).Str("order_id", order.ID.String()).Msg("order-created notification failed")
	}

	c.Clear()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", order.UserID).
		Str("order_type", string(order.OrderType)).
		Str("meal_type", string(order.MealType)).
		Int("line_count", len(lines)).
		Str("total", order.TotalAmount.String()).
		Msg("order created successfully")

	return &OrderResponse{Order: *order, Lines: lines}, nil
}

// GetOrder retrieves an order with its lines.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, lines, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, model.NewPersistenceError("get order", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &OrderResponse{Order: *order, Lines: lines}, nil
}

// ListOrders retrieves a user's order history, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, model.NewPersistenceError("list orders", err)
	}
	return orders, nil
}

// UpdateStatus applies a lifecycle transition. The stored status is read
// first and the transition is validated before any mutation; a rejected
// transition leaves the row untouched.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) error {
	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to load order for status update")
		return model.NewPersistenceError("update order status", err)
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("rejected status transition")
		return model.ErrInvalidStatusTransition
	}

	// Cancellation takes the order out of upcoming-delivery projections.
	active := order.IsActive && next != model.StatusCancelled

	updated, err := s.orderRepo.UpdateStatus(ctx, id, order.Status, next, active)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return model.NewPersistenceError("update order status", err)
	}
	if !updated {
		// The compare-and-set missed: another writer moved the order
		// after we read it. Orders are never deleted, so the stored
		// status changed and the transition must be re-validated.
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("status changed concurrently, transition rejected")
		return model.ErrInvalidStatusTransition
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Msg("order status updated")

	return nil
}

// CancelOrder cancels an order and clears its active flag.
func (s *orderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

// AdminOverview aggregates stats and the full order list.
func (s *orderService) AdminOverview(ctx context.Context) (*AdminOverview, error) {
	stats, err := s.orderRepo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load admin stats")
		return nil, model.NewPersistenceError("admin stats", err)
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all orders")
		return nil, model.NewPersistenceError("admin orders", err)
	}

	return &AdminOverview{Stats: *stats, Orders: orders}, nil
}

// buildNotes concatenates payment method, address, phone, free-text
// notes, and the subscription meal-plan breakdown in that fixed order.
func buildNotes(req *CheckoutRequest, subscription model.LineItem, hasSubscription bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payment: %s, Address: %s, Phone: %s", req.PaymentMethod, req.Address, req.Phone)
	if req.Notes != "" {
		fmt.Fprintf(&b, ", Notes: %s", req.Notes)
	}
	if hasSubscription && subscription.Details != nil {
		mp := subscription.Details.MealPlan
		fmt.Fprintf(&b, " | Meal Plan - Breakfast: %s, Lunch: %s, Dinner: %s", mp.Breakfast, mp.Lunch, mp.Dinner)
	}
	return b.String()
}
