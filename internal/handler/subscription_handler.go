package handler

import (
	"encoding/json"
	"net/http"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/subscription"

	"github.com/rs/zerolog"
)

// SubscriptionHandler prices subscription requests and adds configured
// plans to the cart.
type SubscriptionHandler struct {
	configurator *subscription.Configurator
	carts        *cart.Store
	logger       zerolog.Logger
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(configurator *subscription.Configurator, carts *cart.Store, logger zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		configurator: configurator,
		carts:        carts,
		logger:       logger.With().Str("handler", "subscription").Logger(),
	}
}

// Quote handles POST /api/subscription/quote requests, returning the
// priced breakdown without touching the cart.
func (h *SubscriptionHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req subscription.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	quote, err := h.configurator.Price(req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// AddToCart handles POST /api/subscription requests: configure the plan
// and place the resulting line item into the caller's cart.
func (h *SubscriptionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	user, ok := identity.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return
	}

	var req subscription.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.configurator.Configure(req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	c := h.carts.Get(user.ID)

	// The reference flow carries at most one subscription per cart: a
	// new configuration replaces the previous one.
	if existing, found := c.Subscription(); found {
		c.RemoveItem(existing.ID)
	}

	if err := c.AddItem(item); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, cartView{Items: c.Items(), Total: c.Total()})
}
