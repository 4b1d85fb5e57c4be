package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/catalog"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/model"

	"github.com/rs/zerolog"
)

// CartHandler exposes the session cart over HTTP. Each authenticated
// user gets one private cart keyed by their opaque id.
type CartHandler struct {
	carts   *cart.Store
	catalog catalog.Catalog
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Store, cat catalog.Catalog, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartView is the response shape for every cart operation: the current
// items plus the recomputed total.
type cartView struct {
	Items []model.LineItem `json:"items"`
	Total model.Amount     `json:"total"`
}

// addItemRequest adds a menu item to the cart. The price comes from the
// catalogue, never from the client.
type addItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity,omitempty"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView{Items: c.Items(), Total: c.Total()})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, found := h.catalog.MenuItem(req.ItemID)
	if !found {
		writeError(w, http.StatusNotFound, "menu item not found", h.logger)
		return
	}

	candidate := model.LineItem{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Category:  item.Category,
		Quantity:  req.Quantity,
	}

	if err := c.AddItem(candidate); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cartView{Items: c.Items(), Total: c.Total()})
}

// UpdateQuantity handles PUT /api/cart/items/{id} requests. A quantity
// below 1 removes the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	id := itemIDFromPath(r.URL.Path)
	if id == "" {
		writeError(w, http.StatusBadRequest, "item ID is required", h.logger)
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c.UpdateQuantity(id, req.Quantity)
	writeJSON(w, http.StatusOK, cartView{Items: c.Items(), Total: c.Total()})
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	id := itemIDFromPath(r.URL.Path)
	if id == "" {
		writeError(w, http.StatusBadRequest, "item ID is required", h.logger)
		return
	}

	c.RemoveItem(id)
	writeJSON(w, http.StatusOK, cartView{Items: c.Items(), Total: c.Total()})
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c, ok := h.sessionCart(w, r)
	if !ok {
		return
	}

	c.Clear()
	writeJSON(w, http.StatusOK, cartView{Items: c.Items(), Total: c.Total()})
}

// sessionCart resolves the caller's cart, rejecting unauthenticated
// requests.
func (h *CartHandler) sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Cart, bool) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", h.logger)
		return nil, false
	}
	return h.carts.Get(user.ID), true
}

// itemIDFromPath extracts the trailing item id from
// /api/cart/items/{id}.
func itemIDFromPath(path string) string {
	const prefix = "/api/cart/items/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	return strings.Trim(strings.TrimPrefix(path, prefix), "/")
}
