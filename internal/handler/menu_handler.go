package handler

import (
	"net/http"

	"pulse-meals/internal/catalog"

	"github.com/rs/zerolog"
)

// MenuHandler serves the static menu and subscription plan tables.
type MenuHandler struct {
	catalog catalog.Catalog
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(cat catalog.Catalog, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: cat,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetMenu handles GET /api/menu requests.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.MenuItems())
}

// GetPlans handles GET /api/plans requests, returning the plan and
// add-on tables consumed by the subscription page.
func (h *MenuHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"plans":  h.catalog.Plans(),
		"addons": h.catalog.Addons(),
	})
}
