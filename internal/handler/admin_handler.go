package handler

import (
	"net/http"

	"pulse-meals/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler serves the admin overview. Routes using it sit behind the
// admin API-key middleware.
type AdminHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc service.OrderService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: svc,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Overview handles GET /api/admin/overview requests: headline stats plus
// every order, newest first.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	overview, err := h.service.AdminOverview(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
