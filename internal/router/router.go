package router

import (
	"net/http"
	"strings"

	"pulse-meals/internal/handler"
	"pulse-meals/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/menu", menuHandler.GetMenu)
	mux.HandleFunc("/api/plans", menuHandler.GetPlans)

	mux.HandleFunc("/api/subscription", subscriptionHandler.AddToCart)
	mux.HandleFunc("/api/subscription/quote", subscriptionHandler.Quote)

	// Cart routes: the collection and per-item paths dispatch on method.
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodDelete:
			cartHandler.Clear(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			cartHandler.AddItem(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			cartHandler.UpdateQuantity(w, r)
		case http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Order routes: create/list on the collection, detail and lifecycle
	// actions on /api/orders/{id}[/...].
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		if path == "/api/orders" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				orderHandler.List(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch {
		case strings.HasSuffix(path, "/status") && r.Method == http.MethodPatch:
			orderHandler.UpdateStatus(w, r)
		case strings.HasSuffix(path, "/cancel") && r.Method == http.MethodPost:
			orderHandler.Cancel(w, r)
		case r.Method == http.MethodGet:
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	mux.HandleFunc("/api/admin/overview", adminHandler.Overview)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Identity -> AdminAPIKeyAuth
	var h http.Handler = mux
	h = middleware.AdminAPIKeyAuth(adminAPIKey, logger)(h)
	h = middleware.Identity(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
