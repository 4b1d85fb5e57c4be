package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/catalog"
	"pulse-meals/internal/model"
	"pulse-meals/internal/subscription"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionHandler() (*SubscriptionHandler, *cart.Store) {
	logger := zerolog.Nop()
	store := cart.NewStore(logger)
	configurator := subscription.NewConfigurator(catalog.NewStatic(), logger)
	return NewSubscriptionHandler(configurator, store, logger), store
}

func TestSubscriptionHandler_Quote(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectedPrice  int64
	}{
		{
			name:           "Weekly base rate",
			method:         http.MethodPost,
			body:           `{"planId": "balanced", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`,
			expectedStatus: http.StatusOK,
			expectedPrice:  349,
		},
		{
			name:           "Monthly with discount",
			method:         http.MethodPost,
			body:           `{"planId": "balanced", "duration": "monthly", "mealsPerDay": 3, "daysPerWeek": 5}`,
			expectedStatus: http.StatusOK,
			expectedPrice:  1256,
		},
		{
			name:           "Unknown plan",
			method:         http.MethodPost,
			body:           `{"planId": "paleo", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			body:           `{"planId":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newSubscriptionHandler()

			req := httptest.NewRequest(tt.method, "/api/subscription/quote", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Quote(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var quote subscription.Quote
				require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
				assert.True(t, quote.Price.Equal(model.NewAmount(tt.expectedPrice, model.DefaultCurrency)),
					"want %d, got %s", tt.expectedPrice, quote.Price)
			}
		})
	}
}

func TestSubscriptionHandler_AddToCart(t *testing.T) {
	handler, _ := newSubscriptionHandler()

	body := `{"planId": "balanced", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5, "addons": ["snacks"]}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/subscription", bytes.NewBufferString(body)), handlerUser)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.AddToCart(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeCartView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, model.CategorySubscription, view.Items[0].Category)
	assert.Equal(t, "Balanced Nutrition Subscription", view.Items[0].Name)
	assert.True(t, view.Total.Equal(model.NewAmount(438, model.DefaultCurrency)))
}

func TestSubscriptionHandler_AddToCart_ReplacesExistingSubscription(t *testing.T) {
	handler, store := newSubscriptionHandler()

	send := func(body string) *httptest.ResponseRecorder {
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/subscription", bytes.NewBufferString(body)), handlerUser)
		w := httptest.NewRecorder()
		handler.AddToCart(w, req)
		return w
	}

	first := send(`{"planId": "balanced", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := send(`{"planId": "muscle-gain", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`)
	require.Equal(t, http.StatusCreated, second.Code)

	// The new configuration replaced the old one instead of stacking.
	c := store.Get(handlerUser.ID)
	assert.Equal(t, 1, c.Len())

	item, found := c.Subscription()
	require.True(t, found)
	assert.Equal(t, model.PlanMuscleGain, item.Details.PlanID)
}

func TestSubscriptionHandler_AddToCart_KeepsAdHocItems(t *testing.T) {
	handler, store := newSubscriptionHandler()
	seedCartItem(t, store, handlerUser.ID)

	body := `{"planId": "balanced", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/subscription", bytes.NewBufferString(body)), handlerUser)
	w := httptest.NewRecorder()

	handler.AddToCart(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decodeCartView(t, w).Items, 2)
}

func TestSubscriptionHandler_AddToCart_Unauthenticated(t *testing.T) {
	handler, _ := newSubscriptionHandler()

	body := `{"planId": "balanced", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscription", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.AddToCart(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscriptionHandler_AddToCart_UnknownPlan(t *testing.T) {
	handler, store := newSubscriptionHandler()

	body := `{"planId": "paleo", "duration": "weekly", "mealsPerDay": 3, "daysPerWeek": 5}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/subscription", bytes.NewBufferString(body)), handlerUser)
	w := httptest.NewRecorder()

	handler.AddToCart(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.Get(handlerUser.ID).Len())
}
