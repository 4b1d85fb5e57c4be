package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/catalog"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHandler() (*CartHandler, *cart.Store) {
	logger := zerolog.Nop()
	store := cart.NewStore(logger)
	return NewCartHandler(store, catalog.NewStatic(), logger), store
}

func decodeCartView(t *testing.T, w *httptest.ResponseRecorder) cartView {
	t.Helper()
	var view cartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestCartHandler_Get_EmptyCart(t *testing.T) {
	handler, _ := newCartHandler()

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/cart", nil), handlerUser)
	w := httptest.NewRecorder()

	handler.Get(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCartView(t, w)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartHandler_Get_Unauthenticated(t *testing.T) {
	handler, _ := newCartHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedItems  int
	}{
		{
			name:           "Success",
			body:           `{"itemId": "4", "quantity": 2}`,
			expectedStatus: http.StatusOK,
			expectedItems:  1,
		},
		{
			name:           "Quantity defaults to one",
			body:           `{"itemId": "4"}`,
			expectedStatus: http.StatusOK,
			expectedItems:  1,
		},
		{
			name:           "Unknown menu item",
			body:           `{"itemId": "999"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid JSON",
			body:           `{"itemId":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newCartHandler()

			req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(tt.body)), handlerUser)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				view := decodeCartView(t, w)
				assert.Len(t, view.Items, tt.expectedItems)
			}
		})
	}
}

func TestCartHandler_AddItem_UsesCataloguePrice(t *testing.T) {
	handler, _ := newCartHandler()

	// The request carries no price field at all; the catalogue is the
	// only source.
	body := `{"itemId": "4", "quantity": 1, "unitPrice": {"units": 100, "currency": "SAR"}}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(body)), handlerUser)
	w := httptest.NewRecorder()

	handler.AddItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCartView(t, w)
	require.Len(t, view.Items, 1)
	assert.True(t, view.Items[0].UnitPrice.Equal(model.NewAmount(45, model.DefaultCurrency)))
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	handler, store := newCartHandler()
	seedCartItem(t, store, handlerUser.ID)

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/cart/items/4", bytes.NewBufferString(`{"quantity": 3}`)), handlerUser)
	w := httptest.NewRecorder()

	handler.UpdateQuantity(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCartView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestCartHandler_UpdateQuantity_ZeroRemoves(t *testing.T) {
	handler, store := newCartHandler()
	seedCartItem(t, store, handlerUser.ID)

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/cart/items/4", bytes.NewBufferString(`{"quantity": 0}`)), handlerUser)
	w := httptest.NewRecorder()

	handler.UpdateQuantity(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCartView(t, w).Items)
}

func TestCartHandler_UpdateQuantity_MissingID(t *testing.T) {
	handler, _ := newCartHandler()

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/cart/items/", bytes.NewBufferString(`{"quantity": 3}`)), handlerUser)
	w := httptest.NewRecorder()

	handler.UpdateQuantity(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	handler, store := newCartHandler()
	seedCartItem(t, store, handlerUser.ID)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/cart/items/4", nil), handlerUser)
	w := httptest.NewRecorder()

	handler.RemoveItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCartView(t, w).Items)
}

func TestCartHandler_Clear(t *testing.T) {
	handler, store := newCartHandler()
	seedCartItem(t, store, handlerUser.ID)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/cart", nil), handlerUser)
	w := httptest.NewRecorder()

	handler.Clear(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeCartView(t, w)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartHandler_CartsAreSessionScoped(t *testing.T) {
	handler, store := newCartHandler()
	seedCartItem(t, store, handlerUser.ID)

	other := asUser(httptest.NewRequest(http.MethodGet, "/api/cart", nil), identity.User{ID: "user-2", Name: "Omar"})
	w := httptest.NewRecorder()

	handler.Get(w, other)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCartView(t, w).Items)
}

func seedCartItem(t *testing.T, store *cart.Store, userID string) {
	t.Helper()
	require.NoError(t, store.Get(userID).AddItem(model.LineItem{
		ID:        "4",
		Name:      "Margarita Pizza",
		UnitPrice: model.NewAmount(45, model.DefaultCurrency),
		Category:  "PIZZA",
		Quantity:  1,
	}))
}
