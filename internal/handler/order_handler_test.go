package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse-meals/internal/cart"
	"pulse-meals/internal/identity"
	"pulse-meals/internal/model"
	"pulse-meals/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, user identity.User, c *cart.Cart, req *service.CheckoutRequest) (*service.OrderResponse, error) {
	args := m.Called(ctx, user, c, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderResponse), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*service.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) error {
	args := m.Called(ctx, id, next)
	return args.Error(0)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderService) AdminOverview(ctx context.Context) (*service.AdminOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminOverview), args.Error(1)
}

var handlerUser = identity.User{ID: "user-1", Name: "Sara"}

// asUser attaches the caller identity the same way the identity
// middleware does.
func asUser(r *http.Request, user identity.User) *http.Request {
	return r.WithContext(identity.WithUser(r.Context(), user))
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	testResponse := &service.OrderResponse{
		Order: model.Order{ID: orderID, UserID: handlerUser.ID, Status: model.StatusPending},
		Lines: []model.OrderLine{
			{ID: uuid.New(), OrderID: orderID, ItemName: "Margarita Pizza", Quantity: 1},
		},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		authenticated  bool
		mockReturn     *service.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name: "Success",
			requestBody: &service.CheckoutRequest{
				PaymentMethod: "cash",
				Address:       "12 Olaya St",
				Phone:         "+966500000001",
			},
			authenticated:  true,
			mockReturn:     testResponse,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name: "Empty cart",
			requestBody: &service.CheckoutRequest{
				PaymentMethod: "cash",
				Address:       "12 Olaya St",
				Phone:         "+966500000001",
			},
			authenticated:  true,
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Missing delivery info",
			requestBody:    &service.CheckoutRequest{PaymentMethod: "cash"},
			authenticated:  true,
			mockError:      model.ErrMissingDeliveryInfo,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "invalid json",
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name: "Unauthenticated",
			requestBody: &service.CheckoutRequest{
				PaymentMethod: "cash",
				Address:       "12 Olaya St",
				Phone:         "+966500000001",
			},
			authenticated:  false,
			expectedStatus: http.StatusUnauthorized,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			if tt.expectService {
				mockService.On("CreateOrder", mock.Anything, handlerUser, mock.AnythingOfType("*cart.Cart"), mock.AnythingOfType("*service.CheckoutRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authenticated {
				req = asUser(req, handlerUser)
			}
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "CreateOrder")
			}
		})
	}
}

func TestOrderHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	orders := []model.Order{
		{ID: uuid.New(), UserID: handlerUser.ID, Status: model.StatusDelivered},
		{ID: uuid.New(), UserID: handlerUser.ID, Status: model.StatusPending},
	}

	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

	mockService.On("ListOrders", mock.Anything, handlerUser.ID).Return(orders, nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/orders", nil), handlerUser)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.Order
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 2)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_List_Unauthenticated(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "ListOrders")
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	testResponse := &service.OrderResponse{
		Order: model.Order{ID: orderID, UserID: handlerUser.ID, Status: model.StatusPending},
	}

	tests := []struct {
		name           string
		path           string
		mockReturn     *service.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/orders/" + orderID.String(),
			mockReturn:     testResponse,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Order not found",
			path:           "/api/orders/" + uuid.New().String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid UUID format",
			path:           "/api/orders/invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

			if tt.expectService {
				mockService.On("GetOrder", mock.Anything, mock.AnythingOfType("uuid.UUID")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := asUser(httptest.NewRequest(http.MethodGet, tt.path, nil), handlerUser)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"status": "in-kitchen"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid transition",
			body:           `{"status": "pending"}`,
			mockError:      model.ErrInvalidStatusTransition,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Order not found",
			body:           `{"status": "in-kitchen"}`,
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

			mockService.On("UpdateStatus", mock.Anything, orderID, mock.AnythingOfType("model.OrderStatus")).
				Return(tt.mockError)

			req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+orderID.String()+"/status", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_Cancel(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Already dispatched",
			mockError:      model.ErrInvalidStatusTransition,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			handler := NewOrderHandler(mockService, cart.NewStore(logger), logger)

			mockService.On("CancelOrder", mock.Anything, orderID).Return(tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID.String()+"/cancel", nil)
			w := httptest.NewRecorder()

			handler.Cancel(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
