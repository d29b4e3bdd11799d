package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bananex-be/internal/invoice"
	"bananex-be/internal/order"
	"bananex-be/internal/user"
	"bananex-be/internal/utils"
)

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) Create(ctx context.Context, userID uint, deliveryDate time.Time, items []order.NewOrderItem) (*order.Order, error) {
	args := m.Called(ctx, userID, deliveryDate, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderService) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderService) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) GetByCode(ctx context.Context, code string, userID uint, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, code, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus, deliveryDate *time.Time) (*order.Order, error) {
	args := m.Called(ctx, id, status, deliveryDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) Cancel(ctx context.Context, code string, userID uint) (*order.Order, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) Create(ctx context.Context, orderID uint, invoiceNumber string, items []invoice.Item, total float64) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID, invoiceNumber, items, total)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceService) GetForOrder(ctx context.Context, orderID uint) (*invoice.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func userToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := user.GenerateJWT(userID, role, "test@example.com")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "127.0.0.1:9999"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	delivery := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	orders.On("Create", mock.Anything, uint(4), delivery,
		[]order.NewOrderItem{{ProductID: 1, Quantity: 3}}).
		Return(&order.Order{ID: 10, OrderCode: "ORD-XK2P9QWM4T"}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/orders", userToken(t, 4, "user"), map[string]any{
		"delivery_date": delivery,
		"products":      []map[string]any{{"product_id": 1, "quantity": 3}},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Success   bool   `json:"success"`
		OrderID   uint   `json:"order_id"`
		OrderCode string `json:"order_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, uint(10), body.OrderID)
	assert.Equal(t, "ORD-XK2P9QWM4T", body.OrderCode)
	orders.AssertExpectations(t)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	router := NewRouter(Services{Orders: new(mockOrderService), Invoices: new(mockInvoiceService)})
	rec := doJSON(t, router, http.MethodPost, "/api/orders", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderValidationError(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	orders.On("Create", mock.Anything, uint(4), mock.Anything, mock.Anything).
		Return(nil, order.ErrEmptyOrder)

	rec := doJSON(t, router, http.MethodPost, "/api/orders", userToken(t, 4, "user"), map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, order.ErrEmptyOrder.Error(), body.Message)
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	router := NewRouter(Services{Orders: new(mockOrderService), Invoices: new(mockInvoiceService)})

	rec := doJSON(t, router, http.MethodPut, "/api/admin/orders/3/status",
		userToken(t, 4, "user"), map[string]any{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateOrderStatusConflict(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	orders.On("UpdateStatus", mock.Anything, uint(3), order.StatusCompleted, (*time.Time)(nil)).
		Return(nil, &order.TransitionError{From: order.StatusCancelled, To: order.StatusCompleted})

	rec := doJSON(t, router, http.MethodPut, "/api/admin/orders/3/status",
		userToken(t, 1, utils.RoleAdmin), map[string]any{"status": "completed"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "cancelled")
	assert.Contains(t, body.Message, "completed")
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	invoices := new(mockInvoiceService)
	router := NewRouter(Services{Orders: new(mockOrderService), Invoices: invoices})

	items := []invoice.Item{{ProductID: 1, ProductName: "Cavendish", Quantity: 3}}
	invoices.On("Create", mock.Anything, uint(3), "INV-2025-001", items, 5400.0).
		Return(&invoice.Invoice{ID: 1, OrderID: 3, InvoiceNumber: "INV-2025-001", Items: items, Total: 5400}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/orders/3/invoice",
		userToken(t, 1, utils.RoleAdmin), map[string]any{
			"invoice_number": "INV-2025-001",
			"items":          items,
			"total":          5400,
		})

	require.Equal(t, http.StatusCreated, rec.Code)
	invoices.AssertExpectations(t)
}

func TestCreateInvoiceOnUnconfirmedOrder(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	invoices := new(mockInvoiceService)
	router := NewRouter(Services{Orders: new(mockOrderService), Invoices: invoices})

	invoices.On("Create", mock.Anything, uint(3), mock.Anything, mock.Anything, mock.Anything).
		Return(nil, invoice.ErrOrderNotConfirmed)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/orders/3/invoice",
		userToken(t, 1, utils.RoleAdmin), map[string]any{
			"invoice_number": "INV-2025-002",
			"items":          []invoice.Item{{ProductID: 1, Quantity: 1}},
			"total":          100,
		})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderByCodeNotFound(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	orders.On("GetByCode", mock.Anything, "ORD-MISSING123", uint(4), false).
		Return(nil, order.ErrOrderNotFound)

	rec := doJSON(t, router, http.MethodGet, "/api/orders/ORD-MISSING123", userToken(t, 4, "user"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderByCodeUninvoiced(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	orders.On("GetByCode", mock.Anything, "ORD-XK2P9QWM4T", uint(4), false).
		Return(&order.Order{ID: 10, OrderCode: "ORD-XK2P9QWM4T", UserID: 4, Status: order.StatusPending}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/orders/ORD-XK2P9QWM4T", userToken(t, 4, "user"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		InvoiceStatus string `json:"invoice_status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pending", body.InvoiceStatus)
}

func TestUnknownErrorHidesDetail(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-test-secret")

	orders := new(mockOrderService)
	router := NewRouter(Services{Orders: orders, Invoices: new(mockInvoiceService)})

	orders.On("ListByUser", mock.Anything, uint(4)).Return(nil, assert.AnError)

	rec := doJSON(t, router, http.MethodGet, "/api/orders", userToken(t, 4, "user"), nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body.Message)
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(Services{Orders: new(mockOrderService), Invoices: new(mockInvoiceService)})
	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
