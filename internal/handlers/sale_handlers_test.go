package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSaleService returns canned results so the HTTP mapping can be tested in
// isolation.
type stubSaleService struct {
	sellErr  error
	sale     *models.SaleRecord
	gotActor models.Actor
	gotReq   services.SellRequest
}

var _ services.SaleService = (*stubSaleService)(nil)

func (s *stubSaleService) Sell(actor models.Actor, itemID int64, req services.SellRequest) (*models.SaleRecord, error) {
	s.gotActor = actor
	s.gotReq = req
	if s.sellErr != nil {
		return nil, s.sellErr
	}
	return s.sale, nil
}

func (s *stubSaleService) GetSales(actor models.Actor) ([]models.SaleRecord, error) {
	return nil, nil
}

func sellRouter(stub *stubSaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for AuthMiddleware: inject the identity it would have stored.
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(8))
		c.Set("userEmail", "clerk@shop.test")
		c.Set("companyID", int64(1))
		c.Set("userRole", models.RoleStaff)
		c.Next()
	})
	r.POST("/items/:id/sell", NewSaleHandler(stub).Sell)
	return r
}

func postSell(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSellSuccessReturns201(t *testing.T) {
	itemID := int64(42)
	stub := &stubSaleService{sale: &models.SaleRecord{
		ID:         1,
		CompanyID:  1,
		ItemID:     &itemID,
		ItemType:   models.ItemTypePhone,
		SoldQty:    2,
		SoldPrice:  decimal.RequireFromString("150"),
		CostAtSale: decimal.RequireFromString("100"),
		Profit:     decimal.RequireFromString("100"),
	}}
	r := sellRouter(stub)

	w := postSell(t, r, "/items/42/sell", `{"sold_qty":2,"sold_price":150}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(8), stub.gotActor.UserID)
	assert.Equal(t, int64(1), stub.gotActor.CompanyID)
	assert.Equal(t, 2, stub.gotReq.SoldQty)
	assert.Contains(t, w.Body.String(), `"cost_at_sale"`)
}

func TestSellErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"insufficient stock", services.ErrInsufficientStock, http.StatusConflict},
		{"item not found", services.ErrItemNotFound, http.StatusNotFound},
		{"invalid quantity", services.ErrInvalidQuantity, http.StatusBadRequest},
		{"validation", services.ErrValidation, http.StatusBadRequest},
		{"no company", services.ErrCompanyUnresolved, http.StatusConflict},
		{"not authorized", services.ErrNotAuthorized, http.StatusForbidden},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sellRouter(&stubSaleService{sellErr: tt.serviceErr})
			w := postSell(t, r, "/items/42/sell", `{"sold_qty":1,"sold_price":150}`)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSellRejectsMalformedRequests(t *testing.T) {
	stub := &stubSaleService{}
	r := sellRouter(stub)

	w := postSell(t, r, "/items/not-a-number/sell", `{"sold_qty":1,"sold_price":150}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postSell(t, r, "/items/42/sell", `{"sold_qty":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSellRequiresAuthenticatedContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// No identity middleware on this route.
	r.POST("/items/:id/sell", NewSaleHandler(&stubSaleService{}).Sell)

	w := postSell(t, r, "/items/42/sell", `{"sold_qty":1,"sold_price":150}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
