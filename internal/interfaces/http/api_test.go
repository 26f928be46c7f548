package http_test

import (
	"errors"
	nethttp "net/http"
	"testing"

	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aspirinRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Aspirin 500mg",
		Barcode:       "8690123456789",
		Quantity:      150,
		MinQuantity:   20,
		Brand:         "Bayer",
		Category:      "İlaç",
		PurchasePrice: decimal.RequireFromString("12.50"),
		SalePrice:     decimal.RequireFromString("18.75"),
	}
}

// TestAPI_FullFlow walks the primary user journey: register, login, create a
// product, find it by barcode, miss on an unknown barcode, then run a price
// comparison.
func TestAPI_FullFlow(t *testing.T) {
	t.Parallel()

	search := &stubSearch{listings: []dto.PriceListing{
		{Title: "Aspirin 500mg 20 Tablet", Source: "eczanem.example", Price: "18,90 TL", ExtractedPrice: 18.9},
	}}
	app := newTestApp(t, search, nil)

	// Register and login.
	resp := doJSON(t, app, nethttp.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "u1", Password: "Secure123!", Role: entity.RoleStaff,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	registered := decodeJSON[dto.UserResponse](t, resp)
	assert.Equal(t, "u1", registered.Username)

	resp = doJSON(t, app, nethttp.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "u1", Password: "Secure123!",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	login := decodeJSON[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "bearer", login.TokenType)
	token := login.AccessToken

	// Create a product.
	resp = doJSON(t, app, nethttp.MethodPost, "/api/products", token, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Aspirin 500mg", created.Name)

	// Barcode lookup hits the same product.
	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/barcode/8690123456789", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	found := decodeJSON[dto.ProductResponse](t, resp)
	assert.Equal(t, created.ID, found.ID)

	// Unknown barcode misses.
	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/barcode/0000000000000", token, nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	miss := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", miss.Code)

	// Price comparison echoes the product and carries provider listings.
	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/"+created.ID+"/price-comparison", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	cmp := decodeJSON[dto.PriceComparisonResponse](t, resp)
	assert.Equal(t, created.ID, cmp.ProductID)
	assert.Equal(t, "Aspirin 500mg", cmp.ProductName)
	assert.Equal(t, "8690123456789", cmp.Barcode)
	require.Len(t, cmp.PriceResults, 1)
	assert.Equal(t, "eczanem.example", cmp.PriceResults[0].Source)
}

func TestAPI_RegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	in := dto.RegisterRequest{Username: "u1", Password: "Secure123!"}

	resp := doJSON(t, app, nethttp.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, nethttp.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "USERNAME_EXISTS", body.Code)
}

func TestAPI_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	resp := doJSON(t, app, nethttp.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "u1", Password: "Secure123!",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, nethttp.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "u1", Password: "wrong-pass",
	})
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Code)
}

func TestAPI_ProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	for _, path := range []string{
		"/api/products",
		"/api/products/barcode/8690123456789",
		"/api/sales",
		"/api/currency",
	} {
		resp := doJSON(t, app, nethttp.MethodGet, path, "", nil)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, "path %s", path)
		resp.Body.Close()
	}
}

func TestAPI_DuplicateBarcodeConflict(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", token, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	second := aspirinRequest()
	second.Name = "Different name, same barcode"
	resp = doJSON(t, app, nethttp.MethodPost, "/api/products", token, second)
	require.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BARCODE_EXISTS", body.Code)
}

func TestAPI_ProductValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	in := aspirinRequest()
	in.Name = ""
	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", token, in)
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestAPI_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	admin := registerAndLogin(t, app, "boss", "Secure123!", entity.RoleAdmin)

	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", admin, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)

	newQty := 75
	resp = doJSON(t, app, nethttp.MethodPut, "/api/products/"+created.ID, admin, dto.UpdateProductRequest{
		Quantity: &newQty,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	updated := decodeJSON[dto.ProductResponse](t, resp)
	assert.Equal(t, 75, updated.Quantity)
	assert.Equal(t, created.Barcode, updated.Barcode)

	resp = doJSON(t, app, nethttp.MethodDelete, "/api/products/"+created.ID, admin, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/"+created.ID, admin, nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_DeleteRequiresElevatedRole(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	staff := registerAndLogin(t, app, "clerk", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", staff, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, nethttp.MethodDelete, "/api/products/"+created.ID, staff, nil)
	require.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

func TestAPI_PriceComparisonDegradesOnProviderFailure(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &stubSearch{err: errors.New("provider down")}, nil)
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", token, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/"+created.ID+"/price-comparison", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	cmp := decodeJSON[dto.PriceComparisonResponse](t, resp)
	assert.Equal(t, "Aspirin 500mg", cmp.ProductName)
	require.NotNil(t, cmp.PriceResults)
	assert.Empty(t, cmp.PriceResults)
}

func TestAPI_PriceComparisonUnknownProduct(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodGet, "/api/products/no-such-id/price-comparison", token, nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestAPI_SaleCheckout(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	token := registerAndLogin(t, app, "cashier", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodPost, "/api/products", token, aspirinRequest())
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	created := decodeJSON[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, nethttp.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: created.ID, Quantity: 2, Price: decimal.RequireFromString("18.75")},
		},
		PaymentMethod: entity.PaymentCash,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	sale := decodeJSON[dto.SaleResponse](t, resp)
	assert.Equal(t, "cashier", sale.CreatedBy)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("37.50")))
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Aspirin 500mg", sale.Items[0].Name)

	// Stock reflects the checkout.
	resp = doJSON(t, app, nethttp.MethodGet, "/api/products/"+created.ID, token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	after := decodeJSON[dto.ProductResponse](t, resp)
	assert.Equal(t, 148, after.Quantity)

	// Overselling is rejected.
	resp = doJSON(t, app, nethttp.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: created.ID, Quantity: 9999, Price: decimal.RequireFromString("18.75")},
		},
	})
	require.Equal(t, nethttp.StatusConflict, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestAPI_CurrencyTicker(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodGet, "/api/currency", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	rates := decodeJSON[dto.CurrencyRatesResponse](t, resp)
	assert.True(t, rates.USDTRY.Equal(decimal.RequireFromString("34.25")))
	assert.True(t, rates.EURTRY.Equal(decimal.RequireFromString("37.10")))
}

func TestAPI_CurrencyUnavailable(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, &stubExchange{err: errors.New("provider down")})
	token := registerAndLogin(t, app, "u1", "Secure123!", entity.RoleStaff)

	resp := doJSON(t, app, nethttp.MethodGet, "/api/currency", token, nil)
	require.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "RATES_UNAVAILABLE", body.Code)
}
