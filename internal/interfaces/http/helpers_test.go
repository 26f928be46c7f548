package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/karamansaglik/pharmacy-api/internal/application/auth"
	"github.com/karamansaglik/pharmacy-api/internal/application/dto"
	"github.com/karamansaglik/pharmacy-api/internal/application/usecase"
	"github.com/karamansaglik/pharmacy-api/internal/domain"
	"github.com/karamansaglik/pharmacy-api/internal/domain/entity"
	"github.com/karamansaglik/pharmacy-api/internal/domain/repository"
	apihttp "github.com/karamansaglik/pharmacy-api/internal/interfaces/http"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// In-memory repositories with the same contracts as the postgres adapters.

type memUserRepo struct {
	users []*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	clone := *u
	r.users = append(r.users, &clone)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return r.users, nil
}

type memProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	clone := *p
	r.products = append(r.products, &clone)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			clone := *p
			r.products[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) DecrementStock(productID string, qty int) error {
	for _, p := range r.products {
		if p.ID == productID {
			if p.Quantity < qty {
				return domain.ErrInsufficientStock
			}
			p.Quantity -= qty
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSaleRepo struct {
	sales []*entity.Sale
}

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) Create(s *entity.Sale) error {
	clone := *s
	r.sales = append(r.sales, &clone)
	return nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	return r.sales, nil
}

type memTxRunner struct {
	sales    *memSaleRepo
	products *memProductRepo
}

var _ usecase.SaleTxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
) error) error {
	txSales := &memSaleRepo{sales: append([]*entity.Sale(nil), r.sales.sales...)}
	txProducts := &memProductRepo{}
	for _, p := range r.products.products {
		clone := *p
		txProducts.products = append(txProducts.products, &clone)
	}
	if err := fn(txSales, txProducts); err != nil {
		return err
	}
	r.sales.sales = txSales.sales
	r.products.products = txProducts.products
	return nil
}

// stubSearch stands in for the external price-search provider.
type stubSearch struct {
	listings []dto.PriceListing
	err      error
}

func (s *stubSearch) SearchListings(ctx context.Context, query string) ([]dto.PriceListing, error) {
	return s.listings, s.err
}

// stubExchange stands in for the FX provider.
type stubExchange struct {
	rates *dto.CurrencyRatesResponse
	err   error
}

func (s *stubExchange) FetchRates(ctx context.Context) (*dto.CurrencyRatesResponse, error) {
	return s.rates, s.err
}

// newTestApp wires the full router against in-memory storage and stub
// providers. Redis stays nil so rate limiting is a pass-through.
func newTestApp(t *testing.T, search *stubSearch, exchange *stubExchange) *fiber.App {
	t.Helper()
	if search == nil {
		search = &stubSearch{}
	}
	if exchange == nil {
		exchange = &stubExchange{rates: &dto.CurrencyRatesResponse{
			USDTRY: decimal.RequireFromString("34.25"),
			EURTRY: decimal.RequireFromString("37.10"),
		}}
	}

	users := &memUserRepo{}
	products := &memProductRepo{}
	sales := &memSaleRepo{}
	tx := &memTxRunner{sales: sales, products: products}
	log := zerolog.Nop()

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "pharmacy-api"}),
		ProductUC:  usecase.NewProductUseCase(products),
		PricingUC:  usecase.NewPricingUseCase(products, search, log),
		SaleUC:     usecase.NewSaleUseCase(tx, sales),
		CurrencyUC: usecase.NewCurrencyUseCase(exchange, nil, log),
		JWTSecret:  testSecret,
	})
	return app
}

// doJSON performs one request against the fiber app. A non-empty token is sent
// as a Bearer header; a non-nil body is JSON encoded.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin creates a user and returns a valid bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, username, password, role string) string {
	t.Helper()
	resp := doJSON(t, app, nethttp.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: username, Password: password, Role: role,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, nethttp.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: username, Password: password,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	login := decodeJSON[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}
