package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"catalog/config"
	httpmiddleware "catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/validator"
	"catalog/internal/infra/auth"
	"catalog/internal/infra/persistence/model"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the real stack end to end: sqlite storage, argon2
// hashing, AES-GCM tokens, usecases, handlers and routing.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AccountModel{}, &model.ProductModel{}))

	cfg := &config.Config{}
	cfg.Token.Key = "integration-test-token-key"
	cfg.Token.TTL = time.Hour

	tokenCodec, err := auth.NewAEADCodec(cfg)
	require.NoError(t, err)

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo: postgres.NewAccountRepository(db),
		Hasher:      auth.NewArgon2Hasher(),
		TokenCodec:  tokenCodec,
		Logger:      testLogger,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: postgres.NewProductRepository(db),
		Logger:      testLogger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(testLogger).HandleHTTPError

	accountHandler := NewAccountHandler(accountUC, testLogger)
	productHandler := NewProductHandler(productUC, testLogger)
	authMiddleware := httpmiddleware.NewAuthMiddleware(tokenCodec)

	e.GET("/health", HealthCheck)
	e.POST("/registration", accountHandler.Register)
	e.POST("/login", accountHandler.Login)
	e.GET("/products", productHandler.List)

	productGroup := e.Group("/products")
	productGroup.Use(authMiddleware.Authenticate)
	productGroup.POST("", productHandler.Create)
	productGroup.PUT("/:id", productHandler.Update)
	productGroup.DELETE("/:id", productHandler.Delete)

	return e
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/registration", "",
		`{"username":"`+username+`","password":"Password123!"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"Account added"`, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/login", "",
		`{"username":"`+username+`","password":"Password123!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func createProduct(t *testing.T, e *echo.Echo, token, name string, price int) int {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/products", token,
		`{"name":"`+name+`","price":`+strconv.Itoa(price)+`}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var product struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Price int    `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.NotZero(t, product.ID)
	assert.Equal(t, name, product.Name)
	assert.Equal(t, price, product.Price)

	return product.ID
}

func TestRegistrationAndLoginFlow(t *testing.T) {
	e := newTestServer(t)

	token := registerAndLogin(t, e, "alice")
	assert.NotEmpty(t, token)

	// Duplicate registration conflicts.
	rec := doJSON(e, http.MethodPost, "/registration", "",
		`{"username":"alice","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_UniformRejection(t *testing.T) {
	e := newTestServer(t)
	registerAndLogin(t, e, "alice")

	wrongPw := doJSON(e, http.MethodPost, "/login",
		"", `{"username":"alice","password":"nope"}`)
	unknown := doJSON(e, http.MethodPost, "/login",
		"", `{"username":"ghost","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)

	// Only the meta request id may differ between the two rejections.
	var wrongPwBody, unknownBody map[string]any
	require.NoError(t, json.Unmarshal(wrongPw.Body.Bytes(), &wrongPwBody))
	require.NoError(t, json.Unmarshal(unknown.Body.Bytes(), &unknownBody))
	assert.Equal(t, wrongPwBody["error"], unknownBody["error"],
		"unknown username and wrong password must be indistinguishable")
}

func TestProductLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "seller")

	productID := createProduct(t, e, token, "lamp", 2500)

	// Public listing, no auth required.
	rec := doJSON(e, http.MethodGet, "/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Price int    `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, productID, listed[0].ID)
	assert.NotContains(t, rec.Body.String(), "seller_id")

	// Owner updates.
	rec = doJSON(e, http.MethodPut, "/products/"+strconv.Itoa(productID), token,
		`{"name":"floor lamp","price":3000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "floor lamp")

	// Owner deletes, acknowledged with text.
	rec = doJSON(e, http.MethodDelete, "/products/"+strconv.Itoa(productID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")

	rec = doJSON(e, http.MethodGet, "/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProductMutation_RequiresOwnership(t *testing.T) {
	e := newTestServer(t)
	ownerToken := registerAndLogin(t, e, "owner")
	otherToken := registerAndLogin(t, e, "other")

	productID := createProduct(t, e, ownerToken, "desk", 9000)

	rec := doJSON(e, http.MethodPut, "/products/"+strconv.Itoa(productID), otherToken,
		`{"name":"hijacked","price":1}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/products/"+strconv.Itoa(productID), otherToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Catalog untouched.
	rec = doJSON(e, http.MethodGet, "/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "desk")
	assert.NotContains(t, rec.Body.String(), "hijacked")
}

func TestProductMutation_RequiresToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/products", "", `{"name":"lamp","price":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/products", "not-a-real-token",
		`{"name":"lamp","price":1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProducts_PaginationValidation(t *testing.T) {
	e := newTestServer(t)
	token := registerAndLogin(t, e, "seller")
	for _, name := range []string{"a", "b", "c", "d"} {
		createProduct(t, e, token, name, 10)
	}

	rec := doJSON(e, http.MethodGet, "/products?limit=2&offset=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Name)
	assert.Equal(t, "c", page[1].Name)

	for _, query := range []string{"limit=abc", "offset=-1", "limit=0"} {
		rec = doJSON(e, http.MethodGet, "/products?"+query, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
