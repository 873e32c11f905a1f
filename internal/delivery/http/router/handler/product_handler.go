package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/pagination"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type productRequest struct {
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the catalog listing request with optional pagination.
func (h *ProductHandler) List(c echo.Context) error {
	page, err := pagination.FromQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.List(c.Request().Context(), usecase.ListProductsInput{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, products)
}

// Create handles adding a new product owned by the authenticated account.
func (h *ProductHandler) Create(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product payload")
	}
	if err := c.Validate(&req); err != nil {
		return asValidationError(err)
	}

	product, err := h.uc.Create(c.Request().Context(), session.AccountID, usecase.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// Update handles rewriting an existing product's name and price.
func (h *ProductHandler) Update(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	productID, err := parseProductID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product payload")
	}
	if err := c.Validate(&req); err != nil {
		return asValidationError(err)
	}

	product, err := h.uc.Update(c.Request().Context(), session.AccountID, usecase.UpdateProductInput{
		ProductID: productID,
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles removing a product owned by the authenticated account.
func (h *ProductHandler) Delete(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	productID, err := parseProductID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), session.AccountID, productID); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, fmt.Sprintf("Product %d deleted", productID))
}

func parseProductID(c echo.Context) (int, error) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domainerrors.NewValidationError("id", "must be a number")
	}

	return productID, nil
}
