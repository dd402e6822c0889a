package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/repository"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogHandler(catalog *repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// List handles GET /api/products and returns the full catalog.
func (h *CatalogHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Products())
}
