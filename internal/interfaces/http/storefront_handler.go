package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
)

// StorefrontHandler vistas públicas del catálogo: solo productos publicados,
// sin autenticación.
type StorefrontHandler struct {
	queries    *usecase.CatalogQueryUseCase
	categories *usecase.CategoryUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(queries *usecase.CatalogQueryUseCase, categories *usecase.CategoryUseCase) *StorefrontHandler {
	return &StorefrontHandler{queries: queries, categories: categories}
}

// ListProducts godoc
// @Summary      Catálogo público de productos publicados
// @Tags         catalog
// @Produce      json
// @Param        category  query  int     false  "Filtrar por ID de categoría"
// @Param        q         query  string  false  "Búsqueda en nombre, descripción y SKU"
// @Param        sort      query  string  false  "Campo de orden: id, name, price, stock"
// @Param        order     query  string  false  "asc o desc"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	filter := usecase.CatalogFilter{
		Term:          c.Query("q"),
		SortBy:        c.Query("sort"),
		Order:         c.Query("order"),
		PublishedOnly: true,
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return respondError(c, fmt.Errorf("%w: categoría inválida", domain.ErrInvalidInput))
		}
		filter.CategoryID = id
	}
	out, err := h.queries.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Detalle público de un producto publicado
// @Tags         catalog
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.queries.ByID(id, true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Categorías del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/catalog/categories [get]
func (h *StorefrontHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categories.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
