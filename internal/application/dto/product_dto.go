package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductImageInput imagen enviada al crear/reemplazar el set de imágenes.
type ProductImageInput struct {
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// AddProductImageRequest entrada JSON para agregar una imagen por URL.
type AddProductImageRequest struct {
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// ProductImageResponse imagen embebida en la respuesta de producto.
type ProductImageResponse struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// CreateProductRequest entrada para crear un producto. Si Images viene vacío
// se asigna una imagen placeholder marcada como principal.
type CreateProductRequest struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	CategoryID     int64               `json:"category_id"`
	SKU            string              `json:"sku"`
	Price          decimal.Decimal     `json:"price"`
	Stock          int                 `json:"stock"`
	Specifications map[string]string   `json:"specifications"`
	Features       []string            `json:"features"`
	Images         []ProductImageInput `json:"images"`
	IsPublished    bool                `json:"is_published"`
}

// UpdateProductRequest entrada para actualizar un producto (semántica patch:
// nil = no tocar). Specifications, Features e Images se reemplazan completos
// cuando vienen, no se mezclan.
type UpdateProductRequest struct {
	Name           *string             `json:"name"`
	Description    *string             `json:"description"`
	CategoryID     *int64              `json:"category_id"`
	SKU            *string             `json:"sku"`
	Price          *decimal.Decimal    `json:"price"`
	Stock          *int                `json:"stock"`
	Specifications map[string]string   `json:"specifications"`
	Features       []string            `json:"features"`
	Images         []ProductImageInput `json:"images"`
	IsPublished    *bool               `json:"is_published"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	CategoryID     int64                  `json:"category_id"`
	SKU            string                 `json:"sku"`
	Price          decimal.Decimal        `json:"price"`
	Stock          int                    `json:"stock"`
	Specifications map[string]string      `json:"specifications"`
	Features       []string               `json:"features"`
	Images         []ProductImageResponse `json:"images"`
	IsPublished    bool                   `json:"is_published"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
