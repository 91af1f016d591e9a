package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Nil = no tocar.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse salida de una categoría. ProductCount es derivado, no
// persistido.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
