package dto

import "time"

// CreateGalleryImageRequest entrada para agregar una imagen a la galería.
// La URL proviene del colaborador de subida de archivos.
type CreateGalleryImageRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateGalleryImageRequest entrada para editar título/descripción. Nil = no tocar.
type UpdateGalleryImageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// GalleryImageResponse salida de una imagen de galería.
type GalleryImageResponse struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryListResponse lista de imágenes de galería.
type GalleryListResponse struct {
	Items []GalleryImageResponse `json:"items"`
}
