package entity

import "time"

// GalleryImage es una imagen de la galería del sitio, independiente de
// productos y categorías.
type GalleryImage struct {
	ID          int64
	URL         string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
