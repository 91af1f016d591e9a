package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// GalleryRepository define el puerto de persistencia para GalleryImage.
type GalleryRepository interface {
	Create(image *entity.GalleryImage) error
	GetByID(id int64) (*entity.GalleryImage, error)
	Update(image *entity.GalleryImage) error
	List() ([]*entity.GalleryImage, error)
	Delete(id int64) error
}
