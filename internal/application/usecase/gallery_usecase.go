package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// GalleryUseCase casos de uso CRUD para la galería del sitio.
type GalleryUseCase struct {
	gallery repository.GalleryRepository
}

// NewGalleryUseCase construye el caso de uso.
func NewGalleryUseCase(gallery repository.GalleryRepository) *GalleryUseCase {
	return &GalleryUseCase{gallery: gallery}
}

// Add agrega una imagen a la galería. El título es requerido.
func (uc *GalleryUseCase) Add(in dto.CreateGalleryImageRequest) (*dto.GalleryImageResponse, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: el título de la imagen es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, fmt.Errorf("%w: la URL de la imagen es requerida", domain.ErrInvalidInput)
	}
	list, err := uc.gallery.List()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, g := range list {
		ids = append(ids, g.ID)
	}
	now := time.Now()
	image := &entity.GalleryImage{
		ID:          nextID(ids),
		URL:         in.URL,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.gallery.Create(image); err != nil {
		return nil, err
	}
	return toGalleryResponse(image), nil
}

// Update edita título y/o descripción (semántica patch).
func (uc *GalleryUseCase) Update(id int64, in dto.UpdateGalleryImageRequest) (*dto.GalleryImageResponse, error) {
	image, err := uc.gallery.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("%w: imagen de galería no encontrada", domain.ErrNotFound)
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, fmt.Errorf("%w: el título de la imagen es requerido", domain.ErrInvalidInput)
		}
		image.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		image.Description = *in.Description
	}
	image.UpdatedAt = time.Now()
	if err := uc.gallery.Update(image); err != nil {
		return nil, err
	}
	return toGalleryResponse(image), nil
}

// Delete elimina una imagen de la galería.
func (uc *GalleryUseCase) Delete(id int64) error {
	image, err := uc.gallery.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return fmt.Errorf("%w: imagen de galería no encontrada", domain.ErrNotFound)
	}
	return uc.gallery.Delete(id)
}

// List lista la galería en orden de inserción.
func (uc *GalleryUseCase) List() (*dto.GalleryListResponse, error) {
	list, err := uc.gallery.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.GalleryImageResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGalleryResponse(g))
	}
	return &dto.GalleryListResponse{Items: items}, nil
}

func toGalleryResponse(g *entity.GalleryImage) *dto.GalleryImageResponse {
	if g == nil {
		return nil
	}
	return &dto.GalleryImageResponse{
		ID:          g.ID,
		URL:         g.URL,
		Title:       g.Title,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
