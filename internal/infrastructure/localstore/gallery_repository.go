package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// GalleryRepository implementa repository.GalleryRepository sobre el blob
// "gallery". La galería no tiene semilla: un blob ausente o ilegible parte
// de una lista vacía.
type GalleryRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *logger.Logger
	items []*entity.GalleryImage
}

// NewGalleryRepository construye el repositorio y rehidrata desde el blob.
func NewGalleryRepository(store *Store, log *logger.Logger) *GalleryRepository {
	r := &GalleryRepository{store: store, log: log}
	r.load()
	return r
}

func (r *GalleryRepository) load() {
	data, ok, err := r.store.Get(blobGallery)
	if err == nil && ok {
		var records []galleryImageRecord
		if err = json.Unmarshal(data, &records); err == nil {
			r.items = make([]*entity.GalleryImage, 0, len(records))
			for _, rec := range records {
				r.items = append(r.items, galleryFromRecord(rec))
			}
			return
		}
	}
	if err != nil {
		r.log.Error().Err(err).Str("blob", blobGallery).Msg("blob ilegible, se reinicia vacío")
	}
	r.items = nil
	r.persist()
}

func (r *GalleryRepository) persist() {
	records := make([]galleryImageRecord, 0, len(r.items))
	for _, g := range r.items {
		records = append(records, galleryToRecord(g))
	}
	data, err := json.Marshal(records)
	if err == nil {
		err = r.store.Set(blobGallery, data)
	}
	if err != nil {
		r.log.Warn().Err(err).Str("blob", blobGallery).Msg("escritura descartada")
	}
}

// Create agrega la imagen al final de la lista.
func (r *GalleryRepository) Create(image *entity.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *image
	r.items = append(r.items, &cp)
	r.persist()
	return nil
}

// GetByID devuelve una copia, o (nil, nil) si no existe.
func (r *GalleryRepository) GetByID(id int64) (*entity.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.items {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la imagen en su posición.
func (r *GalleryRepository) Update(image *entity.GalleryImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.items {
		if g.ID == image.ID {
			cp := *image
			r.items[i] = &cp
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: imagen de galería %d", domain.ErrNotFound, image.ID)
}

// List devuelve copias en orden de inserción.
func (r *GalleryRepository) List() ([]*entity.GalleryImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.GalleryImage, 0, len(r.items))
	for _, g := range r.items {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

// Delete quita la imagen de la lista.
func (r *GalleryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.items {
		if g.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: imagen de galería %d", domain.ErrNotFound, id)
}
