package localstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// CategoryRepository implementa repository.CategoryRepository sobre el blob
// "categories". La lista en memoria es la autoritativa; el blob es un espejo.
type CategoryRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *logger.Logger
	items []*entity.Category
}

// NewCategoryRepository construye el repositorio y rehidrata desde el blob.
// Blob ausente o malformado: se parte de la semilla y se reescribe.
func NewCategoryRepository(store *Store, log *logger.Logger) *CategoryRepository {
	r := &CategoryRepository{store: store, log: log}
	r.load()
	return r
}

func (r *CategoryRepository) load() {
	data, ok, err := r.store.Get(blobCategories)
	if err == nil && ok {
		var records []categoryRecord
		if err = json.Unmarshal(data, &records); err == nil {
			r.items = make([]*entity.Category, 0, len(records))
			for _, rec := range records {
				r.items = append(r.items, categoryFromRecord(rec))
			}
			return
		}
	}
	if err != nil {
		r.log.Error().Err(err).Str("blob", blobCategories).Msg("blob ilegible, se restaura la semilla")
	}
	r.items = SeedCategories()
	r.persist()
}

// persist espeja la lista completa al blob. Una escritura fallida se registra
// y se descarta: la memoria sigue siendo autoritativa hasta el próximo arranque.
func (r *CategoryRepository) persist() {
	records := make([]categoryRecord, 0, len(r.items))
	for _, c := range r.items {
		records = append(records, categoryToRecord(c))
	}
	data, err := json.Marshal(records)
	if err == nil {
		err = r.store.Set(blobCategories, data)
	}
	if err != nil {
		r.log.Warn().Err(err).Str("blob", blobCategories).Msg("escritura descartada")
	}
}

// Create agrega la categoría al final de la lista.
func (r *CategoryRepository) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *category
	r.items = append(r.items, &cp)
	r.persist()
	return nil
}

// GetByID devuelve una copia, o (nil, nil) si no existe.
func (r *CategoryRepository) GetByID(id int64) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByName busca por nombre sin distinguir mayúsculas, o (nil, nil).
func (r *CategoryRepository) GetByName(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la categoría en su posición.
func (r *CategoryRepository) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == category.ID {
			cp := *category
			r.items[i] = &cp
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, category.ID)
}

// List devuelve copias en orden de inserción.
func (r *CategoryRepository) List() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Delete quita la categoría de la lista.
func (r *CategoryRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
}
