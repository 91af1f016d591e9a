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

// ProductRepository implementa repository.ProductRepository sobre el blob
// "products". Entrega clones profundos: las imágenes y especificaciones de un
// producto solo se mutan a través de Update.
type ProductRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *logger.Logger
	items []*entity.Product
}

// NewProductRepository construye el repositorio y rehidrata desde el blob.
func NewProductRepository(store *Store, log *logger.Logger) *ProductRepository {
	r := &ProductRepository{store: store, log: log}
	r.load()
	return r
}

func (r *ProductRepository) load() {
	data, ok, err := r.store.Get(blobProducts)
	if err == nil && ok {
		var records []productRecord
		if err = json.Unmarshal(data, &records); err == nil {
			r.items = make([]*entity.Product, 0, len(records))
			for _, rec := range records {
				r.items = append(r.items, productFromRecord(rec))
			}
			return
		}
	}
	if err != nil {
		r.log.Error().Err(err).Str("blob", blobProducts).Msg("blob ilegible, se restaura la semilla")
	}
	r.items = SeedProducts()
	r.persist()
}

func (r *ProductRepository) persist() {
	records := make([]productRecord, 0, len(r.items))
	for _, p := range r.items {
		records = append(records, productToRecord(p))
	}
	data, err := json.Marshal(records)
	if err == nil {
		err = r.store.Set(blobProducts, data)
	}
	if err != nil {
		r.log.Warn().Err(err).Str("blob", blobProducts).Msg("escritura descartada")
	}
}

// Create agrega el producto al final de la lista.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, product.Clone())
	r.persist()
	return nil
}

// GetByID devuelve un clon, o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

// GetBySKU busca por SKU sin distinguir mayúsculas, o (nil, nil).
func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if strings.EqualFold(p.SKU, sku) {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto en su posición.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == product.ID {
			r.items[i] = product.Clone()
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: producto %d", domain.ErrNotFound, product.ID)
}

// List devuelve clones en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepository) CountByCategory(categoryID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// Delete quita el producto de la lista.
func (r *ProductRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
}
