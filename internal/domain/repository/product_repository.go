package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los getters devuelven (nil, nil) cuando la entidad no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error) // comparación case-insensitive
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	CountByCategory(categoryID int64) (int, error)
	Delete(id int64) error
}
