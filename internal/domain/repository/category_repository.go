package repository

import "github.com/jhoicas/vitrina-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los getters devuelven (nil, nil) cuando la entidad no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error) // comparación case-insensitive
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id int64) error
}
