package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Necesita el repositorio
// de productos para la verificación referencial al eliminar.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// Create crea una categoría. El nombre es requerido y único (case-insensitive).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe una categoría con ese nombre", domain.ErrInvalidInput)
	}
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	category := &entity.Category{ID: nextID(ids), Name: name}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return uc.toCategoryResponse(category)
}

// Update actualiza el nombre de una categoría. Un nombre nil es un no-op.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre de la categoría es requerido", domain.ErrInvalidInput)
		}
		other, err := uc.categories.GetByName(name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: ya existe una categoría con ese nombre", domain.ErrInvalidInput)
		}
		category.Name = name
		if err := uc.categories.Update(category); err != nil {
			return nil, err
		}
	}
	return uc.toCategoryResponse(category)
}

// Delete elimina una categoría. Falla con ErrConflict mientras algún producto
// la referencie (integridad referencial).
func (uc *CategoryUseCase) Delete(id int64) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	count, err := uc.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: no se puede eliminar una categoría con productos asociados", domain.ErrConflict)
	}
	return uc.categories.Delete(id)
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría no encontrada", domain.ErrNotFound)
	}
	return uc.toCategoryResponse(category)
}

// List lista todas las categorías en orden de inserción.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp, err := uc.toCategoryResponse(c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

func (uc *CategoryUseCase) toCategoryResponse(c *entity.Category) (*dto.CategoryResponse, error) {
	count, err := uc.products.CountByCategory(c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, ProductCount: count}, nil
}
