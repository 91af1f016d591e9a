package usecase_test

import (
	"fmt"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Replican el contrato
// de los puertos: copias hacia afuera y (nil, nil) cuando la entidad no existe.
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	items []*entity.Category
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, c.ID)
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id int64) error {
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
}

type memProductRepo struct {
	items []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.items = append(r.items, p.Clone())
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.SKU, sku) {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = p.Clone()
			return nil
		}
	}
	return fmt.Errorf("%w: producto %d", domain.ErrNotFound, p.ID)
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *memProductRepo) CountByCategory(categoryID int64) (int, error) {
	count := 0
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) Delete(id int64) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
}

type memGalleryRepo struct {
	items []*entity.GalleryImage
}

func (r *memGalleryRepo) Create(g *entity.GalleryImage) error {
	cp := *g
	r.items = append(r.items, &cp)
	return nil
}

func (r *memGalleryRepo) GetByID(id int64) (*entity.GalleryImage, error) {
	for _, g := range r.items {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memGalleryRepo) Update(g *entity.GalleryImage) error {
	for i, it := range r.items {
		if it.ID == g.ID {
			cp := *g
			r.items[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("%w: imagen %d", domain.ErrNotFound, g.ID)
}

func (r *memGalleryRepo) List() ([]*entity.GalleryImage, error) {
	out := make([]*entity.GalleryImage, 0, len(r.items))
	for _, g := range r.items {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memGalleryRepo) Delete(id int64) error {
	for i, g := range r.items {
		if g.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: imagen %d", domain.ErrNotFound, id)
}
