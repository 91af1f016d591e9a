package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// Campos de ordenamiento aceptados por el catálogo.
const (
	SortByID    = "id"
	SortByName  = "name"
	SortByPrice = "price"
	SortByStock = "stock"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// CatalogFilter parámetros de las vistas derivadas del storefront. Los campos
// en cero no filtran.
type CatalogFilter struct {
	CategoryID    int64
	Term          string
	SortBy        string
	Order         string
	PublishedOnly bool
}

// CatalogQueryUseCase vistas derivadas de solo lectura sobre el snapshot
// actual del store. Sin caché: cada invocación recalcula, aceptable para
// decenas o pocos cientos de entidades.
type CatalogQueryUseCase struct {
	products repository.ProductRepository
}

// NewCatalogQueryUseCase construye el caso de uso.
func NewCatalogQueryUseCase(products repository.ProductRepository) *CatalogQueryUseCase {
	return &CatalogQueryUseCase{products: products}
}

// List aplica filtro por categoría, búsqueda, filtro de publicación y
// ordenamiento sobre el snapshot, en ese orden. Sin ordenamiento se preserva
// el orden del store.
func (uc *CatalogQueryUseCase) List(f CatalogFilter) (*dto.ProductListResponse, error) {
	snapshot, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	if f.CategoryID != 0 {
		snapshot = filterProducts(snapshot, func(p *entity.Product) bool { return p.CategoryID == f.CategoryID })
	}
	if term := strings.TrimSpace(f.Term); term != "" {
		lower := strings.ToLower(term)
		snapshot = filterProducts(snapshot, func(p *entity.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), lower) ||
				strings.Contains(strings.ToLower(p.Description), lower) ||
				strings.Contains(strings.ToLower(p.SKU), lower)
		})
	}
	if f.PublishedOnly {
		snapshot = filterProducts(snapshot, func(p *entity.Product) bool { return p.IsPublished })
	}
	if f.SortBy != "" {
		if err := sortProducts(snapshot, f.SortBy, f.Order); err != nil {
			return nil, err
		}
	}
	items := make([]dto.ProductResponse, 0, len(snapshot))
	for _, p := range snapshot {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// ByCategory filtro lineal por categoría, preserva el orden del store.
func (uc *CatalogQueryUseCase) ByCategory(categoryID int64) (*dto.ProductListResponse, error) {
	return uc.List(CatalogFilter{CategoryID: categoryID})
}

// Search búsqueda por subcadena (case-insensitive) en nombre, descripción y SKU.
func (uc *CatalogQueryUseCase) Search(term string) (*dto.ProductListResponse, error) {
	return uc.List(CatalogFilter{Term: term})
}

// Published solo productos visibles en el storefront.
func (uc *CatalogQueryUseCase) Published() (*dto.ProductListResponse, error) {
	return uc.List(CatalogFilter{PublishedOnly: true})
}

// ByID búsqueda lineal por id. publishedOnly restringe al storefront.
func (uc *CatalogQueryUseCase) ByID(id int64, publishedOnly bool) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || (publishedOnly && !product.IsPublished) {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	return toProductResponse(product), nil
}

func filterProducts(in []*entity.Product, keep func(*entity.Product) bool) []*entity.Product {
	out := in[:0:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts ordena in situ de forma estable. name es lexicográfico;
// price, stock e id numéricos.
func sortProducts(products []*entity.Product, field, order string) error {
	var less func(a, b *entity.Product) bool
	switch field {
	case SortByName:
		less = func(a, b *entity.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortByPrice:
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	case SortByStock:
		less = func(a, b *entity.Product) bool { return a.Stock < b.Stock }
	case SortByID:
		less = func(a, b *entity.Product) bool { return a.ID < b.ID }
	default:
		return fmt.Errorf("%w: campo de orden desconocido %q", domain.ErrInvalidInput, field)
	}
	switch order {
	case "", OrderAsc:
	case OrderDesc:
		asc := less
		less = func(a, b *entity.Product) bool { return asc(b, a) }
	default:
		return fmt.Errorf("%w: orden desconocido %q", domain.ErrInvalidInput, order)
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
	return nil
}
