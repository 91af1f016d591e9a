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

// PlaceholderImageURL imagen por defecto cuando un producto se crea sin imágenes.
const PlaceholderImageURL = "/images/placeholder.jpg"

// ProductUseCase casos de uso CRUD para productos. Las vistas derivadas se
// resuelven en CatalogQueryUseCase; la gestión fina de imágenes en
// ProductImageUseCase.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create crea un producto. Valida campos requeridos, existencia de la
// categoría, unicidad de SKU y no-negatividad de precio y stock; se reporta
// la primera regla que falla.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// La unicidad del SKU se evalúa sobre el valor recortado, que es el que
	// se almacena; de otro modo " TQ-100 " pasaría el chequeo contra "TQ-100".
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	sku := strings.TrimSpace(in.SKU)
	if err := uc.validateRequired(name, description, sku); err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: la categoría seleccionada no existe", domain.ErrInvalidInput)
	}
	existing, err := uc.products.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con ese SKU", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}

	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	now := time.Now()
	product := &entity.Product{
		ID:             nextID(ids),
		Name:           name,
		Description:    description,
		CategoryID:     in.CategoryID,
		SKU:            sku,
		Price:          in.Price,
		Stock:          in.Stock,
		Specifications: in.Specifications,
		Features:       in.Features,
		Images:         buildImages(in.Images),
		IsPublished:    in.IsPublished,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con semántica patch: solo se validan y aplican
// los campos presentes. Specifications, Features e Images se reemplazan
// completos cuando vienen.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrInvalidInput)
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, fmt.Errorf("%w: la descripción del producto es requerida", domain.ErrInvalidInput)
		}
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: la categoría seleccionada no existe", domain.ErrInvalidInput)
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, fmt.Errorf("%w: el SKU del producto es requerido", domain.ErrInvalidInput)
		}
		other, err := uc.products.GetBySKU(sku)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: ya existe un producto con ese SKU", domain.ErrInvalidInput)
		}
		product.SKU = sku
	}
	if in.Specifications != nil {
		product.Specifications = in.Specifications
	}
	if in.Features != nil {
		product.Features = in.Features
	}
	if in.Images != nil {
		product.Images = buildImages(in.Images)
	}
	if in.IsPublished != nil {
		product.IsPublished = *in.IsPublished
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Las imágenes viven dentro del producto, no hay
// cascada que aplicar.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	return uc.products.Delete(id)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	return toProductResponse(product), nil
}

// List lista todos los productos en orden de inserción.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

func (uc *ProductUseCase) validateRequired(name, description, sku string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: la descripción del producto es requerida", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("%w: el SKU del producto es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// buildImages materializa el set de imágenes con ids frescos y normaliza el
// invariante de imagen principal: gana la primera marcada; si ninguna lo
// está, la primera de la lista. Sin imágenes se asigna el placeholder.
func buildImages(in []dto.ProductImageInput) []entity.ProductImage {
	if len(in) == 0 {
		return []entity.ProductImage{{ID: clockID(), URL: PlaceholderImageURL, IsMain: true}}
	}
	images := make([]entity.ProductImage, 0, len(in))
	mainSeen := false
	for _, img := range in {
		isMain := img.IsMain && !mainSeen
		if isMain {
			mainSeen = true
		}
		images = append(images, entity.ProductImage{ID: clockID(), URL: img.URL, IsMain: isMain})
	}
	if !mainSeen {
		images[0].IsMain = true
	}
	return images
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := make([]dto.ProductImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, dto.ProductImageResponse{ID: img.ID, URL: img.URL, IsMain: img.IsMain})
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		SKU:            p.SKU,
		Price:          p.Price,
		Stock:          p.Stock,
		Specifications: p.Specifications,
		Features:       p.Features,
		Images:         images,
		IsPublished:    p.IsPublished,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
