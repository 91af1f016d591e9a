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

// ProductImageUseCase gestiona la lista de imágenes embebida en un producto.
// Invariante: a lo sumo una imagen con IsMain; al quitar la principal se
// promueve la primera restante. Toda mutación pasa por el repositorio, que
// entrega copias, así el invariante no puede romperse por fuera.
type ProductImageUseCase struct {
	products repository.ProductRepository
}

// NewProductImageUseCase construye el caso de uso.
func NewProductImageUseCase(products repository.ProductRepository) *ProductImageUseCase {
	return &ProductImageUseCase{products: products}
}

// Add agrega una imagen al producto. Si isMain es true, desmarca primero las
// demás.
func (uc *ProductImageUseCase) Add(productID int64, url string, isMain bool) (*dto.ProductResponse, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: la URL de la imagen es requerida", domain.ErrInvalidInput)
	}
	product, err := uc.loadProduct(productID)
	if err != nil {
		return nil, err
	}
	if isMain {
		for i := range product.Images {
			product.Images[i].IsMain = false
		}
	}
	product.Images = append(product.Images, entity.ProductImage{ID: clockID(), URL: url, IsMain: isMain})
	return uc.save(product)
}

// Remove quita una imagen del producto. Si era la principal y quedan otras,
// la primera restante pasa a ser principal.
func (uc *ProductImageUseCase) Remove(productID, imageID int64) (*dto.ProductResponse, error) {
	product, err := uc.loadProduct(productID)
	if err != nil {
		return nil, err
	}
	idx := indexOfImage(product.Images, imageID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: imagen no encontrada", domain.ErrNotFound)
	}
	product.Images = append(product.Images[:idx], product.Images[idx+1:]...)
	if len(product.Images) > 0 && !hasMain(product.Images) {
		product.Images[0].IsMain = true
	}
	return uc.save(product)
}

// SetMain marca una imagen como principal y desmarca las demás.
func (uc *ProductImageUseCase) SetMain(productID, imageID int64) (*dto.ProductResponse, error) {
	product, err := uc.loadProduct(productID)
	if err != nil {
		return nil, err
	}
	if indexOfImage(product.Images, imageID) < 0 {
		return nil, fmt.Errorf("%w: imagen no encontrada", domain.ErrNotFound)
	}
	for i := range product.Images {
		product.Images[i].IsMain = product.Images[i].ID == imageID
	}
	return uc.save(product)
}

func (uc *ProductImageUseCase) loadProduct(id int64) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	return product, nil
}

func (uc *ProductImageUseCase) save(product *entity.Product) (*dto.ProductResponse, error) {
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func indexOfImage(images []entity.ProductImage, id int64) int {
	for i, img := range images {
		if img.ID == id {
			return i
		}
	}
	return -1
}

func hasMain(images []entity.ProductImage) bool {
	for _, img := range images {
		if img.IsMain {
			return true
		}
	}
	return false
}
