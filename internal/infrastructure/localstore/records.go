package localstore

import (
	"time"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Formas persistidas de los blobs. Las claves camelCase y los timestamps en
// milisegundos replican el formato que el frontend guardaba en localStorage,
// así un volcado existente sigue siendo legible.

type categoryRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productImageRecord struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type productRecord struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	CategoryID     int64                `json:"categoryId"`
	SKU            string               `json:"sku"`
	Price          decimal.Decimal      `json:"price"`
	Stock          int                  `json:"stock"`
	Specifications map[string]string    `json:"specifications"`
	Features       []string             `json:"features"`
	Images         []productImageRecord `json:"images"`
	IsPublished    bool                 `json:"isPublished"`
	CreatedAt      int64                `json:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt"`
}

type galleryImageRecord struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func categoryToRecord(c *entity.Category) categoryRecord {
	return categoryRecord{ID: c.ID, Name: c.Name}
}

func categoryFromRecord(r categoryRecord) *entity.Category {
	return &entity.Category{ID: r.ID, Name: r.Name}
}

func productToRecord(p *entity.Product) productRecord {
	images := make([]productImageRecord, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, productImageRecord{ID: img.ID, URL: img.URL, IsMain: img.IsMain})
	}
	return productRecord{
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
		CreatedAt:      p.CreatedAt.UnixMilli(),
		UpdatedAt:      p.UpdatedAt.UnixMilli(),
	}
}

func productFromRecord(r productRecord) *entity.Product {
	images := make([]entity.ProductImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, entity.ProductImage{ID: img.ID, URL: img.URL, IsMain: img.IsMain})
	}
	return &entity.Product{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		CategoryID:     r.CategoryID,
		SKU:            r.SKU,
		Price:          r.Price,
		Stock:          r.Stock,
		Specifications: r.Specifications,
		Features:       r.Features,
		Images:         images,
		IsPublished:    r.IsPublished,
		CreatedAt:      time.UnixMilli(r.CreatedAt),
		UpdatedAt:      time.UnixMilli(r.UpdatedAt),
	}
}

func galleryToRecord(g *entity.GalleryImage) galleryImageRecord {
	return galleryImageRecord{
		ID:          g.ID,
		URL:         g.URL,
		Title:       g.Title,
		Description: g.Description,
		CreatedAt:   g.CreatedAt.UnixMilli(),
		UpdatedAt:   g.UpdatedAt.UnixMilli(),
	}
}

func galleryFromRecord(r galleryImageRecord) *entity.GalleryImage {
	return &entity.GalleryImage{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   time.UnixMilli(r.CreatedAt),
		UpdatedAt:   time.UnixMilli(r.UpdatedAt),
	}
}
