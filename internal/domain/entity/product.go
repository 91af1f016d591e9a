package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductImage es una imagen embebida en un producto. A lo sumo una imagen
// de la lista tiene IsMain en true; si la lista no está vacía, exactamente una.
type ProductImage struct {
	ID     int64
	URL    string // object URL, data URL o ruta estática; opaco para esta capa
	IsMain bool
}

// Product representa un producto publicable del catálogo.
type Product struct {
	ID             int64
	Name           string
	Description    string
	CategoryID     int64  // debe existir al momento de escribir
	SKU            string // único entre productos (case-insensitive)
	Price          decimal.Decimal
	Stock          int
	Specifications map[string]string
	Features       []string // orden significativo (orden de despliegue)
	Images         []ProductImage
	IsPublished    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone devuelve una copia profunda. Los repositorios entregan copias para
// que el store sea la única vía de mutación de Images/Specifications.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Specifications != nil {
		cp.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			cp.Specifications[k] = v
		}
	}
	if p.Features != nil {
		cp.Features = append([]string(nil), p.Features...)
	}
	if p.Images != nil {
		cp.Images = append([]ProductImage(nil), p.Images...)
	}
	return &cp
}

// MainImage devuelve la URL de la imagen principal, o fallback si no hay.
func (p *Product) MainImage(fallback string) string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.URL
		}
	}
	return fallback
}
