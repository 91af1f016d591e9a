package entity

// Category representa una categoría del catálogo. El vínculo con los
// productos es vía Product.CategoryID; la categoría no guarda la lista.
type Category struct {
	ID   int64
	Name string // único entre categorías (comparación case-insensitive)
}
