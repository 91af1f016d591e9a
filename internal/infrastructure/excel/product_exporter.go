// Package excel genera el listado de productos del back-office como libro
// XLSX, el formato en el que el negocio intercambia catálogos.
package excel

import (
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Productos"

var headers = []string{"ID", "Nombre", "SKU", "Categoría", "Precio", "Stock", "Publicado", "Imagen principal"}

// ProductExporter escribe el catálogo como hoja de cálculo.
type ProductExporter struct{}

// NewProductExporter construye el exportador.
func NewProductExporter() *ProductExporter { return &ProductExporter{} }

// Export devuelve los bytes del XLSX con una fila por producto. El nombre de
// categoría se resuelve contra la lista recibida; una categoría desconocida
// queda como el id en crudo.
func (e *ProductExporter) Export(products []*entity.Product, categories []*entity.Category) ([]byte, error) {
	byID := make(map[int64]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Name
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	for row, p := range products {
		categoryName := byID[p.CategoryID]
		if categoryName == "" {
			categoryName = fmt.Sprintf("%d", p.CategoryID)
		}
		published := "No"
		if p.IsPublished {
			published = "Sí"
		}
		values := []interface{}{
			p.ID,
			p.Name,
			p.SKU,
			categoryName,
			p.Price.InexactFloat64(),
			p.Stock,
			published,
			p.MainImage(""),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
