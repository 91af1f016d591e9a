package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/pdf"
)

func testProduct() *entity.Product {
	return &entity.Product{
		ID:          1,
		Name:        "Durómetro digital",
		Description: "Medición de dureza con escalas Rockwell, Brinell y Vickers",
		CategoryID:  1,
		SKU:         "HT-200",
		Price:       decimal.NewFromInt(450000),
		Stock:       8,
		Specifications: map[string]string{
			"Escalas":    "Rockwell, Brinell, Vickers",
			"Carga":      "1-3000 kgf",
			"Resolución": "0.1 HRC",
		},
		Features:    []string{"Pantalla táctil", "Ciclo automático"},
		IsPublished: true,
	}
}

func TestGenerateProductSheet_ProduceUnPDF(t *testing.T) {
	gen := pdf.NewProductSheetGenerator()

	data, err := gen.GenerateProductSheet(context.Background(), testProduct(), &entity.Category{ID: 1, Name: "Herramientas"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el resultado debe ser un PDF")
}

// Sin categoría resuelta y sin especificaciones la ficha igual se genera.
func TestGenerateProductSheet_DatosMinimos(t *testing.T) {
	gen := pdf.NewProductSheetGenerator()

	product := testProduct()
	product.Specifications = nil
	product.Features = nil

	data, err := gen.GenerateProductSheet(context.Background(), product, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
