package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/excel"
)

func TestExport_ContenidoDelLibro(t *testing.T) {
	exporter := excel.NewProductExporter()

	products := []*entity.Product{
		{
			ID: 1, Name: "Durómetro", SKU: "HT-200", CategoryID: 1,
			Price: decimal.NewFromFloat(450.50), Stock: 8, IsPublished: true,
			Images: []entity.ProductImage{{ID: 1, URL: "/images/ht.jpg", IsMain: true}},
		},
		{
			ID: 2, Name: "Balanza", SKU: "BA-100", CategoryID: 99,
			Price: decimal.NewFromInt(150), Stock: 3,
		},
	}
	categories := []*entity.Category{{ID: 1, Name: "Herramientas"}}

	data, err := exporter.Export(products, categories)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "el resultado debe ser un XLSX legible")
	defer f.Close()

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera más una fila por producto")

	assert.Equal(t, "Nombre", rows[0][1])
	assert.Equal(t, "Durómetro", rows[1][1])
	assert.Equal(t, "Herramientas", rows[1][3], "el nombre de categoría se resuelve por id")
	assert.Equal(t, "Sí", rows[1][6])
	assert.Equal(t, "/images/ht.jpg", rows[1][7])

	assert.Equal(t, "99", rows[2][3], "categoría desconocida queda como id en crudo")
	assert.Equal(t, "No", rows[2][6])
}

func TestExport_SinProductos_SoloCabecera(t *testing.T) {
	exporter := excel.NewProductExporter()

	data, err := exporter.Export(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
