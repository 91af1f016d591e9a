// Package pdf genera la ficha técnica imprimible de un producto del catálogo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto  │  SKU + Categoría            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Descripción                                                │
//	│  Precio | Stock | Estado de publicación                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Especificación | Valor                              │
//	│  LISTA: Características (orden de despliegue)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ProductSheetGenerator genera la ficha técnica usando Maroto v2.
type ProductSheetGenerator struct{}

// NewProductSheetGenerator construye el generador.
func NewProductSheetGenerator() *ProductSheetGenerator { return &ProductSheetGenerator{} }

// GenerateProductSheet genera el PDF y devuelve sus bytes.
func (g *ProductSheetGenerator) GenerateProductSheet(
	_ context.Context,
	product *entity.Product,
	category *entity.Category,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha técnica "+product.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, category))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(descriptionRow(product))
	m.AddRows(summaryRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(specsHeaderRow())
	for _, r := range specRows(product) {
		m.AddRows(r)
	}

	if len(product.Features) > 0 {
		m.AddRows(featuresTitleRow())
		for _, r := range featureRows(product) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del producto (izq), SKU y categoría (der).
func headerRow(product *entity.Product, category *entity.Category) core.Row {
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("SKU: "+product.SKU, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(categoryName, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func descriptionRow(product *entity.Product) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(product.Description, props.Text{Size: 9, Top: 2, Color: colorGray}),
		),
	)
}

// summaryRow: precio, stock y visibilidad en una línea.
func summaryRow(product *entity.Product) core.Row {
	published := "Borrador"
	if product.IsPublished {
		published = "Publicado"
	}
	return row.New(10).Add(
		col.New(4).Add(
			text.New("Precio: $"+product.Price.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Stock: %d", product.Stock), props.Text{Size: 10, Top: 2}),
		),
		col.New(4).Add(
			text.New(published, props.Text{Size: 10, Top: 2, Align: align.Right, Color: colorGray}),
		),
	)
}

func specsHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(5).Add(
			text.New("Especificación", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorPrimary}),
		),
		col.New(7).Add(
			text.New("Valor", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorPrimary}),
		),
	)
}

func specRows(product *entity.Product) []core.Row {
	keys := make([]string, 0, len(product.Specifications))
	for k := range product.Specifications {
		keys = append(keys, k)
	}
	// El orden de claves del mapa no es significativo; se imprime ordenado
	// para que dos generaciones del mismo producto coincidan.
	sort.Strings(keys)
	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(k, props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(product.Specifications[k], props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func featuresTitleRow() core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New("Características", props.Text{Style: fontstyle.Bold, Size: 9, Top: 3, Color: colorPrimary}),
		),
	)
}

func featureRows(product *entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(product.Features))
	for _, f := range product.Features {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("• "+f, props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

func footerRow() core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Generado el "+generated, props.Text{Size: 7, Top: 2, Align: align.Center, Color: colorGray}),
		),
	)
}
