package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, int64) {
	t.Helper()
	categories := &memCategoryRepo{}
	products := &memProductRepo{}
	require.NoError(t, categories.Create(&entity.Category{ID: 1, Name: "Herramientas"}))
	return usecase.NewProductUseCase(products, categories), 1
}

func validProductRequest(categoryID int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Torquímetro digital",
		Description: "Medición de par de apriete",
		CategoryID:  categoryID,
		SKU:         "TQ-100",
		Price:       decimal.NewFromFloat(199.90),
		Stock:       5,
	}
}

func TestProductCreate_OK(t *testing.T) {
	uc, categoryID := newProductFixture(t)

	out, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Torquímetro digital", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(199.90)))
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "al crear, created y updated coinciden")
}

// Sin imágenes se asigna el placeholder como imagen principal.
func TestProductCreate_SinImagenes_Placeholder(t *testing.T) {
	uc, categoryID := newProductFixture(t)

	out, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)
	require.Len(t, out.Images, 1)
	assert.Equal(t, usecase.PlaceholderImageURL, out.Images[0].URL)
	assert.True(t, out.Images[0].IsMain)
}

// Con varias imágenes y ninguna marcada, la primera queda como principal.
func TestProductCreate_SinPrincipalMarcada_PrimeraGana(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Images = []dto.ProductImageInput{
		{URL: "/images/a.jpg"},
		{URL: "/images/b.jpg"},
	}

	out, err := uc.Create(in)
	require.NoError(t, err)
	require.Len(t, out.Images, 2)
	assert.True(t, out.Images[0].IsMain)
	assert.False(t, out.Images[1].IsMain)
}

// Con varias marcadas como principal, gana la primera marcada.
func TestProductCreate_VariasPrincipales_SoloUnaQueda(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Images = []dto.ProductImageInput{
		{URL: "/images/a.jpg"},
		{URL: "/images/b.jpg", IsMain: true},
		{URL: "/images/c.jpg", IsMain: true},
	}

	out, err := uc.Create(in)
	require.NoError(t, err)
	mains := 0
	for _, img := range out.Images {
		if img.IsMain {
			mains++
		}
	}
	assert.Equal(t, 1, mains, "debe quedar exactamente una imagen principal")
	assert.True(t, out.Images[1].IsMain, "gana la primera marcada")
}

func TestProductCreate_PrecioNegativo_Invalido(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Price = decimal.NewFromInt(-1)

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioCero_Valido(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Price = decimal.Zero

	_, err := uc.Create(in)
	assert.NoError(t, err, "precio cero es válido, solo se rechaza el negativo")
}

func TestProductCreate_StockNegativo_Invalido(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Stock = -3

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc, categoryID := newProductFixture(t)

	for name, mutate := range map[string]func(*dto.CreateProductRequest){
		"nombre":      func(in *dto.CreateProductRequest) { in.Name = "  " },
		"descripcion": func(in *dto.CreateProductRequest) { in.Description = "" },
		"sku":         func(in *dto.CreateProductRequest) { in.SKU = "" },
	} {
		in := validProductRequest(categoryID)
		mutate(&in)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "campo faltante: %s", name)
	}
}

func TestProductCreate_CategoriaInexistente_Invalido(t *testing.T) {
	uc, _ := newProductFixture(t)
	in := validProductRequest(99)

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	_, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	in := validProductRequest(categoryID)
	in.SKU = "tq-100" // la comparación no distingue mayúsculas
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El chequeo de unicidad corre sobre el SKU ya recortado: un SKU con espacios
// alrededor duplica al existente y no debe colarse al store.
func TestProductCreate_SKUDuplicadoConEspacios(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	_, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	in := validProductRequest(categoryID)
	in.SKU = "  TQ-100  "
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "el duplicado no debe agregarse")
}

// Con varias reglas violadas a la vez se reporta una sola, en el orden:
// campos requeridos, categoría existente, SKU único, precio, stock.
func TestProductCreate_PrimeraReglaQueFalla(t *testing.T) {
	uc, _ := newProductFixture(t)
	in := validProductRequest(99) // categoría inexistente
	in.Price = decimal.NewFromInt(-1)

	_, err := uc.Create(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "categoría",
		"la existencia de la categoría se evalúa antes que el precio")
}

// Patch: solo cambia el campo presente, el resto queda intacto.
func TestProductUpdate_PatchParcial(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	created, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(250)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, created.Name, out.Name, "el nombre no debe cambiar")
	assert.Equal(t, created.SKU, out.SKU, "el SKU no debe cambiar")
}

// Specifications y Features se reemplazan completos, no se mezclan.
func TestProductUpdate_ReemplazoCompletoDeMapas(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	in := validProductRequest(categoryID)
	in.Specifications = map[string]string{"rango": "0-200 Nm", "precisión": "±2%"}
	created, err := uc.Create(in)
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Specifications: map[string]string{"rango": "0-500 Nm"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"rango": "0-500 Nm"}, out.Specifications,
		"el mapa anterior se descarta entero")
}

func TestProductUpdate_MantenerSuPropioSKU(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	created, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{SKU: strPtr("TQ-100")})
	assert.NoError(t, err, "conservar el propio SKU no es duplicado")
}

func TestProductUpdate_SKUDeOtro_Duplicado(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	_, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)
	other := validProductRequest(categoryID)
	other.SKU = "TQ-200"
	second, err := uc.Create(other)
	require.NoError(t, err)

	_, err = uc.Update(second.ID, dto.UpdateProductRequest{SKU: strPtr("TQ-100")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_RefrescaUpdatedAt(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	created, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	published := true
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, out.IsPublished)
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, out.CreatedAt, "created_at no cambia en updates")
}

func TestProductUpdate_NoExiste_Retorna404(t *testing.T) {
	uc, _ := newProductFixture(t)

	_, err := uc.Update(99, dto.UpdateProductRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_OK(t *testing.T) {
	uc, categoryID := newProductFixture(t)
	created, err := uc.Create(validProductRequest(categoryID))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_NoExiste_Retorna404(t *testing.T) {
	uc, _ := newProductFixture(t)
	assert.ErrorIs(t, uc.Delete(99), domain.ErrNotFound)
}
