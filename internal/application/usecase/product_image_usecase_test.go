package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// newImageFixture crea un producto con dos imágenes (la primera principal) y
// devuelve el caso de uso de imágenes junto con el estado inicial.
func newImageFixture(t *testing.T) (*usecase.ProductImageUseCase, *dto.ProductResponse) {
	t.Helper()
	categories := &memCategoryRepo{}
	products := &memProductRepo{}
	require.NoError(t, categories.Create(&entity.Category{ID: 1, Name: "Herramientas"}))

	productUC := usecase.NewProductUseCase(products, categories)
	in := validProductRequest(1)
	in.Images = []dto.ProductImageInput{
		{URL: "/images/a.jpg", IsMain: true},
		{URL: "/images/b.jpg"},
	}
	created, err := productUC.Create(in)
	require.NoError(t, err)
	return usecase.NewProductImageUseCase(products), created
}

func countMains(images []dto.ProductImageResponse) int {
	mains := 0
	for _, img := range images {
		if img.IsMain {
			mains++
		}
	}
	return mains
}

func TestImageAdd_NoPrincipal_ConservaLaActual(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Add(product.ID, "/images/c.jpg", false)
	require.NoError(t, err)
	require.Len(t, out.Images, 3)
	assert.True(t, out.Images[0].IsMain, "la principal original no debe cambiar")
	assert.Equal(t, 1, countMains(out.Images))
}

func TestImageAdd_Principal_DesmarcaLasDemas(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Add(product.ID, "/images/c.jpg", true)
	require.NoError(t, err)
	require.Len(t, out.Images, 3)
	assert.True(t, out.Images[2].IsMain)
	assert.Equal(t, 1, countMains(out.Images))
}

func TestImageAdd_URLVacia_Invalida(t *testing.T) {
	uc, product := newImageFixture(t)

	_, err := uc.Add(product.ID, "   ", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImageAdd_ProductoInexistente_Retorna404(t *testing.T) {
	uc, _ := newImageFixture(t)

	_, err := uc.Add(99, "/images/c.jpg", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Al quitar la principal, la primera restante se promueve.
func TestImageRemove_PrincipalPromueveLaPrimera(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Remove(product.ID, product.Images[0].ID)
	require.NoError(t, err)
	require.Len(t, out.Images, 1)
	assert.True(t, out.Images[0].IsMain, "la imagen restante debe quedar como principal")
}

func TestImageRemove_NoPrincipal_NoTocaLaPrincipal(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Remove(product.ID, product.Images[1].ID)
	require.NoError(t, err)
	require.Len(t, out.Images, 1)
	assert.Equal(t, product.Images[0].ID, out.Images[0].ID)
	assert.True(t, out.Images[0].IsMain)
}

// Quitar la última imagen deja el producto sin imágenes; no se repone el
// placeholder en esta operación.
func TestImageRemove_UltimaImagen_ListaVacia(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Remove(product.ID, product.Images[0].ID)
	require.NoError(t, err)
	out, err = uc.Remove(product.ID, out.Images[0].ID)
	require.NoError(t, err)
	assert.Empty(t, out.Images)
}

func TestImageRemove_ImagenInexistente_Retorna404(t *testing.T) {
	uc, product := newImageFixture(t)

	_, err := uc.Remove(product.ID, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImageSetMain_CambiaLaPrincipal(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.SetMain(product.ID, product.Images[1].ID)
	require.NoError(t, err)
	assert.False(t, out.Images[0].IsMain)
	assert.True(t, out.Images[1].IsMain)
	assert.Equal(t, 1, countMains(out.Images))
}

func TestImageSetMain_ImagenInexistente_Retorna404(t *testing.T) {
	uc, product := newImageFixture(t)

	_, err := uc.SetMain(product.ID, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El invariante (a lo sumo una principal) se sostiene a lo largo de una
// secuencia arbitraria de operaciones.
func TestImage_InvarianteUnaPrincipal_Secuencia(t *testing.T) {
	uc, product := newImageFixture(t)

	out, err := uc.Add(product.ID, "/images/c.jpg", true)
	require.NoError(t, err)
	assert.Equal(t, 1, countMains(out.Images))

	out, err = uc.SetMain(product.ID, out.Images[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countMains(out.Images))

	out, err = uc.Remove(product.ID, out.Images[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countMains(out.Images))

	out, err = uc.Add(product.ID, "/images/d.jpg", false)
	require.NoError(t, err)
	assert.Equal(t, 1, countMains(out.Images))
}
