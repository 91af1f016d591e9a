package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// ImageStorage guarda el archivo subido y devuelve su URL pública.
type ImageStorage interface {
	Save(filename string, contents io.Reader) (string, error)
}

// ProductImageHandler maneja las imágenes de un producto (protegido).
type ProductImageHandler struct {
	uc      *usecase.ProductImageUseCase
	storage ImageStorage
}

// NewProductImageHandler construye el handler.
func NewProductImageHandler(uc *usecase.ProductImageUseCase, storage ImageStorage) *ProductImageHandler {
	return &ProductImageHandler{uc: uc, storage: storage}
}

// Add godoc
// @Summary      Agregar imagen a un producto
// @Description  Acepta multipart/form-data con el campo "file" (se sube el
// @Description  archivo y se usa la URL resultante) o JSON con el campo "url".
// @Tags         product-images
// @Security     Bearer
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/images [post]
func (h *ProductImageHandler) Add(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	url, isMain, err := h.resolveImage(c)
	if err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Add(productID, url, isMain)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// resolveImage obtiene la URL de la imagen: del archivo subido si la petición
// es multipart, del cuerpo JSON en caso contrario.
func (h *ProductImageHandler) resolveImage(c *fiber.Ctx) (string, bool, error) {
	if header, err := c.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			return "", false, err
		}
		defer file.Close()
		url, err := h.storage.Save(header.Filename, file)
		if err != nil {
			return "", false, err
		}
		return url, c.FormValue("isMain") == "true", nil
	}

	var in dto.AddProductImageRequest
	if err := c.BodyParser(&in); err != nil {
		return "", false, err
	}
	return in.URL, in.IsMain, nil
}

// Remove godoc
// @Summary      Eliminar imagen de un producto
// @Tags         product-images
// @Security     Bearer
// @Produce      json
// @Param        id       path  int  true  "ID del producto"
// @Param        imageId  path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/images/{imageId} [delete]
func (h *ProductImageHandler) Remove(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	imageID, err := parseID(c, "imageId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Remove(productID, imageID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetMain godoc
// @Summary      Marcar imagen como principal
// @Tags         product-images
// @Security     Bearer
// @Produce      json
// @Param        id       path  int  true  "ID del producto"
// @Param        imageId  path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id}/images/{imageId}/main [put]
func (h *ProductImageHandler) SetMain(c *fiber.Ctx) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	imageID, err := parseID(c, "imageId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetMain(productID, imageID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
