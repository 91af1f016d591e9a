package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
)

// GalleryHandler maneja la galería del sitio. La lectura es pública, las
// mutaciones van bajo el grupo admin.
type GalleryHandler struct {
	uc      *usecase.GalleryUseCase
	storage ImageStorage
}

// NewGalleryHandler construye el handler.
func NewGalleryHandler(uc *usecase.GalleryUseCase, storage ImageStorage) *GalleryHandler {
	return &GalleryHandler{uc: uc, storage: storage}
}

// List godoc
// @Summary      Listar imágenes de la galería
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  dto.GalleryListResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar imagen a la galería
// @Description  Acepta multipart/form-data con los campos "file", "title" y
// @Description  "description", o JSON con "url", "title" y "description".
// @Tags         gallery
// @Security     Bearer
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.GalleryImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/gallery [post]
func (h *GalleryHandler) Add(c *fiber.Ctx) error {
	in, err := h.resolveRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *GalleryHandler) resolveRequest(c *fiber.Ctx) (dto.CreateGalleryImageRequest, error) {
	if header, err := c.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			return dto.CreateGalleryImageRequest{}, err
		}
		defer file.Close()
		url, err := h.storage.Save(header.Filename, file)
		if err != nil {
			return dto.CreateGalleryImageRequest{}, err
		}
		return dto.CreateGalleryImageRequest{
			URL:         url,
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}, nil
	}

	var in dto.CreateGalleryImageRequest
	if err := c.BodyParser(&in); err != nil {
		return dto.CreateGalleryImageRequest{}, err
	}
	return in, nil
}

// Update godoc
// @Summary      Editar título y descripción de una imagen de la galería
// @Tags         gallery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la imagen"
// @Param        body  body  dto.UpdateGalleryImageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GalleryImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateGalleryImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar imagen de la galería
// @Tags         gallery
// @Security     Bearer
// @Param        id  path  int  true  "ID de la imagen"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
