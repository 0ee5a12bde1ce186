package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
)

// CarouselHandler carrusel promocional y notificaciones push.
type CarouselHandler struct {
	carousel      *usecase.CarouselUseCase
	notifications *usecase.NotificationUseCase
}

// NewCarouselHandler construye el handler.
func NewCarouselHandler(carousel *usecase.CarouselUseCase, notifications *usecase.NotificationUseCase) *CarouselHandler {
	return &CarouselHandler{carousel: carousel, notifications: notifications}
}

// List godoc
// @Summary      Imágenes del carrusel
// @Tags         carousel
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CarouselImageResponse
// @Router       /api/carousel [get]
func (h *CarouselHandler) List(c *fiber.Ctx) error {
	out, err := h.carousel.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir imagen al carrusel
// @Tags         carousel
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        image  formData  file  true  "Imagen"
// @Success      201  {object}  dto.CarouselImageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/carousel [post]
func (h *CarouselHandler) Upload(c *fiber.Ctx) error {
	image, closer, err := formImage(c, "image")
	if err != nil {
		return badRequest(c, "INVALID_FILE", err.Error())
	}
	defer closeQuietly(closer)

	out, err := h.carousel.Upload(c.UserContext(), image)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar fila del carrusel y su imagen
// @Tags         carousel
// @Security     Bearer
// @Param        id  path  string  true  "ID de la fila"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carousel/{id} [delete]
func (h *CarouselHandler) Delete(c *fiber.Ctx) error {
	if err := h.carousel.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Notify godoc
// @Summary      Enviar notificación push
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotificationRequest  true  "Notificación"
// @Success      202  {object}  dto.NotificationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *CarouselHandler) Notify(c *fiber.Ctx) error {
	var in dto.NotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.notifications.Send(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}
