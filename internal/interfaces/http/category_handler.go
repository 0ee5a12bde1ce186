package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
)

// CategoryHandler categorías de producto, de cabecera y secciones del cuerpo.
type CategoryHandler struct {
	categories *usecase.CategoryUseCase
	headers    *usecase.HeaderCategoryUseCase
	bodies     *usecase.BodyCategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(categories *usecase.CategoryUseCase, headers *usecase.HeaderCategoryUseCase, bodies *usecase.BodyCategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categories: categories, headers: headers, bodies: bodies}
}

// List godoc
// @Summary      Listar categorías de producto
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.categories.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    true   "Imagen"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in, err := parseCategoryForm(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", err.Error())
	}
	image, closer, err := formImage(c, "image")
	if err != nil {
		return badRequest(c, "INVALID_FILE", err.Error())
	}
	defer closeQuietly(closer)

	out, err := h.categories.Create(c.UserContext(), in, image)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id     path      string  true   "ID"
// @Param        image  formData  file    false  "Imagen nueva"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	in, err := parseCategoryForm(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", err.Error())
	}
	image, closer, err := formImage(c, "image")
	if err != nil {
		return badRequest(c, "INVALID_FILE", err.Error())
	}
	defer closeQuietly(closer)

	out, err := h.categories.Update(c.UserContext(), c.Params("id"), in, image)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Activar / desactivar categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/categories/{id}/toggle [post]
func (h *CategoryHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.categories.ToggleActive(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (imagen y fila)
// @Tags         categories
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListHeaders godoc
// @Summary      Listar categorías de cabecera
// @Tags         header-categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HeaderCategoryResponse
// @Router       /api/header-categories [get]
func (h *CategoryHandler) ListHeaders(c *fiber.Ctx) error {
	out, err := h.headers.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AvailableHeaders godoc
// @Summary      Categorías que aún no están en la cabecera
// @Tags         header-categories
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto en el nombre"
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/header-categories/available [get]
func (h *CategoryHandler) AvailableHeaders(c *fiber.Ctx) error {
	out, err := h.headers.Available(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateHeader godoc
// @Summary      Agregar categoría a la cabecera
// @Tags         header-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.HeaderCategoryRequest  true  "Categoría"
// @Success      201  {object}  dto.HeaderCategoryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/header-categories [post]
func (h *CategoryHandler) CreateHeader(c *fiber.Ctx) error {
	var in dto.HeaderCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.headers.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

type activeRequest struct {
	IsActive *bool `json:"is_active"`
}

// SetHeaderActive godoc
// @Summary      Activar / desactivar categoría de cabecera
// @Tags         header-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.HeaderCategoryResponse
// @Router       /api/header-categories/{id}/active [patch]
func (h *CategoryHandler) SetHeaderActive(c *fiber.Ctx) error {
	var in activeRequest
	if err := c.BodyParser(&in); err != nil || in.IsActive == nil {
		return badRequest(c, "INVALID_BODY", "is_active es requerido")
	}
	out, err := h.headers.SetActive(c.UserContext(), c.Params("id"), *in.IsActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteHeader godoc
// @Summary      Quitar categoría de la cabecera
// @Tags         header-categories
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/header-categories/{id} [delete]
func (h *CategoryHandler) DeleteHeader(c *fiber.Ctx) error {
	if err := h.headers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBodies godoc
// @Summary      Listar secciones del cuerpo
// @Tags         body-categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BodyCategoryResponse
// @Router       /api/body-categories [get]
func (h *CategoryHandler) ListBodies(c *fiber.Ctx) error {
	out, err := h.bodies.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetBodyCategories godoc
// @Summary      Reemplazar las categorías de una sección
// @Tags         body-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.BodyCategoryRequest  true  "Categorías"
// @Success      200  {object}  dto.BodyCategoryResponse
// @Router       /api/body-categories/{id}/categories [put]
func (h *CategoryHandler) SetBodyCategories(c *fiber.Ctx) error {
	var in dto.BodyCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.bodies.SetProductCategories(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
