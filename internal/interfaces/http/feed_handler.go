package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rasan-admin-api/internal/application/catalog"
	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/registry"
	"github.com/jhoicas/rasan-admin-api/internal/application/usecase"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
)

// ProductFeedHandler grilla incremental de productos, una por sesión de administrador.
type ProductFeedHandler struct {
	listers *registry.Registry[*catalog.ProductLister]
}

// NewProductFeedHandler construye el handler.
func NewProductFeedHandler(listers *registry.Registry[*catalog.ProductLister]) *ProductFeedHandler {
	return &ProductFeedHandler{listers: listers}
}

func (h *ProductFeedHandler) lister(c *fiber.Ctx) *catalog.ProductLister {
	l, _ := h.listers.Get(GetSessionID(c))
	return l
}

// Get godoc
// @Summary      Estado del listado (carga la primera página si hace falta)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductFeedResponse
// @Router       /api/products/feed [get]
func (h *ProductFeedHandler) Get(c *fiber.Ctx) error {
	page, err := h.lister(c).EnsureLoaded(c.UserContext())
	return h.respond(c, page, err)
}

// More godoc
// @Summary      Siguiente página del listado
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductFeedResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/feed/more [post]
func (h *ProductFeedHandler) More(c *fiber.Ctx) error {
	page, err := h.lister(c).LoadMore(c.UserContext())
	return h.respond(c, page, err)
}

// Search godoc
// @Summary      Reinicia el listado con un término de búsqueda
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "Término"
// @Success      200   {object}  dto.ProductFeedResponse
// @Router       /api/products/feed/search [post]
func (h *ProductFeedHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	page, err := h.lister(c).SetSearch(c.UserContext(), in.Term)
	return h.respond(c, page, err)
}

// Delete godoc
// @Summary      Elimina un producto y lo quita del listado
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductFeedResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/feed/{id} [delete]
func (h *ProductFeedHandler) Delete(c *fiber.Ctx) error {
	page, err := h.lister(c).DeleteProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toFeedResponse(page))
}

// respond: agotado o reemplazado por una carga más nueva no son fallos, se devuelve el estado.
// Un error remoto responde 502 con el mensaje que también queda en el estado.
func (h *ProductFeedHandler) respond(c *fiber.Ctx, page catalog.Page, err error) error {
	switch {
	case err == nil, errors.Is(err, domain.ErrExhausted), errors.Is(err, domain.ErrSuperseded):
		return c.JSON(toFeedResponse(page))
	case errors.Is(err, domain.ErrBusy):
		return writeError(c, err)
	default:
		return c.Status(fiber.StatusBadGateway).JSON(toFeedResponse(page))
	}
}

func toFeedResponse(p catalog.Page) dto.ProductFeedResponse {
	items := make([]dto.ProductResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, usecase.ToProductResponse(&p.Items[i]))
	}
	return dto.ProductFeedResponse{
		Status:  string(p.Status),
		Items:   items,
		Offset:  p.Offset,
		HasMore: p.HasMore,
		Search:  p.Search,
		Error:   p.Error,
	}
}
