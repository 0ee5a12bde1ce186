package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/rasan-admin-api/internal/application/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
	"github.com/jhoicas/rasan-admin-api/internal/application/registry"
	domanalytics "github.com/jhoicas/rasan-admin-api/internal/domain/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/domain/entity"
)

// DashboardHandler maneja los endpoints del dashboard de pedidos.
// Las rutas /filter/* operan sobre el controlador de filtros de la sesión del administrador.
type DashboardHandler struct {
	uc          *appanalytics.DashboardUseCase
	controllers *registry.Registry[*appanalytics.FilterController]
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, controllers *registry.Registry[*appanalytics.FilterController]) *DashboardHandler {
	return &DashboardHandler{uc: uc, controllers: controllers}
}

func (h *DashboardHandler) controller(c *fiber.Ctx) *appanalytics.FilterController {
	ctrl, _ := h.controllers.Get(GetSessionID(c))
	return ctrl
}

// GetSummary godoc
// @Summary      Resumen de pedidos sin estado
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        range   query  string  false  "today | all | custom"  default(today)
// @Param        start   query  string  false  "YYYY-MM-DD (custom)"
// @Param        end     query  string  false  "YYYY-MM-DD (custom)"
// @Param        status  query  string  false  "Estado del pedido"     default(all)
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), appanalytics.SummaryQuery{
		Mode:   appanalytics.DateMode(c.Query("range", string(appanalytics.DateModeToday))),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Status: c.Query("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DashboardSummaryResponse{
		FilterLabel: out.FilterLabel,
		Summary:     toSummaryResponse(out.Summary),
		Total:       out.Total,
		Orders:      toOrderResponses(out.Orders),
	})
}

// GetState godoc
// @Summary      Estado del dashboard del administrador (primera carga si hace falta)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/state [get]
func (h *DashboardHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(toStateResponse(h.controller(c).EnsureLoaded(c.UserContext())))
}

// SelectToday godoc
// @Summary      Filtrar pedidos de hoy
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/filter/today [post]
func (h *DashboardHandler) SelectToday(c *fiber.Ctx) error {
	return c.JSON(toStateResponse(h.controller(c).SelectToday(c.UserContext())))
}

// SelectAllTime godoc
// @Summary      Filtrar todo el histórico
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/filter/all [post]
func (h *DashboardHandler) SelectAllTime(c *fiber.Ctx) error {
	return c.JSON(toStateResponse(h.controller(c).SelectAllTime(c.UserContext())))
}

// SetCustomRange godoc
// @Summary      Fijar el rango personalizado pendiente
// @Tags         dashboard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomRangeRequest  true  "Rango"
// @Success      200  {object}  dto.DashboardStateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/filter/custom-range [post]
func (h *DashboardHandler) SetCustomRange(c *fiber.Ctx) error {
	var in dto.CustomRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	st, err := h.controller(c).SetCustomRange(c.UserContext(), in.Start, in.End)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	return c.JSON(toStateResponse(st))
}

// ApplyCustom godoc
// @Summary      Aplicar el rango personalizado (sin efecto si está incompleto)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/filter/custom/apply [post]
func (h *DashboardHandler) ApplyCustom(c *fiber.Ctx) error {
	return c.JSON(toStateResponse(h.controller(c).ApplyCustom(c.UserContext())))
}

// SetStatus godoc
// @Summary      Filtrar por estado del pedido
// @Tags         dashboard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StatusRequest  true  "Estado"
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/filter/status [post]
func (h *DashboardHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return c.JSON(toStateResponse(h.controller(c).SetStatus(c.UserContext(), in.Status)))
}

// Refresh godoc
// @Summary      Reintentar la consulta actual
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStateResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	return c.JSON(toStateResponse(h.controller(c).Refresh(c.UserContext())))
}

// Report godoc
// @Summary      PDF con el resumen y los pedidos del filtro actual
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	st := h.controller(c).EnsureLoaded(c.UserContext())
	pdf, err := h.uc.Report(c.UserContext(), st)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "reporte-pedidos.pdf"))
	return c.Send(pdf)
}

func toSummaryResponse(s domanalytics.FormattedSummary) dto.SummaryResponse {
	return dto.SummaryResponse{
		TotalOrders:            s.TotalOrders,
		TotalEarnings:          s.TotalEarnings,
		TotalDeliveryAgentFee:  s.TotalDeliveryAgentFee,
		TotalRestaurantRevenue: s.TotalRestaurantRevenue,
		TotalProfit:            s.TotalProfit,
	}
}

func toStateResponse(st appanalytics.State) dto.DashboardStateResponse {
	return dto.DashboardStateResponse{
		DateMode:     string(st.DateMode),
		PendingStart: st.PendingStart,
		PendingEnd:   st.PendingEnd,
		RangeStart:   st.RangeStart,
		RangeEnd:     st.RangeEnd,
		Status:       st.Status,
		Loading:      st.Loading,
		Error:        st.Error,
		FilterLabel:  st.FilterLabel,
		Summary:      toSummaryResponse(st.Summary),
		Orders:       toOrderResponses(st.Orders),
	}
}

func toOrderResponses(orders []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items := make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, li := range o.Items {
			item := dto.OrderItemResponse{Name: li.Name, Price: li.Price, Quantity: li.Quantity}
			if li.QuantityOptions != nil {
				item.Label = li.QuantityOptions.Label
				item.PurchasePrice = li.QuantityOptions.PurchasePrice
			}
			items = append(items, item)
		}
		agents := make([]string, 0, len(o.DeliveryAgents))
		for _, a := range o.DeliveryAgents {
			agents = append(agents, a.Name)
		}
		out = append(out, dto.OrderResponse{
			ID:               o.ID,
			CreatedAt:        o.CreatedAt,
			OrderDate:        o.OrderDate,
			Status:           o.Status,
			CustomerName:     o.CustomerName,
			PhoneNumber:      o.PhoneNumber,
			TotalAmount:      o.TotalAmount,
			DeliveryCharge:   o.DeliveryCharge,
			DiscountAmount:   o.DiscountAmount,
			DeliveryAgentFee: o.DeliveryAgentFee,
			Subtotal:         domanalytics.Subtotal(o),
			GrandTotal:       domanalytics.GrandTotal(o),
			Address:          o.ShippingAddress.Line(),
			City:             o.ShippingAddress.City,
			Items:            items,
			DeliveryAgents:   agents,
		})
	}
	return out
}
