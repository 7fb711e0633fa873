package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
	"github.com/jhoicas/portal-isp-api/internal/infrastructure/notify"
)

// DashboardHandler maneja el resumen por rol y las notificaciones recientes.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	notifier    *notify.Notifier
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, notifier *notify.Notifier) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, notifier: notifier}
}

// Summary godoc
// @Summary      Resumen del dashboard según el rol
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Summary(GetUserID(c), entity.Role(GetRole(c)))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Notificaciones recientes (más reciente primero)
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  notify.Event
// @Router       /api/notifications [get]
func (h *DashboardHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(h.notifier.Recent())
}
