package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-isp-api/internal/application/dto"
	"github.com/jhoicas/portal-isp-api/internal/application/usecase"
	"github.com/jhoicas/portal-isp-api/internal/domain/entity"
)

// SalesHandler maneja la vista del equipo de ventas (solo admin).
type SalesHandler struct {
	salesUC *usecase.SalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(salesUC *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{salesUC: salesUC}
}

// requireAdmin chequeo de página, redundante con el RequireRole de la ruta.
func requireAdmin(c *fiber.Ctx) error {
	if entity.Role(GetRole(c)) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ADMIN_ONLY", Message: "vista exclusiva del admin"})
	}
	return nil
}

// List godoc
// @Summary      Equipo de ventas completo
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SalesResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	out, err := h.salesUC.List()
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar el perfil de un asesor (merge parcial)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id del asesor"
// @Param        body  body  dto.UpdateSalesRequest true  "campos a actualizar"
// @Success      200   {object}  dto.SalesResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	var in dto.UpdateSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.salesUC.Update(c.Params("id"), in)
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(out)
}
